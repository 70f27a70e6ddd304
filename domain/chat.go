package domain

// Source tells which stage of the chat pipeline produced a reply.
type Source string

const (
	SourceLLM          Source = "llm"
	SourceDomainFilter Source = "domain_filter"
	SourceEmergency    Source = "emergency"
	SourceFallback     Source = "fallback"
	SourceError        Source = "error"
)

// ChatRequest is the body of POST /api/chat. PredictionLabel and
// ConfidenceScore carry the MRI context when an upload preceded the question.
type ChatRequest struct {
	Message         string   `json:"message"`
	Language        string   `json:"language,omitempty"`
	PredictionLabel string   `json:"prediction_label,omitempty"`
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// ChatReply is the chat endpoint response. Source drives the display
// prefix; IsUnrelated and IsMedicalAlert are informational flags.
type ChatReply struct {
	Response       string `json:"response"`
	Language       string `json:"language,omitempty"`
	Source         Source `json:"source,omitempty"`
	IsUnrelated    bool   `json:"is_unrelated,omitempty"`
	IsMedicalAlert bool   `json:"is_medical_alert,omitempty"`
}
