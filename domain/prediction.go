package domain

// Status is the top-level branch selector of a prediction response.
type Status string

const (
	StatusWaiting      Status = "waiting"
	StatusSuccess      Status = "success"
	StatusInvalidImage Status = "invalid_image"
	StatusError        Status = "error"
)

// TumorLabel is the closed set of classes the backend model emits.
// Any other string degrades to LabelNoTumor at resolution time.
type TumorLabel string

const (
	LabelGlioma     TumorLabel = "Glioma"
	LabelMeningioma TumorLabel = "Meningioma"
	LabelPituitary  TumorLabel = "Pituitary"
	LabelNoTumor    TumorLabel = "No Tumor"
)

// KnownLabels lists the enumeration in class-index order.
var KnownLabels = []TumorLabel{LabelGlioma, LabelMeningioma, LabelPituitary, LabelNoTumor}

// TopPrediction is the winning class of one inference run.
type TopPrediction struct {
	ClassIndex int     `json:"class_index"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Percentage float64 `json:"percentage"`
}

// PredictionItem is one row of the per-class confidence breakdown.
// The backend supplies them in display order, not sorted.
type PredictionItem struct {
	ClassIndex int     `json:"class_index"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Percentage float64 `json:"percentage"`
}

// MedicalAnalysis is the server-side educational block. It is independent
// from the client-side content table and the two are never reconciled.
type MedicalAnalysis struct {
	TumorType            string   `json:"tumor_type"`
	Description          string   `json:"description"`
	Advantages           []string `json:"advantages"`
	Disadvantages        []string `json:"disadvantages"`
	KeyCharacteristics   []string `json:"key_characteristics"`
	RecommendedNextSteps []string `json:"recommended_next_steps"`
	SeverityLevel        string   `json:"severity_level"`
	SeverityNote         string   `json:"severity_note,omitempty"`
}

// PredictionResponse is the full payload of POST /api/predict, consumed
// read-only. Optional fields are pointers or zero values so a partially
// populated success payload can be detected and suppressed.
type PredictionResponse struct {
	Status                    Status           `json:"status"`
	IsValidBrainImage         bool             `json:"is_valid_brain_image"`
	TopPrediction             *TopPrediction   `json:"top_prediction,omitempty"`
	Predictions               []PredictionItem `json:"predictions,omitempty"`
	MedicalAnalysis           *MedicalAnalysis `json:"medical_analysis,omitempty"`
	ImageValidationConfidence float64          `json:"image_validation_confidence,omitempty"`
	ValidationReason          string           `json:"validation_reason,omitempty"`
	Error                     string           `json:"error,omitempty"`
	Disclaimer                string           `json:"disclaimer,omitempty"`
	ModelVersion              string           `json:"model_version,omitempty"`
	ImagePath                 string           `json:"image_path,omitempty"`
}
