// Package chatguard runs the safety checks the chat widget applies before
// any request reaches the remote assistant: emergency-symptom detection and
// a brain/MRI domain filter, both language-aware. A guard hit produces a
// local canned reply and no network call is made.
package chatguard

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"neuroview/domain"
)

// Guard holds per-language keyword detectors. Languages without their own
// keyword set fall back to English.
type Guard struct {
	log       *slog.Logger
	emergency map[string]*Detector
	related   map[string]*Detector
}

func New(log *slog.Logger) (*Guard, error) {
	g := &Guard{
		log:       log,
		emergency: make(map[string]*Detector),
		related:   make(map[string]*Detector),
	}

	for lang, words := range emergencyKeywords {
		d, err := NewDetector(words)
		if err != nil {
			return nil, err
		}
		g.emergency[lang] = d
	}
	for lang, words := range brainKeywords {
		d, err := NewDetector(words)
		if err != nil {
			return nil, err
		}
		g.related[lang] = d
	}
	return g, nil
}

// DetectLanguage resolves "auto" (or empty) through script detection and
// normalizes anything unsupported to English.
func (g *Guard) DetectLanguage(message, requested string) string {
	if requested != "" && requested != "auto" {
		if _, ok := emergencyKeywords[requested]; ok {
			return requested
		}
		return "en"
	}

	info := whatlanggo.Detect(message)
	switch info.Lang.Iso6391() {
	case "hi":
		return "hi"
	case "te":
		return "te"
	default:
		return "en"
	}
}

// Screen evaluates the guards in priority order: emergency first, then the
// domain filter. It returns a local reply and true when a guard fires.
func (g *Guard) Screen(message, language string) (domain.ChatReply, bool) {
	if g.detector(g.emergency, language).Matches(message) {
		g.log.Warn("Emergency symptoms detected in chat message", "lang", language)
		return domain.ChatReply{
			Response:       emergencyResponse[language],
			Language:       language,
			Source:         domain.SourceEmergency,
			IsMedicalAlert: true,
		}, true
	}

	if !g.detector(g.related, language).Matches(message) {
		g.log.Info("Chat message outside brain/MRI domain", "lang", language)
		return domain.ChatReply{
			Response:    unrelatedResponse[language],
			Language:    language,
			Source:      domain.SourceDomainFilter,
			IsUnrelated: true,
		}, true
	}

	return domain.ChatReply{}, false
}

func (g *Guard) detector(set map[string]*Detector, language string) *Detector {
	if d, ok := set[language]; ok {
		return d
	}
	return set["en"]
}

// Fallback is the local reply used when the remote assistant cannot answer.
func Fallback(language string) domain.ChatReply {
	text, ok := fallbackResponse[language]
	if !ok {
		text = fallbackResponse["en"]
	}
	return domain.ChatReply{
		Response: text,
		Language: language,
		Source:   domain.SourceFallback,
	}
}

// Prefix returns the display marker for a reply source. The urgent and
// rejection markers are mutually exclusive because a reply has one source.
func Prefix(source domain.Source) string {
	switch source {
	case domain.SourceEmergency:
		return "🚨 "
	case domain.SourceDomainFilter:
		return "⚠️ "
	default:
		return ""
	}
}

// Prefixed renders a reply as shown in the widget transcript.
func Prefixed(reply domain.ChatReply) string {
	return Prefix(reply.Source) + reply.Response
}
