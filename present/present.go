// Package present implements the conditional-rendering contract for a
// prediction response. Present selects exactly one of five mutually
// exclusive views; each view struct carries only the fields that view is
// allowed to show, so an invalid-image result has no access path to
// prediction values.
package present

import (
	"math"

	"github.com/samber/lo"

	"neuroview/content"
	"neuroview/domain"
)

// ViewKind is the mutually exclusive top-level rendering mode.
type ViewKind string

const (
	KindEmpty        ViewKind = "empty"
	KindWaiting      ViewKind = "waiting"
	KindInvalidImage ViewKind = "invalid_image"
	KindError        ViewKind = "error"
	KindSuccess      ViewKind = "success"
)

// Tier is the confidence ring color tier. Lower bounds are inclusive.
type Tier string

const (
	TierGood    Tier = "good"    // confidence >= 0.75
	TierWarning Tier = "warning" // confidence >= 0.50
	TierLow     Tier = "low"
)

// View is the outcome of presenting one response. Exactly one of the
// branch pointers is set, matching Kind.
type View struct {
	Kind    ViewKind
	Invalid *InvalidImageView
	Error   *ErrorView
	Success *SuccessView
}

// InvalidImageView deliberately contains no prediction fields.
type InvalidImageView struct {
	Reason string
}

type ErrorView struct {
	Message string
}

// BreakdownRow is one row of the per-class confidence list, kept in the
// order the backend supplied. Top marks the winning class.
type BreakdownRow struct {
	Label   string
	Percent float64
	Top     bool
}

// SuccessView aggregates everything the success panels render: the ring,
// the breakdown, the server analysis, and the client content bundle. The
// two text sources are independent and not cross-validated.
type SuccessView struct {
	Label        string
	RingPercent  int
	RingTier     Tier
	Severity     string
	SeverityTone string
	SeverityNote string
	Breakdown    []BreakdownRow
	Analysis     domain.MedicalAnalysis
	Bundle       content.Bundle
	Disclaimer   string
}

const (
	fallbackInvalidReason = "The image does not match brain MRI characteristics."
	fallbackErrorMessage  = "An error occurred during analysis"
)

// Present maps a response to a view. First match wins:
//  1. nil response or status waiting  -> Waiting
//  2. status invalid_image or validity flag unset -> InvalidImage
//  3. status error -> Error
//  4. status success + valid flag + top prediction + medical analysis -> Success
//  5. anything else -> Empty (never a partial success render)
func Present(resp *domain.PredictionResponse) View {
	if resp == nil || resp.Status == domain.StatusWaiting {
		return View{Kind: KindWaiting}
	}

	if resp.Status == domain.StatusInvalidImage || !resp.IsValidBrainImage {
		reason := resp.Error
		if reason == "" {
			reason = resp.ValidationReason
		}
		if reason == "" {
			reason = fallbackInvalidReason
		}
		return View{Kind: KindInvalidImage, Invalid: &InvalidImageView{Reason: reason}}
	}

	if resp.Status == domain.StatusError {
		msg := resp.Error
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return View{Kind: KindError, Error: &ErrorView{Message: msg}}
	}

	if resp.Status == domain.StatusSuccess && resp.TopPrediction != nil && resp.MedicalAnalysis != nil {
		return View{Kind: KindSuccess, Success: buildSuccess(resp)}
	}

	return View{Kind: KindEmpty}
}

func buildSuccess(resp *domain.PredictionResponse) *SuccessView {
	top := resp.TopPrediction
	analysis := *resp.MedicalAnalysis

	rows := lo.Map(resp.Predictions, func(p domain.PredictionItem, _ int) BreakdownRow {
		return BreakdownRow{
			Label:   p.Label,
			Percent: p.Percentage,
			Top:     p.ClassIndex == top.ClassIndex,
		}
	})

	return &SuccessView{
		Label:        top.Label,
		RingPercent:  int(math.Round(top.Confidence * 100)),
		RingTier:     ConfidenceTier(top.Confidence),
		Severity:     analysis.SeverityLevel,
		SeverityTone: SeverityTone(analysis.SeverityLevel),
		SeverityNote: analysis.SeverityNote,
		Breakdown:    rows,
		Analysis:     analysis,
		Bundle:       content.Resolve(top.Label),
		Disclaimer:   resp.Disclaimer,
	}
}

// ConfidenceTier applies the two inclusive thresholds of the ring.
func ConfidenceTier(confidence float64) Tier {
	switch {
	case confidence >= 0.75:
		return TierGood
	case confidence >= 0.50:
		return TierWarning
	default:
		return TierLow
	}
}

// SeverityTone maps a severity level to a display tone class.
func SeverityTone(level string) string {
	switch level {
	case "None":
		return "tone-green"
	case "Low":
		return "tone-blue"
	case "Low to Medium":
		return "tone-yellow"
	case "Medium":
		return "tone-orange"
	case "High":
		return "tone-red"
	default:
		return "tone-neutral"
	}
}
