package present

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"neuroview/domain"
)

func successResponse() *domain.PredictionResponse {
	return &domain.PredictionResponse{
		Status:            domain.StatusSuccess,
		IsValidBrainImage: true,
		TopPrediction: &domain.TopPrediction{
			ClassIndex: 0,
			Label:      "Glioma",
			Confidence: 0.82,
			Percentage: 82.0,
		},
		Predictions: []domain.PredictionItem{
			{ClassIndex: 0, Label: "Glioma", Percentage: 82.0},
			{ClassIndex: 1, Label: "Meningioma", Percentage: 10.0},
			{ClassIndex: 2, Label: "No Tumor", Percentage: 5.0},
			{ClassIndex: 3, Label: "Pituitary", Percentage: 3.0},
		},
		MedicalAnalysis: &domain.MedicalAnalysis{
			TumorType:     "Glioma",
			Description:   "A glioma is a tumor arising from glial cells.",
			SeverityLevel: "Medium",
		},
	}
}

func TestPresent_Waiting(t *testing.T) {
	req := require.New(t)

	req.Equal(KindWaiting, Present(nil).Kind)
	req.Equal(KindWaiting, Present(&domain.PredictionResponse{Status: domain.StatusWaiting}).Kind)
}

// Even a fully populated top_prediction must not leak through the
// invalid-image branch. The view struct has no prediction fields at all.
func TestPresent_InvalidImageNeverExposesPredictions(t *testing.T) {
	req := require.New(t)

	resp := successResponse()
	resp.IsValidBrainImage = false
	resp.ValidationReason = "Image lacks sufficient contrast"
	resp.Error = ""

	view := Present(resp)
	req.Equal(KindInvalidImage, view.Kind)
	req.Nil(view.Success)
	req.Nil(view.Error)
	req.Equal("Image lacks sufficient contrast", view.Invalid.Reason)
}

func TestPresent_InvalidImageStatusWins(t *testing.T) {
	req := require.New(t)

	resp := successResponse()
	resp.Status = domain.StatusInvalidImage
	resp.Error = "Not a brain MRI"

	view := Present(resp)
	req.Equal(KindInvalidImage, view.Kind)
	req.Equal("Not a brain MRI", view.Invalid.Reason)
}

func TestPresent_InvalidImageFallbackReason(t *testing.T) {
	req := require.New(t)

	view := Present(&domain.PredictionResponse{Status: domain.StatusInvalidImage})
	req.Equal(KindInvalidImage, view.Kind)
	req.NotEmpty(view.Invalid.Reason)
}

func TestPresent_Error(t *testing.T) {
	req := require.New(t)

	view := Present(&domain.PredictionResponse{
		Status:            domain.StatusError,
		IsValidBrainImage: true,
		Error:             "model crashed",
	})
	req.Equal(KindError, view.Kind)
	req.Equal("model crashed", view.Error.Message)

	view = Present(&domain.PredictionResponse{Status: domain.StatusError, IsValidBrainImage: true})
	req.Equal("An error occurred during analysis", view.Error.Message)
}

func TestPresent_Success(t *testing.T) {
	req := require.New(t)

	view := Present(successResponse())
	req.Equal(KindSuccess, view.Kind)

	s := view.Success
	req.Equal("Glioma", s.Label)
	req.Equal(82, s.RingPercent)
	req.Equal(TierGood, s.RingTier)
	req.Equal("Medium", s.Severity)
	req.Equal("tone-orange", s.SeverityTone)
	req.Equal("Glioma", s.Bundle.Name)

	// Breakdown keeps the supplied order and marks only the top row.
	req.Len(s.Breakdown, 4)
	req.Equal([]string{"Glioma", "Meningioma", "No Tumor", "Pituitary"},
		lo.Map(s.Breakdown, func(r BreakdownRow, _ int) string { return r.Label }))
	req.True(s.Breakdown[0].Top)
	for _, row := range s.Breakdown[1:] {
		req.False(row.Top)
	}
}

func TestPresent_PartialSuccessIsEmpty(t *testing.T) {
	req := require.New(t)

	noTop := successResponse()
	noTop.TopPrediction = nil
	req.Equal(KindEmpty, Present(noTop).Kind)

	noAnalysis := successResponse()
	noAnalysis.MedicalAnalysis = nil
	req.Equal(KindEmpty, Present(noAnalysis).Kind)
}

func TestPresent_UnknownStatusIsEmpty(t *testing.T) {
	req := require.New(t)
	req.Equal(KindEmpty, Present(&domain.PredictionResponse{Status: "processing", IsValidBrainImage: true}).Kind)
}

func TestConfidenceTier_InclusiveBounds(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		expected   Tier
	}{
		{"well above good", 0.92, TierGood},
		{"exactly good threshold", 0.75, TierGood},
		{"just below good", 0.7499, TierWarning},
		{"exactly warning threshold", 0.50, TierWarning},
		{"just below warning", 0.4999, TierLow},
		{"zero", 0, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ConfidenceTier(tt.confidence))
		})
	}
}

func TestPresent_RingPercentRounds(t *testing.T) {
	req := require.New(t)

	resp := successResponse()
	resp.TopPrediction.Confidence = 0.876
	req.Equal(88, Present(resp).Success.RingPercent)

	resp.TopPrediction.Confidence = 0.874
	req.Equal(87, Present(resp).Success.RingPercent)
}
