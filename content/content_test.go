package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neuroview/domain"
)

func TestResolve_KnownLabels(t *testing.T) {
	req := require.New(t)

	for _, label := range domain.KnownLabels {
		b := Resolve(string(label))
		req.NotEmpty(b.Name, "label=%s", label)
		req.NotEmpty(b.AboutResult, "label=%s", label)
		req.NotNil(b.Symptoms, "label=%s", label)
		req.NotEmpty(b.Specialists, "label=%s", label)
		req.NotEmpty(b.Lifestyle, "label=%s", label)
		req.NotEmpty(b.Monitoring, "label=%s", label)
		req.NotEmpty(b.Disclaimer, "label=%s", label)
	}

	// Only the clean scan may have an empty symptom list.
	req.Empty(Resolve(string(domain.LabelNoTumor)).Symptoms)
	req.NotEmpty(Resolve(string(domain.LabelGlioma)).Symptoms)
}

func TestResolve_FallbackForUnknownLabels(t *testing.T) {
	req := require.New(t)
	noTumor := Resolve(string(domain.LabelNoTumor))

	for _, label := range []string{"Lymphoma", "glioma", "GLIOMA", "", "NoTumor", "No  Tumor"} {
		req.Equal(noTumor, Resolve(label), "label=%q must fall back", label)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	req := require.New(t)
	first := Resolve("Meningioma")
	second := Resolve("Meningioma")
	req.Equal(first, second)
}
