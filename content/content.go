// Package content holds the client-side educational text shown next to a
// classification result. The table is immutable and loaded once; it is an
// independent information source from the server's medical_analysis block.
package content

import "neuroview/domain"

// Bundle is the educational block associated with one tumor label.
type Bundle struct {
	Name        string
	AboutResult string
	Symptoms    []string
	Specialists []string
	Lifestyle   []string
	Monitoring  []string
	Disclaimer  string
}

// Resolve maps a backend-supplied label to its bundle. Lookup is exact and
// case-sensitive; any label outside the known set returns the "No Tumor"
// bundle, so the function is total over all string inputs.
func Resolve(label string) Bundle {
	if b, ok := bundles[domain.TumorLabel(label)]; ok {
		return b
	}
	return bundles[domain.LabelNoTumor]
}

var bundles = map[domain.TumorLabel]Bundle{
	domain.LabelGlioma: {
		Name:        "Glioma",
		AboutResult: "The MRI analysis suggests possible glioma characteristics. Gliomas are tumors that originate from glial cells in the brain. They vary widely in grade and behavior. This analysis is for educational purposes only.",
		Symptoms: []string{
			"Persistent headaches",
			"Vision or hearing changes",
			"Balance and coordination problems",
			"Nausea and vomiting",
			"Memory or concentration difficulties",
			"Personality or behavior changes",
		},
		Specialists: []string{
			"Neurologist - for diagnosis and neurological management",
			"Neurosurgeon - for surgical evaluation",
			"Neuro-oncologist - for tumor-specific treatment planning",
			"Radiologist - for imaging interpretation",
		},
		Lifestyle: []string{
			"Maintain a balanced, anti-inflammatory diet rich in fruits and vegetables",
			"Regular moderate exercise as tolerated",
			"Stress management through meditation or counseling",
			"Adequate sleep (7-8 hours nightly)",
			"Stay hydrated throughout the day",
			"Avoid smoking and limit alcohol",
		},
		Monitoring: []string{
			"Regular MRI follow-up imaging as recommended by specialists",
			"Clinical neurological evaluations",
			"Symptom monitoring and documentation",
			"Blood work monitoring as needed",
			"Specialist consultations per treatment plan",
		},
		Disclaimer: "This information is educational only. Only a qualified neurologist or neurosurgeon can provide diagnosis, prognosis, and treatment recommendations. Do not make medical decisions based solely on this analysis.",
	},
	domain.LabelMeningioma: {
		Name:        "Meningioma",
		AboutResult: "The MRI analysis suggests possible meningioma characteristics. Meningiomas are tumors that grow from the meninges (protective membranes surrounding the brain). Most are benign and slow-growing. This analysis is for educational purposes only.",
		Symptoms: []string{
			"Headaches",
			"Vision problems",
			"Hearing changes or tinnitus",
			"Balance difficulties",
			"Cognitive changes or memory issues",
			"Seizures (in some cases)",
		},
		Specialists: []string{
			"Neurologist - for neurological assessment and symptom management",
			"Neurosurgeon - for surgical planning and intervention",
			"Radiologist - for detailed imaging analysis",
			"Neuro-oncologist - if additional treatment is needed",
		},
		Lifestyle: []string{
			"Maintain a healthy, balanced diet",
			"Regular mild to moderate exercise",
			"Stress reduction techniques",
			"Maintain consistent sleep schedule",
			"Stay well hydrated",
			"Avoid smoking and excessive alcohol",
		},
		Monitoring: []string{
			"Periodic MRI scans to monitor growth (if non-surgical management chosen)",
			"Neurological examinations",
			"Symptom tracking",
			"Specialist follow-up visits",
			"Watchful waiting approach when appropriate",
		},
		Disclaimer: "This information is educational only. Only a qualified medical professional can provide definitive diagnosis and treatment recommendations. Do not make medical decisions based solely on this analysis.",
	},
	domain.LabelPituitary: {
		Name:        "Pituitary Tumor",
		AboutResult: "The MRI analysis suggests possible pituitary tumor characteristics. The pituitary gland controls many hormones in the body. Pituitary tumors vary in size and hormone-secreting activity. This analysis is for educational purposes only.",
		Symptoms: []string{
			"Headaches",
			"Vision problems, especially peripheral vision loss",
			"Hormone imbalances leading to various symptoms",
			"Fatigue and weakness",
			"Weight changes",
			"Mood or personality changes",
		},
		Specialists: []string{
			"Endocrinologist - for hormone level evaluation and management",
			"Neurologist - for neurological symptoms",
			"Neurosurgeon - for surgical evaluation",
			"Ophthalmologist - for vision assessment",
		},
		Lifestyle: []string{
			"Maintain balanced nutrition with consistent meal timing",
			"Regular, gentle exercise appropriate to your energy levels",
			"Stress management and relaxation techniques",
			"Maintain regular sleep schedule",
			"Monitor hormone-related symptoms",
			"Stay hydrated",
		},
		Monitoring: []string{
			"Regular hormone level testing (blood work)",
			"Periodic MRI scans",
			"Vision assessments",
			"Neurological examinations",
			"Endocrinologist consultations",
			"Symptom documentation",
		},
		Disclaimer: "This information is educational only. Only a qualified endocrinologist and neurologist can diagnose and manage pituitary conditions. Hormone levels require professional monitoring. Do not modify hormone treatments without medical supervision.",
	},
	domain.LabelNoTumor: {
		Name:        "No Tumor Detected",
		AboutResult: "The MRI analysis did not detect characteristics consistent with a brain tumor. This is encouraging news. However, this analysis is for informational purposes and should be reviewed by a qualified radiologist or neurologist.",
		Symptoms:    []string{},
		Specialists: []string{
			"Primary Care Physician - for overall health management",
			"Radiologist - to review the imaging",
			"Neurologist - if symptoms prompted this scan",
		},
		Lifestyle: []string{
			"Continue maintaining a healthy lifestyle",
			"Regular exercise and physical activity",
			"Balanced, nutritious diet",
			"Adequate sleep and stress management",
			"Regular health check-ups",
			"Avoid smoking and limit alcohol",
		},
		Monitoring: []string{
			"Follow up with your primary care physician",
			"If symptoms prompted this scan, discuss results with your doctor",
			"Continue routine health screening",
			"Report any new or concerning symptoms promptly",
		},
		Disclaimer: "This analysis is educational only. A qualified radiologist should formally interpret your MRI. If you have concerning symptoms, consult with your physician for proper evaluation.",
	},
}
