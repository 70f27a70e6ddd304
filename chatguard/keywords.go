package chatguard

// Keyword lists and canned replies mirror what the remote assistant enforces
// server-side; running them locally avoids a round-trip for messages that
// would be rejected anyway.

var emergencyKeywords = map[string][]string{
	"en": {
		"seizure", "fainting", "faint", "unconscious", "severe headache",
		"vomiting", "vision loss", "blind", "stroke", "paralysis",
		"lose consciousness",
	},
	"hi": {"दौरा", "बेहोश", "गंभीर सिरदर्द", "उल्टी", "दृष्टि हानि", "लकवा", "चेतना खोना"},
	"te": {"మూర్ఛ", "తీవ్ర తలనొప్పి", "వాంతులు", "దృష్టి నష్టం", "పక్షవాతం", "స్పృహ కోల్పోవడం"},
}

var brainKeywords = map[string][]string{
	"en": {
		"brain", "mri", "tumor", "scan", "imaging", "neural", "glioma",
		"glioblastoma", "meningioma", "pituitary", "neurology", "neuro",
		"fmri", "neurological", "cerebral", "skull", "cortex",
		"white matter", "grey matter", "lesion", "headache",
	},
	"hi": {"मस्तिष्क", "mri", "ट्यूमर", "स्कैन", "इमेजिंग", "तंत्रिका", "न्यूरोलॉजी", "सिरदर्द"},
	"te": {"మెదడు", "mri", "ట్యూమర్", "స్కాన్", "ఇమేజింగ్", "నాడీ", "న్యూరోలజీ", "తలనొప్పి"},
}

var emergencyResponse = map[string]string{
	"en": "Please seek emergency medical care immediately. This is a serious condition that requires urgent medical attention.",
	"hi": "कृपया तुरंत आपातकालीन चिकित्सा सेवा लें। यह एक गंभीर स्थिति है जिसके लिए तत्काल चिकित्सा ध्यान की आवश्यकता है।",
	"te": "దయచేసి వెంటనే అత్యవసర వైద్య సేవలను పొందండి. ఇది తక్షణ వైద్య శ్రద్ధ అవసరమైన తీవ్ర స్థితి.",
}

var fallbackResponse = map[string]string{
	"en": "Brain imaging and tumor analysis require professional medical evaluation. Please consult with a neurology specialist or radiologist for accurate diagnosis and treatment planning.",
	"hi": "ब्रेन इमेजिंग और ट्यूमर विश्लेषण के लिए पेशेवर चिकित्सा मूल्यांकन की आवश्यकता है। सटीक निदान और उपचार योजना के लिए कृपया न्यूरोलॉजी विशेषज्ञ या रेडियोलॉजिस्ट से परामर्श लें।",
	"te": "బ్రెయిన్ ఇమేజింగ్ మరియు ట్యూమర్ విశ్లేషణకు వృత్తిపరమైన వైద్య మూల్యాంకనం అవసరం. ఖచ్చితమైన నిర్ధారణ మరియు చికిత్స ప్రణాళిక కోసం దయచేసి న్యూరాలజీ నిపుణుడు లేదా రేడియాలజిస్ట్‌ను సంప్రదించండి.",
}

var unrelatedResponse = map[string]string{
	"en": "I can only answer brain MRI and brain tumor related questions.",
	"hi": "मैं केवल ब्रेन MRI और ब्रेन ट्यूमर से संबंधित प्रश्नों का उत्तर दे सकता हूँ।",
	"te": "నేను బ్రెయిన్ MRI మరియు బ్రెయిన్ ట్యూమర్ సంబంధిత ప్రశ్నలకు మాత్రమే సమాధానం ఇవ్వగలను.",
}
