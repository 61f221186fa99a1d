package screening

import "github.com/campusmind/campusmind/internal/domain"

const defaultLanguage = "en"

// Interpretation and recommendation texts are fixed lookup tables, part of
// the deterministic-output contract. Lookups degrade to the instrument's
// "minimal" band and then to English rather than failing: an unknown
// combination still gets the safest, most general guidance.

var interpretations = map[domain.Instrument]map[domain.SeverityBand]map[string]string{
	domain.InstrumentPHQ9: {
		domain.BandMinimal: {
			"en": "Your responses suggest minimal symptoms of depression.",
			"hi": "आपके उत्तरों से अवसाद के न्यूनतम लक्षण दिखाई देते हैं।",
		},
		domain.BandMild: {
			"en": "Your responses suggest mild symptoms of depression.",
			"hi": "आपके उत्तरों से अवसाद के हल्के लक्षण दिखाई देते हैं।",
		},
		domain.BandModerate: {
			"en": "Your responses suggest moderate symptoms of depression. Talking to a counsellor could help.",
			"hi": "आपके उत्तरों से अवसाद के मध्यम लक्षण दिखाई देते हैं। किसी परामर्शदाता से बात करना सहायक हो सकता है।",
		},
		domain.BandModerateSevere: {
			"en": "Your responses suggest moderately severe symptoms of depression. We recommend speaking with a counsellor soon.",
			"hi": "आपके उत्तरों से अवसाद के मध्यम-गंभीर लक्षण दिखाई देते हैं। हम जल्द ही किसी परामर्शदाता से बात करने की सलाह देते हैं।",
		},
		domain.BandSevere: {
			"en": "Your responses suggest severe symptoms of depression. Please reach out to a mental-health professional as soon as you can.",
			"hi": "आपके उत्तरों से अवसाद के गंभीर लक्षण दिखाई देते हैं। कृपया जल्द से जल्द किसी मानसिक स्वास्थ्य विशेषज्ञ से संपर्क करें।",
		},
	},
	domain.InstrumentGAD7: {
		domain.BandMinimal: {
			"en": "Your responses suggest minimal symptoms of anxiety.",
			"hi": "आपके उत्तरों से चिंता के न्यूनतम लक्षण दिखाई देते हैं।",
		},
		domain.BandMild: {
			"en": "Your responses suggest mild symptoms of anxiety.",
			"hi": "आपके उत्तरों से चिंता के हल्के लक्षण दिखाई देते हैं।",
		},
		domain.BandModerate: {
			"en": "Your responses suggest moderate symptoms of anxiety. Talking to a counsellor could help.",
			"hi": "आपके उत्तरों से चिंता के मध्यम लक्षण दिखाई देते हैं। किसी परामर्शदाता से बात करना सहायक हो सकता है।",
		},
		domain.BandSevere: {
			"en": "Your responses suggest severe symptoms of anxiety. Please reach out to a mental-health professional as soon as you can.",
			"hi": "आपके उत्तरों से चिंता के गंभीर लक्षण दिखाई देते हैं। कृपया जल्द से जल्द किसी मानसिक स्वास्थ्य विशेषज्ञ से संपर्क करें।",
		},
	},
}

var recommendations = map[domain.Instrument]map[domain.SeverityBand]map[string][]string{
	domain.InstrumentPHQ9: {
		domain.BandMinimal: {
			"en": {
				"Keep up routines that support your mood, like regular sleep and exercise.",
				"Check in with yourself again in a few weeks.",
			},
			"hi": {
				"नियमित नींद और व्यायाम जैसी दिनचर्या बनाए रखें जो आपके मूड को सहारा देती है।",
				"कुछ हफ्तों बाद फिर से अपनी स्थिति जांचें।",
			},
		},
		domain.BandMild: {
			"en": {
				"Try scheduling one enjoyable activity each day, even a small one.",
				"Stay connected with friends or family.",
				"Retake this screening in two weeks to track how you feel.",
			},
			"hi": {
				"हर दिन एक आनंददायक गतिविधि की योजना बनाएं, चाहे वह छोटी ही क्यों न हो।",
				"दोस्तों या परिवार के साथ जुड़े रहें।",
				"दो सप्ताह बाद यह जांच दोबारा करें।",
			},
		},
		domain.BandModerate: {
			"en": {
				"Consider booking a session with a counsellor.",
				"Keep a daily mood journal to spot patterns.",
				"Browse our self-help resources on low mood.",
			},
			"hi": {
				"किसी परामर्शदाता के साथ सत्र बुक करने पर विचार करें।",
				"पैटर्न पहचानने के लिए दैनिक मूड डायरी रखें।",
				"उदास मन से जुड़े हमारे स्व-सहायता संसाधन देखें।",
			},
		},
		domain.BandModerateSevere: {
			"en": {
				"We strongly recommend booking a counselling session this week.",
				"Tell someone you trust how you have been feeling.",
				"If things feel worse, use the helplines listed in resources.",
			},
			"hi": {
				"हम इस सप्ताह परामर्श सत्र बुक करने की पुरज़ोर सलाह देते हैं।",
				"किसी भरोसेमंद व्यक्ति को बताएं कि आप कैसा महसूस कर रहे हैं।",
				"स्थिति बिगड़ने पर संसाधनों में दी गई हेल्पलाइन का उपयोग करें।",
			},
		},
		domain.BandSevere: {
			"en": {
				"Please book a counselling session as soon as possible.",
				"Reach out to a trusted person today — you do not have to manage this alone.",
				"If you are in immediate distress, call a crisis helpline now.",
			},
			"hi": {
				"कृपया जल्द से जल्द परामर्श सत्र बुक करें।",
				"आज ही किसी भरोसेमंद व्यक्ति से संपर्क करें — आपको यह अकेले संभालने की ज़रूरत नहीं है।",
				"तत्काल संकट में हों तो अभी क्राइसिस हेल्पलाइन पर कॉल करें।",
			},
		},
	},
	domain.InstrumentGAD7: {
		domain.BandMinimal: {
			"en": {
				"Keep using habits that help you stay calm, like regular breaks and sleep.",
				"Check in with yourself again in a few weeks.",
			},
			"hi": {
				"नियमित विश्राम और नींद जैसी आदतें बनाए रखें जो आपको शांत रहने में मदद करती हैं।",
				"कुछ हफ्तों बाद फिर से अपनी स्थिति जांचें।",
			},
		},
		domain.BandMild: {
			"en": {
				"Practice a short breathing exercise when worry builds up.",
				"Limit caffeine late in the day.",
				"Retake this screening in two weeks to track how you feel.",
			},
			"hi": {
				"चिंता बढ़ने पर एक छोटा श्वास व्यायाम करें।",
				"दिन में देर से कैफीन कम करें।",
				"दो सप्ताह बाद यह जांच दोबारा करें।",
			},
		},
		domain.BandModerate: {
			"en": {
				"Consider booking a session with a counsellor.",
				"Try writing worries down and setting a daily 'worry time'.",
				"Browse our self-help resources on anxiety.",
			},
			"hi": {
				"किसी परामर्शदाता के साथ सत्र बुक करने पर विचार करें।",
				"चिंताओं को लिखें और रोज़ एक निश्चित 'चिंता समय' तय करें।",
				"चिंता से जुड़े हमारे स्व-सहायता संसाधन देखें।",
			},
		},
		domain.BandSevere: {
			"en": {
				"Please book a counselling session as soon as possible.",
				"Reach out to a trusted person today — you do not have to manage this alone.",
				"If you are in immediate distress, call a crisis helpline now.",
			},
			"hi": {
				"कृपया जल्द से जल्द परामर्श सत्र बुक करें।",
				"आज ही किसी भरोसेमंद व्यक्ति से संपर्क करें — आपको यह अकेले संभालने की ज़रूरत नहीं है।",
				"तत्काल संकट में हों तो अभी क्राइसिस हेल्पलाइन पर कॉल करें।",
			},
		},
	},
}

// Interpretation returns the localized interpretation for a scored band.
// Unknown bands fall back to "minimal", unknown languages to English; it
// never fails.
func Interpretation(instrument domain.Instrument, band domain.SeverityBand, lang string) string {
	bands, ok := interpretations[instrument]
	if !ok {
		bands = interpretations[domain.InstrumentPHQ9]
	}
	byLang, ok := bands[band]
	if !ok {
		byLang = bands[domain.BandMinimal]
	}
	if text, ok := byLang[lang]; ok {
		return text
	}
	return byLang[defaultLanguage]
}

// Recommendations returns the localized guidance list for a scored band,
// with the same band and language fallbacks as Interpretation.
func Recommendations(instrument domain.Instrument, band domain.SeverityBand, lang string) []string {
	bands, ok := recommendations[instrument]
	if !ok {
		bands = recommendations[domain.InstrumentPHQ9]
	}
	byLang, ok := bands[band]
	if !ok {
		byLang = bands[domain.BandMinimal]
	}
	if list, ok := byLang[lang]; ok {
		return list
	}
	return byLang[defaultLanguage]
}
