package triage

import "github.com/campusmind/campusmind/internal/domain"

const defaultLanguage = "en"

// responseTemplate is the localized material BuildResponse composes a reply
// from: one validating sentence, coping strategies (the first two are used),
// one psychoeducation sentence, and a suggested next step.
type responseTemplate struct {
	validation      string
	strategies      []string
	psychoeducation string
	nextSteps       string
}

// crisisFragments are concatenated, in order, into the crisis reply.
type crisisFragments struct {
	immediateSafety  string
	crisisResources  string
	supportAvailable string
}

var crisisTexts = map[string]crisisFragments{
	"en": {
		immediateSafety:  "I'm really glad you told me. Your safety matters most right now — if you are in immediate danger, please call emergency services.",
		crisisResources:  "You can reach a trained counsellor any time on the Tele-MANAS helpline at 14416, free and confidential.",
		supportAvailable: "You don't have to face this alone; I can connect you with a counsellor right now if you'd like.",
	},
	"hi": {
		immediateSafety:  "मुझे बताने के लिए धन्यवाद। अभी आपकी सुरक्षा सबसे महत्वपूर्ण है — यदि आप तत्काल खतरे में हैं तो कृपया आपातकालीन सेवाओं को कॉल करें।",
		crisisResources:  "आप किसी भी समय टेली-मानस हेल्पलाइन 14416 पर प्रशिक्षित परामर्शदाता से निःशुल्क और गोपनीय बात कर सकते हैं।",
		supportAvailable: "आपको इसका सामना अकेले नहीं करना है; आप चाहें तो मैं अभी आपको परामर्शदाता से जोड़ सकता हूँ।",
	},
}

var genericMessages = map[string]string{
	"en": "Thanks for sharing. I'm here to listen — tell me a bit more about what's on your mind, or try one of the options below.",
	"hi": "साझा करने के लिए धन्यवाद। मैं सुनने के लिए यहाँ हूँ — अपने मन की बात थोड़ा और बताएं, या नीचे दिए विकल्पों में से कोई आज़माएं।",
}

var crisisQuickReplies = map[string][]string{
	"en": {"Show crisis resources", "Connect with counsellor", "Find helplines"},
	"hi": {"संकट संसाधन दिखाएं", "परामर्शदाता से जुड़ें", "हेल्पलाइन खोजें"},
}

var genericQuickReplies = map[string][]string{
	"en": {"Take screening test", "Book counselling", "Browse resources"},
	"hi": {"स्क्रीनिंग टेस्ट लें", "परामर्श बुक करें", "संसाधन देखें"},
}

var helplineLines = map[string][]string{
	"en": {
		"Tele-MANAS (24x7, free): 14416",
		"KIRAN helpline: 1800-599-0019",
		"Emergency services: 112",
	},
	"hi": {
		"टेली-मानस (24x7, निःशुल्क): 14416",
		"किरण हेल्पलाइन: 1800-599-0019",
		"आपातकालीन सेवाएं: 112",
	},
}

var categoryQuickReplies = map[string][]string{
	"en": {"Tell me more", "Take screening", "Book session", "Browse resources"},
	"hi": {"और बताएं", "स्क्रीनिंग लें", "सत्र बुक करें", "संसाधन देखें"},
}

// templates keys responses by category then language. GENERAL and CRISIS
// intentionally have no entry; they render through the generic and crisis
// paths.
var templates = map[domain.Category]map[string]responseTemplate{
	domain.CategoryAnxiety: {
		"en": {
			validation: "It sounds like anxiety has been weighing on you, and that's a hard place to be.",
			strategies: []string{
				"When worry spikes, try slow breathing: in for 4 counts, hold for 4, out for 6.",
				"Grounding can help too — name 5 things you can see, 4 you can touch, 3 you can hear.",
				"Writing worries down before bed can stop them circling.",
			},
			psychoeducation: "Anxiety is your body's alarm system firing too easily; it is common and it is treatable.",
			nextSteps:       "A GAD-7 screening can help you see where your anxiety level sits right now.",
		},
		"hi": {
			validation: "लगता है चिंता आप पर भारी पड़ रही है, और यह वाकई कठिन है।",
			strategies: []string{
				"चिंता बढ़ने पर धीमी साँस लें: 4 गिनती में अंदर, 4 रोकें, 6 में बाहर।",
				"ग्राउंडिंग भी मदद करती है — 5 चीज़ें देखें, 4 छुएं, 3 सुनें।",
				"सोने से पहले चिंताएं लिख लेने से वे घूमती नहीं रहतीं।",
			},
			psychoeducation: "चिंता शरीर की चेतावनी प्रणाली का ज़रूरत से ज़्यादा सक्रिय होना है; यह आम है और इसका उपचार संभव है।",
			nextSteps:       "GAD-7 स्क्रीनिंग से आप देख सकते हैं कि अभी आपकी चिंता का स्तर कहाँ है।",
		},
	},
	domain.CategoryDepression: {
		"en": {
			validation: "Thank you for opening up — feeling this low takes a real toll, and your feelings are valid.",
			strategies: []string{
				"Try one tiny activity you used to enjoy, even for five minutes, without expecting to feel great.",
				"Getting sunlight and a short walk early in the day can nudge your mood.",
				"Tell one person you trust how you've been feeling.",
			},
			psychoeducation: "Depression drains energy and makes everything feel pointless; that is the illness talking, not the truth about you.",
			nextSteps:       "A PHQ-9 screening can give you a clearer picture of what you're experiencing.",
		},
		"hi": {
			validation: "खुलकर बताने के लिए धन्यवाद — इतना उदास महसूस करना बहुत भारी होता है, और आपकी भावनाएं जायज़ हैं।",
			strategies: []string{
				"कोई छोटी सी पसंदीदा गतिविधि पाँच मिनट के लिए आज़माएं, अच्छा महसूस करने की उम्मीद के बिना।",
				"सुबह धूप और छोटी सैर मूड को बेहतर कर सकती है।",
				"किसी एक भरोसेमंद व्यक्ति को बताएं कि आप कैसा महसूस कर रहे हैं।",
			},
			psychoeducation: "अवसाद ऊर्जा खींच लेता है और सब व्यर्थ लगने लगता है; यह बीमारी की आवाज़ है, आपकी सच्चाई नहीं।",
			nextSteps:       "PHQ-9 स्क्रीनिंग से आपको अपनी स्थिति की स्पष्ट तस्वीर मिल सकती है।",
		},
	},
	domain.CategoryStressBurnout: {
		"en": {
			validation: "Carrying this much pressure is exhausting — it makes sense that you feel stretched thin.",
			strategies: []string{
				"Break what's in front of you into one small next step and do only that.",
				"Schedule short real breaks — even ten minutes away from screens counts.",
				"Protect one non-negotiable hour for rest in your day.",
			},
			psychoeducation: "Burnout builds when demands outrun recovery for too long; recovery time is not a luxury, it's maintenance.",
			nextSteps:       "Browsing our stress-management resources could give you a couple of quick tools.",
		},
		"hi": {
			validation: "इतना दबाव उठाना थका देने वाला है — आपका खिंचा हुआ महसूस करना स्वाभाविक है।",
			strategies: []string{
				"सामने के काम को एक छोटे अगले कदम में बाँटें और सिर्फ वही करें।",
				"छोटे असली ब्रेक तय करें — स्क्रीन से दूर दस मिनट भी मायने रखते हैं।",
				"दिन में आराम के लिए एक घंटा ज़रूर सुरक्षित रखें।",
			},
			psychoeducation: "जब माँगें लंबे समय तक आराम से आगे निकल जाती हैं तो बर्नआउट बनता है; आराम विलासिता नहीं, ज़रूरत है।",
			nextSteps:       "तनाव-प्रबंधन संसाधन देखने से आपको कुछ त्वरित उपाय मिल सकते हैं।",
		},
	},
	domain.CategorySleep: {
		"en": {
			validation: "Struggling with sleep wears everything else down — I'm sorry it's been rough at night.",
			strategies: []string{
				"Keep a consistent wake-up time, even after a bad night.",
				"Wind down for 30 minutes before bed with screens away and lights low.",
				"If you can't sleep after 20 minutes, get up and do something calm until drowsy.",
			},
			psychoeducation: "Sleep problems and stress feed each other; improving either one helps break the loop.",
			nextSteps:       "Our sleep-hygiene resources have a short routine you can try tonight.",
		},
		"hi": {
			validation: "नींद की परेशानी बाकी सब कुछ थका देती है — रातें कठिन रही हैं, यह जानकर दुख हुआ।",
			strategies: []string{
				"बुरी रात के बाद भी उठने का समय एक ही रखें।",
				"सोने से 30 मिनट पहले स्क्रीन हटाएं और रोशनी कम करें।",
				"20 मिनट में नींद न आए तो उठकर कुछ शांत काम करें, फिर लौटें।",
			},
			psychoeducation: "नींद की समस्या और तनाव एक-दूसरे को बढ़ाते हैं; किसी एक को सुधारना चक्र तोड़ता है।",
			nextSteps:       "हमारे नींद-स्वच्छता संसाधनों में एक छोटी दिनचर्या है जो आज रात आज़मा सकते हैं।",
		},
	},
	domain.CategoryAcademicStress: {
		"en": {
			validation: "Academic pressure can feel relentless, especially when deadlines and exams stack up.",
			strategies: []string{
				"Plan study in short focused blocks of 25–30 minutes with real breaks between.",
				"Start with the subject you're avoiding most, for just ten minutes.",
				"Your worth is not your grades — keep some time for things outside coursework.",
			},
			psychoeducation: "Exam stress narrows attention and hurts recall; paced study with rest genuinely outperforms all-nighters.",
			nextSteps:       "If the pressure has been constant for weeks, a short screening can show how much it's affecting you.",
		},
		"hi": {
			validation: "पढ़ाई का दबाव कभी न रुकने वाला लग सकता है, खासकर जब डेडलाइन और परीक्षाएं एक साथ आ जाएं।",
			strategies: []string{
				"25–30 मिनट के छोटे केंद्रित सत्रों में पढ़ें और बीच में असली ब्रेक लें।",
				"जिस विषय से सबसे ज़्यादा बच रहे हैं, उसी से दस मिनट शुरू करें।",
				"आपका मूल्य आपके अंक नहीं हैं — पढ़ाई के बाहर भी समय रखें।",
			},
			psychoeducation: "परीक्षा का तनाव ध्यान घटाता है और याद रखना कठिन करता है; आराम के साथ नियमित पढ़ाई रातभर जागने से बेहतर है।",
			nextSteps:       "दबाव हफ्तों से लगातार है तो एक छोटी स्क्रीनिंग इसका असर दिखा सकती है।",
		},
	},
	domain.CategorySocialIsolation: {
		"en": {
			validation: "Feeling alone is genuinely painful — it takes courage to say it out loud.",
			strategies: []string{
				"Try one small, low-stakes contact today: a message to an old friend or a hello in class.",
				"Shared-activity groups (clubs, sports, volunteering) make connection easier than open-ended socialising.",
				"Keep a regular routine in shared spaces like the library or mess, where casual contact happens naturally.",
			},
			psychoeducation: "Loneliness is a signal, like hunger — it means you need connection, not that something is wrong with you.",
			nextSteps:       "The peer-support space here is a gentle place to start; posts are anonymous.",
		},
		"hi": {
			validation: "अकेलापन सचमुच तकलीफ़ देता है — इसे कहने के लिए हिम्मत चाहिए।",
			strategies: []string{
				"आज एक छोटा सा संपर्क आज़माएं: पुराने दोस्त को संदेश या कक्षा में एक नमस्ते।",
				"साझा गतिविधि वाले समूह (क्लब, खेल, स्वयंसेवा) जुड़ना आसान बनाते हैं।",
				"लाइब्रेरी या मेस जैसी साझा जगहों की नियमित दिनचर्या रखें, वहाँ सहज मुलाक़ातें होती हैं।",
			},
			psychoeducation: "अकेलापन भूख जैसा संकेत है — इसका मतलब है आपको जुड़ाव चाहिए, न कि आपमें कोई कमी है।",
			nextSteps:       "यहाँ का पीयर-सपोर्ट स्थान शुरुआत के लिए अच्छा है; पोस्ट गुमनाम रहती हैं।",
		},
	},
}

func quickRepliesFor(table map[string][]string, lang string) []string {
	if qr, ok := table[lang]; ok {
		return qr
	}
	return table[defaultLanguage]
}
