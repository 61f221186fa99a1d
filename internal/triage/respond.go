package triage

import (
	"strings"

	"github.com/campusmind/campusmind/internal/domain"
)

// BuildResponse renders a classification into the localized reply shown to
// the user. It is total: a missing template or unknown language degrades to
// the default language and then to the generic reply. Failing to answer a
// potentially vulnerable user is the worst outcome, so nothing here errors.
func BuildResponse(c domain.Classification, lang string) domain.ResponseBundle {
	if c.Crisis {
		return crisisResponse(c, lang)
	}

	tpl, ok := lookupTemplate(c.Category, lang)
	if !ok {
		return domain.ResponseBundle{
			Message:          messageOrDefault(genericMessages, lang),
			QuickReplies:     quickRepliesFor(genericQuickReplies, lang),
			ShowCrisisBanner: false,
			Category:         c.Category,
			Severity:         c.Severity,
		}
	}

	parts := []string{tpl.validation}
	for i, s := range tpl.strategies {
		if i == 2 {
			break
		}
		parts = append(parts, s)
	}
	parts = append(parts, tpl.psychoeducation)

	return domain.ResponseBundle{
		Message:          strings.Join(parts, " "),
		QuickReplies:     quickRepliesFor(categoryQuickReplies, lang),
		ShowCrisisBanner: false,
		NextSteps:        tpl.nextSteps,
		Category:         c.Category,
		Severity:         c.Severity,
	}
}

func crisisResponse(c domain.Classification, lang string) domain.ResponseBundle {
	frags, ok := crisisTexts[lang]
	if !ok {
		frags = crisisTexts[defaultLanguage]
	}
	msg := strings.Join([]string{
		frags.immediateSafety,
		frags.crisisResources,
		frags.supportAvailable,
	}, " ")

	return domain.ResponseBundle{
		Message:          msg,
		QuickReplies:     quickRepliesFor(crisisQuickReplies, lang),
		ShowCrisisBanner: true,
		Category:         c.Category,
		Severity:         c.Severity,
	}
}

func lookupTemplate(category domain.Category, lang string) (responseTemplate, bool) {
	byLang, ok := templates[category]
	if !ok {
		return responseTemplate{}, false
	}
	if tpl, ok := byLang[lang]; ok {
		return tpl, true
	}
	tpl, ok := byLang[defaultLanguage]
	return tpl, ok
}

func messageOrDefault(table map[string]string, lang string) string {
	if msg, ok := table[lang]; ok {
		return msg
	}
	return table[defaultLanguage]
}

// CrisisHelplines returns the localized crisis message and helpline lines
// used outside chat (forum auto-moderation).
func CrisisHelplines(lang string) (message string, helplines []string) {
	frags, ok := crisisTexts[lang]
	if !ok {
		frags = crisisTexts[defaultLanguage]
	}
	msg := strings.Join([]string{frags.immediateSafety, frags.crisisResources}, " ")
	return msg, quickRepliesFor(helplineLines, lang)
}
