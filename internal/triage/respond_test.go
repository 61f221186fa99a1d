package triage

import (
	"strings"
	"testing"

	"github.com/campusmind/campusmind/internal/domain"
)

func TestBuildResponseCrisis(t *testing.T) {
	c := domain.Classification{
		Category: domain.CategoryCrisis,
		Severity: domain.SeverityCrisis,
		Crisis:   true,
	}
	for _, lang := range []string{"en", "hi", "fr"} {
		b := BuildResponse(c, lang)
		if !b.ShowCrisisBanner {
			t.Fatalf("lang %q: crisis banner not shown", lang)
		}
		if b.Message == "" {
			t.Fatalf("lang %q: empty crisis message", lang)
		}
		if len(b.QuickReplies) != 3 {
			t.Fatalf("lang %q: want 3 crisis quick replies, got %d", lang, len(b.QuickReplies))
		}
	}

	// the three fragments are space-joined in order
	b := BuildResponse(c, "en")
	frags := crisisTexts["en"]
	want := frags.immediateSafety + " " + frags.crisisResources + " " + frags.supportAvailable
	if b.Message != want {
		t.Fatalf("crisis message = %q, want %q", b.Message, want)
	}
}

func TestBuildResponseCategory(t *testing.T) {
	c := domain.Classification{
		Category: domain.CategoryAnxiety,
		Severity: domain.SeverityModerate,
	}
	b := BuildResponse(c, "en")
	if b.ShowCrisisBanner {
		t.Fatal("crisis banner on non-crisis response")
	}
	tpl := templates[domain.CategoryAnxiety]["en"]
	if !strings.HasPrefix(b.Message, tpl.validation) {
		t.Fatalf("message should start with validation sentence: %q", b.Message)
	}
	// first two strategies only, then psychoeducation
	if !strings.Contains(b.Message, tpl.strategies[0]) || !strings.Contains(b.Message, tpl.strategies[1]) {
		t.Fatal("message missing strategy suggestions")
	}
	if strings.Contains(b.Message, tpl.strategies[2]) {
		t.Fatal("message should include at most two strategies")
	}
	if !strings.HasSuffix(b.Message, tpl.psychoeducation) {
		t.Fatalf("message should end with psychoeducation sentence: %q", b.Message)
	}
	if b.NextSteps != tpl.nextSteps {
		t.Fatalf("next steps = %q, want %q", b.NextSteps, tpl.nextSteps)
	}
	if len(b.QuickReplies) != 4 {
		t.Fatalf("want 4 quick replies, got %d", len(b.QuickReplies))
	}
}

func TestBuildResponseGenericFallback(t *testing.T) {
	c := domain.Classification{
		Category: domain.CategoryGeneral,
		Severity: domain.SeverityLow,
	}
	b := BuildResponse(c, "en")
	if b.Message != genericMessages["en"] {
		t.Fatalf("general category should use generic message, got %q", b.Message)
	}
	if len(b.QuickReplies) != 3 {
		t.Fatalf("want 3 generic quick replies, got %d", len(b.QuickReplies))
	}
	if b.ShowCrisisBanner {
		t.Fatal("crisis banner on generic response")
	}
}

func TestBuildResponseNeverEmpty(t *testing.T) {
	categories := []domain.Category{
		domain.CategoryAnxiety, domain.CategoryDepression, domain.CategoryStressBurnout,
		domain.CategorySleep, domain.CategoryAcademicStress, domain.CategorySocialIsolation,
		domain.CategoryCrisis, domain.CategoryGeneral, domain.Category("unknown"),
	}
	langs := []string{"en", "hi", "fr", ""}
	for _, cat := range categories {
		for _, lang := range langs {
			c := domain.Classification{
				Category: cat,
				Severity: domain.SeverityLow,
				Crisis:   cat == domain.CategoryCrisis,
			}
			b := BuildResponse(c, lang)
			if b.Message == "" {
				t.Fatalf("empty message for %s/%q", cat, lang)
			}
			if len(b.QuickReplies) == 0 {
				t.Fatalf("empty quick replies for %s/%q", cat, lang)
			}
			if b.Category != cat || b.Severity != domain.SeverityLow {
				t.Fatalf("bundle should echo classification for %s/%q", cat, lang)
			}
		}
	}
}

func TestBuildResponseUnknownLanguageFallsBack(t *testing.T) {
	c := domain.Classification{Category: domain.CategorySleep, Severity: domain.SeverityLow}
	fr := BuildResponse(c, "fr")
	en := BuildResponse(c, "en")
	if fr.Message != en.Message {
		t.Fatalf("unknown language should render the default language, got %q", fr.Message)
	}
}

func TestCrisisHelplines(t *testing.T) {
	msg, lines := CrisisHelplines("hi")
	if msg == "" || len(lines) == 0 {
		t.Fatal("expected localized crisis message and helplines")
	}
	msg, lines = CrisisHelplines("de")
	if msg == "" || len(lines) == 0 {
		t.Fatal("unknown language must still return helplines")
	}
}
