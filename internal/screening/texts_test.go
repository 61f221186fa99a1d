package screening

import (
	"testing"

	"github.com/campusmind/campusmind/internal/domain"
)

func TestRecommendationsFallbacks(t *testing.T) {
	// exact hit
	got := Recommendations(domain.InstrumentPHQ9, domain.BandSevere, "hi")
	if len(got) == 0 {
		t.Fatal("expected recommendations for phq9/severe/hi")
	}

	// unknown language falls back to English
	en := Recommendations(domain.InstrumentGAD7, domain.BandMild, "en")
	fr := Recommendations(domain.InstrumentGAD7, domain.BandMild, "fr")
	if len(fr) == 0 || fr[0] != en[0] {
		t.Fatalf("unknown language should fall back to English, got %v", fr)
	}

	// GAD-7 has no moderate-severe band: fall back to minimal, not fail
	got = Recommendations(domain.InstrumentGAD7, domain.BandModerateSevere, "en")
	if len(got) == 0 {
		t.Fatal("unknown band should degrade to minimal guidance")
	}

	// unknown instrument still returns something
	got = Recommendations(domain.Instrument("mmpi"), domain.BandMild, "en")
	if len(got) == 0 {
		t.Fatal("unknown instrument should degrade, not fail")
	}
}

func TestInterpretationFallbacks(t *testing.T) {
	if Interpretation(domain.InstrumentPHQ9, domain.BandModerate, "hi") == "" {
		t.Fatal("expected localized interpretation")
	}
	if Interpretation(domain.InstrumentPHQ9, domain.SeverityBand("unknown"), "fr") == "" {
		t.Fatal("interpretation lookup must never come back empty")
	}
}
