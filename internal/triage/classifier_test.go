package triage

import (
	"reflect"
	"testing"
	"time"

	"github.com/campusmind/campusmind/internal/domain"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func screeningAgo(days int, band domain.SeverityBand) domain.Screening {
	return domain.Screening{
		ID:        "s1",
		Type:      domain.InstrumentPHQ9,
		Band:      band,
		CreatedAt: testNow.Add(-time.Duration(days) * 24 * time.Hour),
	}
}

func TestClassifyCrisisShortCircuit(t *testing.T) {
	// crisis wins regardless of any history or screening context
	history := []domain.ChatMessage{
		{Sender: domain.SenderUser, Text: "I had a good week", CreatedAt: testNow},
	}
	screenings := []domain.Screening{screeningAgo(5, domain.BandMinimal)}

	got := ClassifyAt(testNow, "I want to kill myself", history, screenings)
	want := domain.Classification{
		Category:   domain.CategoryCrisis,
		Severity:   domain.SeverityCrisis,
		Crisis:     true,
		Confidence: 1.0,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// case-insensitive
	got = ClassifyAt(testNow, "Sometimes I think about SUICIDE", nil, nil)
	if !got.Crisis || got.Category != domain.CategoryCrisis {
		t.Fatalf("uppercase crisis keyword not detected: %+v", got)
	}
}

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		text string
		want domain.Category
	}{
		{"I have a test tomorrow and can't focus", domain.CategoryAcademicStress},
		{"I've been so anxious lately, constant panic", domain.CategoryAnxiety},
		{"I feel hopeless and worthless, just crying all the time", domain.CategoryDepression},
		{"totally burned out and overwhelmed with work", domain.CategoryStressBurnout},
		{"I can't sleep, lying awake all night", domain.CategorySleep},
		{"I feel so lonely here, I have no friends", domain.CategorySocialIsolation},
	}
	for _, c := range cases {
		got := ClassifyAt(testNow, c.text, nil, nil)
		if got.Category != c.want {
			t.Fatalf("Classify(%q).Category = %q, want %q", c.text, got.Category, c.want)
		}
		if got.Crisis {
			t.Fatalf("Classify(%q) flagged crisis", c.text)
		}
		if got.Confidence <= 0 {
			t.Fatalf("Classify(%q).Confidence = %v, want > 0", c.text, got.Confidence)
		}
	}
}

func TestClassifyEmptyAndUnmatched(t *testing.T) {
	want := domain.Classification{
		Category:   domain.CategoryGeneral,
		Severity:   domain.SeverityLow,
		Crisis:     false,
		Confidence: 0.0,
	}
	if got := ClassifyAt(testNow, "", nil, nil); got != want {
		t.Fatalf("empty string: got %+v, want %+v", got, want)
	}
	if got := ClassifyAt(testNow, "what is the weather like", nil, nil); got != want {
		t.Fatalf("unmatched text: got %+v, want %+v", got, want)
	}
}

func TestClassifySeverityFromRatio(t *testing.T) {
	// one in eight sleep keywords: ratio 0.125 -> low
	got := ClassifyAt(testNow, "insomnia again", nil, nil)
	if got.Category != domain.CategorySleep || got.Severity != domain.SeverityLow {
		t.Fatalf("got %+v, want sleep/low", got)
	}

	// four of eight sleep keywords: ratio 0.5 -> moderate
	text := "insomnia, nightmares, awake all night, trouble sleeping"
	got = ClassifyAt(testNow, text, nil, nil)
	if got.Category != domain.CategorySleep || got.Severity != domain.SeverityModerate {
		t.Fatalf("got %+v, want sleep/moderate", got)
	}

	// six of eight: ratio 0.75 -> high
	text = "insomnia, sleepless, nightmares, awake all night, trouble sleeping, tired all day"
	got = ClassifyAt(testNow, text, nil, nil)
	if got.Category != domain.CategorySleep || got.Severity != domain.SeverityHigh {
		t.Fatalf("got %+v, want sleep/high", got)
	}
}

func TestScreeningAugmentation(t *testing.T) {
	lowAnxiety := "feeling a bit anxious"

	// severe screening 10 days ago escalates low -> high
	got := ClassifyAt(testNow, lowAnxiety, nil, []domain.Screening{screeningAgo(10, domain.BandSevere)})
	if got.Severity != domain.SeverityHigh {
		t.Fatalf("recent severe screening: severity = %q, want high", got.Severity)
	}

	// identical screening 90 days ago is outside the window
	got = ClassifyAt(testNow, lowAnxiety, nil, []domain.Screening{screeningAgo(90, domain.BandSevere)})
	if got.Severity != domain.SeverityLow {
		t.Fatalf("stale severe screening: severity = %q, want low", got.Severity)
	}

	// moderate-severe also forces high
	got = ClassifyAt(testNow, lowAnxiety, nil, []domain.Screening{screeningAgo(3, domain.BandModerateSevere)})
	if got.Severity != domain.SeverityHigh {
		t.Fatalf("moderate-severe screening: severity = %q, want high", got.Severity)
	}

	// moderate raises low to moderate only
	got = ClassifyAt(testNow, lowAnxiety, nil, []domain.Screening{screeningAgo(3, domain.BandModerate)})
	if got.Severity != domain.SeverityModerate {
		t.Fatalf("moderate screening: severity = %q, want moderate", got.Severity)
	}

	// escalate only: minimal/mild never downgrade
	text := "insomnia, nightmares, awake all night, trouble sleeping"
	got = ClassifyAt(testNow, text, nil, []domain.Screening{screeningAgo(3, domain.BandMinimal)})
	if got.Severity != domain.SeverityModerate {
		t.Fatalf("minimal screening must not downgrade: got %q", got.Severity)
	}

	// most recent in-window screening wins
	got = ClassifyAt(testNow, lowAnxiety, nil, []domain.Screening{
		screeningAgo(40, domain.BandSevere),
		screeningAgo(2, domain.BandMinimal),
	})
	if got.Severity != domain.SeverityLow {
		t.Fatalf("latest screening should win: got %q", got.Severity)
	}
}

func TestMalformedScreeningsSkipped(t *testing.T) {
	screenings := []domain.Screening{
		{ID: "corrupt-1"}, // zero CreatedAt, empty band
		{ID: "corrupt-2", CreatedAt: testNow.Add(-24 * time.Hour)},   // no band
		{ID: "corrupt-3", Band: domain.BandSevere},                   // no timestamp
		screeningAgo(5, domain.BandSevere),
	}
	got := ClassifyAt(testNow, "feeling anxious", nil, screenings)
	if got.Severity != domain.SeverityHigh {
		t.Fatalf("valid record among corrupt ones should still apply: got %+v", got)
	}

	// only corrupt records: classification proceeds unaugmented
	got = ClassifyAt(testNow, "feeling anxious", nil, screenings[:3])
	if got.Severity != domain.SeverityLow {
		t.Fatalf("corrupt-only context should leave severity alone: got %+v", got)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	history := []domain.ChatMessage{{Sender: domain.SenderUser, Text: "earlier message"}}
	screenings := []domain.Screening{screeningAgo(10, domain.BandModerate)}
	text := "anxious about my exam deadline"

	first := ClassifyAt(testNow, text, history, screenings)
	second := ClassifyAt(testNow, text, history, screenings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification not deterministic: %+v vs %+v", first, second)
	}
}

func TestHistoryIsInertContext(t *testing.T) {
	text := "feeling anxious"
	noHistory := ClassifyAt(testNow, text, nil, nil)
	withHistory := ClassifyAt(testNow, text, []domain.ChatMessage{
		{Sender: domain.SenderUser, Text: "I want to give up on everything", CreatedAt: testNow},
		{Sender: domain.SenderBot, Text: "previous reply", CreatedAt: testNow},
	}, nil)
	if noHistory != withHistory {
		t.Fatalf("history must not change classification: %+v vs %+v", noHistory, withHistory)
	}
}

func TestContainsCrisisKeyword(t *testing.T) {
	if !ContainsCrisisKeyword("thinking about Self-Harm again") {
		t.Fatal("expected crisis keyword match")
	}
	if ContainsCrisisKeyword("thinking about dinner") {
		t.Fatal("unexpected crisis keyword match")
	}
}
