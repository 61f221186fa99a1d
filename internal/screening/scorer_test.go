package screening

import (
	"strings"
	"testing"

	"github.com/campusmind/campusmind/internal/domain"
)

// vec builds an answer vector of n items summing to total, keeping every
// element in 0..3.
func vec(n, total int) []int {
	v := make([]int, n)
	for i := 0; i < n; i++ {
		a := total
		if a > 3 {
			a = 3
		}
		v[i] = a
		total -= a
	}
	return v
}

func TestScorePHQ9Bands(t *testing.T) {
	cases := []struct {
		total int
		want  domain.SeverityBand
	}{
		{0, domain.BandMinimal},
		{4, domain.BandMinimal},
		{5, domain.BandMild},
		{9, domain.BandMild},
		{10, domain.BandModerate},
		{14, domain.BandModerate},
		{15, domain.BandModerateSevere},
		{19, domain.BandModerateSevere},
		{20, domain.BandSevere},
		{27, domain.BandSevere},
	}
	for _, c := range cases {
		res, err := ScorePHQ9(vec(PHQ9Questions, c.total))
		if err != nil {
			t.Fatalf("ScorePHQ9(sum=%d): %v", c.total, err)
		}
		if res.Score != c.total {
			t.Fatalf("score = %d, want %d", res.Score, c.total)
		}
		if res.MaxScore != 27 {
			t.Fatalf("max score = %d, want 27", res.MaxScore)
		}
		if res.Band != c.want {
			t.Fatalf("sum %d: band = %q, want %q", c.total, res.Band, c.want)
		}
		if res.Interpretation == "" {
			t.Fatalf("sum %d: empty interpretation", c.total)
		}
	}
}

func TestScoreGAD7Bands(t *testing.T) {
	cases := []struct {
		total int
		want  domain.SeverityBand
	}{
		{0, domain.BandMinimal},
		{4, domain.BandMinimal},
		{5, domain.BandMild},
		{9, domain.BandMild},
		{10, domain.BandModerate},
		{14, domain.BandModerate},
		{15, domain.BandSevere},
		{21, domain.BandSevere},
	}
	for _, c := range cases {
		res, err := ScoreGAD7(vec(GAD7Questions, c.total))
		if err != nil {
			t.Fatalf("ScoreGAD7(sum=%d): %v", c.total, err)
		}
		if res.Score != c.total {
			t.Fatalf("score = %d, want %d", res.Score, c.total)
		}
		if res.MaxScore != 21 {
			t.Fatalf("max score = %d, want 21", res.MaxScore)
		}
		if res.Band != c.want {
			t.Fatalf("sum %d: band = %q, want %q", c.total, res.Band, c.want)
		}
	}
}

func TestScoreIsSumOfAnswers(t *testing.T) {
	answers := []int{0, 1, 2, 3, 0, 1, 2, 3, 1}
	res, err := ScorePHQ9(answers)
	if err != nil {
		t.Fatalf("ScorePHQ9: %v", err)
	}
	if res.Score != 13 {
		t.Fatalf("score = %d, want 13", res.Score)
	}

	single := []int{0, 0, 0, 0, 1, 0, 0, 0, 0}
	res, err = ScorePHQ9(single)
	if err != nil {
		t.Fatalf("ScorePHQ9: %v", err)
	}
	if res.Score != 1 || res.Band != domain.BandMinimal {
		t.Fatalf("got score %d band %q, want 1 minimal", res.Score, res.Band)
	}
}

func TestScoreRejectsBadLength(t *testing.T) {
	_, err := ScorePHQ9(make([]int, 8))
	if err == nil {
		t.Fatal("expected error for 8 answers")
	}
	if !domain.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError, got %T", err)
	}
	if !strings.Contains(err.Error(), "expected 9 answers") {
		t.Fatalf("error should name the length constraint, got %q", err)
	}

	if _, err := ScoreGAD7(make([]int, 9)); err == nil {
		t.Fatal("expected error for 9 answers on GAD-7")
	}
}

func TestScoreRejectsOutOfRange(t *testing.T) {
	answers := []int{0, 0, 0, 4, 0, 0, 0, 0, 0}
	_, err := ScorePHQ9(answers)
	if err == nil {
		t.Fatal("expected error for answer value 4")
	}
	if !domain.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError, got %T", err)
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("error should name the range constraint, got %q", err)
	}

	if _, err := ScoreGAD7([]int{-1, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for negative answer")
	}
}

func TestScoreDispatch(t *testing.T) {
	if _, err := Score(domain.InstrumentGAD7, vec(GAD7Questions, 6)); err != nil {
		t.Fatalf("Score gad7: %v", err)
	}
	if _, err := Score(domain.Instrument("mmpi"), nil); err == nil {
		t.Fatal("expected error for unknown instrument")
	}
}
