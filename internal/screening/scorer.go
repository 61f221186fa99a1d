// Package screening scores standardized clinical questionnaires (PHQ-9,
// GAD-7). Scoring is a pure function over the answer vector: no state, no
// I/O, safe for concurrent use. Invalid submissions are rejected, never
// coerced.
package screening

import (
	"github.com/campusmind/campusmind/internal/domain"
)

const (
	// PHQ9Questions is the item count of the PHQ-9 instrument
	PHQ9Questions = 9
	// GAD7Questions is the item count of the GAD-7 instrument
	GAD7Questions = 7

	// answers use the 0..3 Likert scale ("not at all" .. "nearly every day")
	answerMin = 0
	answerMax = 3
)

// Result is the scored outcome of one questionnaire submission
type Result struct {
	Score          int                 `json:"score"`
	MaxScore       int                 `json:"max_score"`
	Band           domain.SeverityBand `json:"severity_band"`
	Interpretation string              `json:"interpretation"`
}

// ScorePHQ9 scores a PHQ-9 answer vector. It requires exactly 9 answers,
// each in [0,3], and returns a *domain.InvalidInputError naming the violated
// constraint otherwise.
func ScorePHQ9(answers []int) (*Result, error) {
	total, err := sumAnswers(answers, PHQ9Questions)
	if err != nil {
		return nil, err
	}
	band := phq9Band(total)
	return &Result{
		Score:          total,
		MaxScore:       PHQ9Questions * answerMax,
		Band:           band,
		Interpretation: Interpretation(domain.InstrumentPHQ9, band, defaultLanguage),
	}, nil
}

// ScoreGAD7 scores a GAD-7 answer vector. It requires exactly 7 answers,
// each in [0,3].
func ScoreGAD7(answers []int) (*Result, error) {
	total, err := sumAnswers(answers, GAD7Questions)
	if err != nil {
		return nil, err
	}
	band := gad7Band(total)
	return &Result{
		Score:          total,
		MaxScore:       GAD7Questions * answerMax,
		Band:           band,
		Interpretation: Interpretation(domain.InstrumentGAD7, band, defaultLanguage),
	}, nil
}

// Score dispatches on instrument name
func Score(instrument domain.Instrument, answers []int) (*Result, error) {
	switch instrument {
	case domain.InstrumentPHQ9:
		return ScorePHQ9(answers)
	case domain.InstrumentGAD7:
		return ScoreGAD7(answers)
	default:
		return nil, domain.NewInvalidInput("type", "unknown instrument %q", string(instrument))
	}
}

func sumAnswers(answers []int, want int) (int, error) {
	if len(answers) != want {
		return 0, domain.NewInvalidInput("answers", "expected %d answers, got %d", want, len(answers))
	}
	total := 0
	for i, a := range answers {
		if a < answerMin || a > answerMax {
			return 0, domain.NewInvalidInput("answers", "answer %d out of range: %d (must be %d..%d)", i+1, a, answerMin, answerMax)
		}
		total += a
	}
	return total, nil
}

// Published PHQ-9 severity thresholds (inclusive upper bounds).
func phq9Band(score int) domain.SeverityBand {
	switch {
	case score <= 4:
		return domain.BandMinimal
	case score <= 9:
		return domain.BandMild
	case score <= 14:
		return domain.BandModerate
	case score <= 19:
		return domain.BandModerateSevere
	default:
		return domain.BandSevere
	}
}

// Published GAD-7 severity thresholds (inclusive upper bounds).
func gad7Band(score int) domain.SeverityBand {
	switch {
	case score <= 4:
		return domain.BandMinimal
	case score <= 9:
		return domain.BandMild
	case score <= 14:
		return domain.BandModerate
	default:
		return domain.BandSevere
	}
}
