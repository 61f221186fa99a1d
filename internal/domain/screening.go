package domain

import "time"

// Instrument names a supported screening questionnaire
type Instrument string

const (
	InstrumentPHQ9 Instrument = "phq9"
	InstrumentGAD7 Instrument = "gad7"
)

// SeverityBand is a named tier derived from a total screening score
type SeverityBand string

const (
	BandMinimal        SeverityBand = "minimal"
	BandMild           SeverityBand = "mild"
	BandModerate       SeverityBand = "moderate"
	BandModerateSevere SeverityBand = "moderate-severe"
	BandSevere         SeverityBand = "severe"
)

// Screening is a stored screening submission. Score and Band are derived
// deterministically from Answers at submission time and never change.
type Screening struct {
	ID        string       `json:"id"`
	SessionID string       `json:"session_id"`
	Type      Instrument   `json:"type"`
	Answers   []int        `json:"answers"`
	Score     int          `json:"score"`
	Band      SeverityBand `json:"severity_band"`
	CreatedAt time.Time    `json:"created_at"`
}

// SubmitScreeningRequest is the request to submit a completed questionnaire
type SubmitScreeningRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Type      string `json:"type" binding:"required"`
	Answers   []int  `json:"answers" binding:"required"`
}

// SubmitScreeningResponse is the scored result returned to the client
type SubmitScreeningResponse struct {
	SessionID       string       `json:"session_id"`
	Type            Instrument   `json:"type"`
	Score           int          `json:"score"`
	MaxScore        int          `json:"max_score"`
	Band            SeverityBand `json:"severity_band"`
	Interpretation  string       `json:"interpretation"`
	Recommendations []string     `json:"recommendations"`
}
