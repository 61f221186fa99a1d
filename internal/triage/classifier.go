// Package triage maps free-text chat messages to mental-health categories
// and severity tiers. The classifier is deliberately a deterministic
// keyword-trigger system, not an NLP model: the same input always produces
// the same classification, which keeps every routing decision auditable in
// a safety-critical domain.
package triage

import (
	"strings"
	"time"

	"github.com/campusmind/campusmind/internal/domain"
)

// screeningRecencyWindow bounds how long a past screening result keeps
// influencing chat severity.
const screeningRecencyWindow = 60 * 24 * time.Hour

// crisisKeywords short-circuit all other scoring. Any match classifies the
// message as a crisis regardless of history or screening context.
var crisisKeywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"want to die",
	"wanna die",
	"better off dead",
	"no reason to live",
	"hurt myself",
	"harm myself",
	"self harm",
	"self-harm",
	"end it all",
	"can't go on",
}

// categoryTriggers holds the keyword list per non-crisis category. A
// message's score for a category is matches divided by list length, so
// list sizes are part of the calibration: a hit in a short list outweighs
// the same hit in a long one.
var categoryTriggers = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryAnxiety, []string{
		"anxious", "anxiety", "panic", "worried", "worrying",
		"nervous", "on edge", "racing thoughts", "overthinking", "heart racing",
	}},
	{domain.CategoryDepression, []string{
		"depressed", "depression", "hopeless", "worthless", "empty",
		"numb", "crying", "no energy", "lost interest", "nothing matters",
	}},
	{domain.CategoryStressBurnout, []string{
		"stressed", "stress", "burnout", "burned out", "burnt out",
		"overwhelmed", "exhausted", "too much pressure", "can't cope",
	}},
	{domain.CategorySleep, []string{
		"can't sleep", "insomnia", "sleepless", "nightmares",
		"awake all night", "trouble sleeping", "tired all day", "oversleeping",
	}},
	{domain.CategoryAcademicStress, []string{
		"exam", "test", "assignment", "deadline", "grades",
		"backlog", "semester", "placement", "can't focus", "concentrate",
	}},
	{domain.CategorySocialIsolation, []string{
		"lonely", "alone", "no friends", "isolated", "left out",
		"homesick", "nobody understands", "don't belong",
	}},
}

// severity cutoffs on the match ratio
const (
	highRatio     = 0.6
	moderateRatio = 0.3
)

// ContainsCrisisKeyword reports whether text trips the crisis keyword list.
// Forum auto-moderation uses the same list as chat so the two surfaces can
// never disagree on what counts as a crisis signal.
func ContainsCrisisKeyword(text string) bool {
	normalized := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Classify assigns a category, severity, and crisis flag to one user
// message. History is accepted as conversational context but does not steer
// the decision; only the message text and recent screening results do.
func Classify(text string, history []domain.ChatMessage, screenings []domain.Screening) domain.Classification {
	return ClassifyAt(time.Now(), text, history, screenings)
}

// ClassifyAt is Classify with an explicit clock for the screening recency
// window.
func ClassifyAt(now time.Time, text string, history []domain.ChatMessage, screenings []domain.Screening) domain.Classification {
	normalized := strings.ToLower(text)

	// Crisis detection runs first and alone: it must never be diluted or
	// overridden by category scoring.
	for _, kw := range crisisKeywords {
		if strings.Contains(normalized, kw) {
			return domain.Classification{
				Category:   domain.CategoryCrisis,
				Severity:   domain.SeverityCrisis,
				Crisis:     true,
				Confidence: 1.0,
			}
		}
	}

	best := domain.CategoryGeneral
	bestRatio := 0.0
	for _, ct := range categoryTriggers {
		matches := 0
		for _, kw := range ct.keywords {
			if strings.Contains(normalized, kw) {
				matches++
			}
		}
		ratio := float64(matches) / float64(len(ct.keywords))
		// strictly greater: ties resolve to the first-declared category
		if ratio > bestRatio {
			bestRatio = ratio
			best = ct.category
		}
	}

	if bestRatio == 0 {
		return domain.Classification{
			Category:   domain.CategoryGeneral,
			Severity:   domain.SeverityLow,
			Crisis:     false,
			Confidence: 0.0,
		}
	}

	severity := domain.SeverityLow
	switch {
	case bestRatio > highRatio:
		severity = domain.SeverityHigh
	case bestRatio > moderateRatio:
		severity = domain.SeverityModerate
	}

	severity = augmentFromScreenings(now, severity, screenings)

	return domain.Classification{
		Category:   best,
		Severity:   severity,
		Crisis:     false,
		Confidence: bestRatio,
	}
}

// augmentFromScreenings escalates chat severity from the most recent
// screening inside the recency window. It only ever raises severity:
// a recent clinical risk signal should make the response more cautious,
// never less. Malformed records are skipped so one corrupt row cannot
// block a reply.
func augmentFromScreenings(now time.Time, severity domain.Severity, screenings []domain.Screening) domain.Severity {
	var latest *domain.Screening
	cutoff := now.Add(-screeningRecencyWindow)
	for i := range screenings {
		s := &screenings[i]
		if s.CreatedAt.IsZero() || s.Band == "" {
			continue
		}
		if s.CreatedAt.Before(cutoff) || s.CreatedAt.After(now) {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return severity
	}

	switch latest.Band {
	case domain.BandSevere, domain.BandModerateSevere:
		return domain.SeverityHigh
	case domain.BandModerate:
		if severity == domain.SeverityLow {
			return domain.SeverityModerate
		}
	}
	return severity
}
