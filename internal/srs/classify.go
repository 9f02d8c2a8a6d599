package srs

import "time"

// Leech qualification: a failing review with quality below LeechFailQuality
// that brings the lapse count to LeechLapseThreshold or more marks one more
// leech occurrence. The coordinator evaluates this after Advance.
const (
	LeechFailQuality    = 2
	LeechLapseThreshold = 4
)

// Thresholds are the configurable cutoffs for the hard-card predicate.
type Thresholds struct {
	MinWrongForHard    int
	MaxAccuracyForHard int
}

// IsDue reports whether a card is due, comparing at calendar-day granularity.
// The time-of-day component of both arguments is ignored.
func IsDue(dueDate, today time.Time) bool {
	return !DayOf(dueDate).After(DayOf(today))
}

// IsHard reports whether a card counts as hard: it has been attempted, missed
// at least MinWrongForHard times, and its accuracy percentage is at or below
// MaxAccuracyForHard.
func IsHard(attempts, correct, wrong int, t Thresholds) bool {
	if attempts == 0 {
		return false
	}
	if wrong < t.MinWrongForHard {
		return false
	}
	accuracy := float64(correct) / float64(attempts) * 100
	return accuracy <= float64(t.MaxAccuracyForHard)
}

// DayOf truncates a time to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
