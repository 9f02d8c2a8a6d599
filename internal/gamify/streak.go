package gamify

import "time"

// NextStreak returns the streak value after a review on today's date.
// lastActive is the previous active calendar day, or nil if the learner has
// never reviewed. A same-day review leaves the streak alone, a gap of
// exactly one day extends it, and anything longer starts over at 1.
func NextStreak(lastActive *time.Time, today time.Time, current int) int {
	if lastActive == nil {
		return 1
	}

	gap := dayGap(*lastActive, today)
	switch {
	case gap == 0:
		if current < 1 {
			return 1
		}
		return current
	case gap == 1:
		return current + 1
	default:
		return 1
	}
}

// dayGap counts whole calendar days from a to b in UTC.
func dayGap(a, b time.Time) int {
	ua := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
