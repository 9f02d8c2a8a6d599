package gamify

// Badge identifiers. A badge once granted is never removed.
const (
	BadgeFirstReview = "first-review"
	BadgeReviews100  = "reviews-100"
	BadgeCorrect250  = "correct-250"
	BadgeStreak3     = "streak-3"
	BadgeStreak7     = "streak-7"
	BadgeStreak30    = "streak-30"
	BadgeXP500       = "xp-500"
	BadgeXP2000      = "xp-2000"
)

// Metrics are the cumulative numbers badge thresholds are checked against.
type Metrics struct {
	Attempts int // lifetime review attempts across all cards
	Correct  int // lifetime correct answers
	Streak   int // current consecutive-day streak
	XP       int // total XP
}

type badgeRule struct {
	id   string
	earn func(Metrics) bool
}

// Rules are evaluated in display order; Grant preserves this order when
// appending newly earned badges.
var badgeRules = []badgeRule{
	{BadgeFirstReview, func(m Metrics) bool { return m.Attempts >= 1 }},
	{BadgeReviews100, func(m Metrics) bool { return m.Attempts >= 100 }},
	{BadgeCorrect250, func(m Metrics) bool { return m.Correct >= 250 }},
	{BadgeStreak3, func(m Metrics) bool { return m.Streak >= 3 }},
	{BadgeStreak7, func(m Metrics) bool { return m.Streak >= 7 }},
	{BadgeStreak30, func(m Metrics) bool { return m.Streak >= 30 }},
	{BadgeXP500, func(m Metrics) bool { return m.XP >= 500 }},
	{BadgeXP2000, func(m Metrics) bool { return m.XP >= 2000 }},
}

// Grant unions the already-held badge set with every badge the metrics earn.
// It returns the full set and the newly granted identifiers. Held badges are
// kept even if the metrics no longer satisfy them, so the set is monotonic,
// and re-running with identical metrics grants nothing new.
func Grant(held []string, m Metrics) (all []string, granted []string) {
	have := make(map[string]bool, len(held))
	all = make([]string, 0, len(held)+len(badgeRules))
	for _, id := range held {
		if !have[id] {
			have[id] = true
			all = append(all, id)
		}
	}

	for _, rule := range badgeRules {
		if have[rule.id] || !rule.earn(m) {
			continue
		}
		have[rule.id] = true
		all = append(all, rule.id)
		granted = append(granted, rule.id)
	}
	return all, granted
}

// BadgeName returns a human-readable label for a badge identifier.
func BadgeName(id string) string {
	switch id {
	case BadgeFirstReview:
		return "First review"
	case BadgeReviews100:
		return "100 reviews"
	case BadgeCorrect250:
		return "250 correct"
	case BadgeStreak3:
		return "3-day streak"
	case BadgeStreak7:
		return "7-day streak"
	case BadgeStreak30:
		return "30-day streak"
	case BadgeXP500:
		return "500 XP"
	case BadgeXP2000:
		return "2000 XP"
	default:
		return id
	}
}
