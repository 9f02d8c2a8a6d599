// Package report assembles the read-only aggregate views: the dashboard and
// the mistakes list. It never mutates state.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nosziii/words/internal/srs"
	"github.com/nosziii/words/internal/store"
)

// TrendDays is the ledger window the dashboard shows.
const TrendDays = 7

// Mistakes list bounds, matching the original API's clamp.
const (
	MinMistakes = 1
	MaxMistakes = 50
)

// Dashboard is the full aggregate view of one learner's progress.
type Dashboard struct {
	Settings  store.Settings
	Profile   store.Profile
	Totals    store.Totals
	HardCount int
	Today     store.DayEntry
	Trend     []store.DayEntry
}

// BuildDashboard reads settings, profile, lifetime totals, the hard-card
// count and the recent ledger trend in one pass.
func BuildDashboard(ctx context.Context, st *store.Store, learnerID string, now time.Time) (*Dashboard, error) {
	today := srs.DayOf(now).Format(store.DayFormat)

	settings, err := st.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := st.GetProfile(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("unknown learner %q", learnerID)
	}

	totals, err := st.DeckTotals(ctx, today)
	if err != nil {
		return nil, err
	}

	stats, err := st.ListCardStats(ctx)
	if err != nil {
		return nil, err
	}
	thresholds := srs.Thresholds{
		MinWrongForHard:    settings.MinWrongForHard,
		MaxAccuracyForHard: settings.MaxAccuracyForHard,
	}
	hard := 0
	for _, s := range stats {
		if srs.IsHard(s.Attempts, s.Correct, s.Wrong, thresholds) {
			hard++
		}
	}

	todayEntry, err := st.LedgerDay(ctx, today)
	if err != nil {
		return nil, err
	}

	trend, err := st.Trend(ctx, TrendDays)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Settings:  settings,
		Profile:   *profile,
		Totals:    totals,
		HardCount: hard,
		Today:     todayEntry,
		Trend:     trend,
	}, nil
}

// Mistakes returns the worst cards, limit clamped to [MinMistakes,
// MaxMistakes].
func Mistakes(ctx context.Context, st *store.Store, limit int) ([]store.CardStats, error) {
	if limit < MinMistakes {
		limit = MinMistakes
	}
	if limit > MaxMistakes {
		limit = MaxMistakes
	}
	return st.Mistakes(ctx, limit)
}
