package cmd

import (
	"strings"
	"testing"

	"github.com/nosziii/words/internal/report"
	"github.com/nosziii/words/internal/store"
)

func TestRenderDashboard_LevelProgress(t *testing.T) {
	d := &report.Dashboard{
		Settings: store.Settings{DailyGoalNew: 20, DailyGoalReviews: 50},
		Profile:  store.Profile{ID: store.DefaultLearnerID, XP: 100, Level: 2, Streak: 3, LongestStreak: 5},
		Totals:   store.Totals{Cards: 10, Attempts: 8, Correct: 6, Wrong: 2, DueToday: 4},
	}

	out := renderDashboard(d)

	// 100 XP at level 2: level 3 starts at 240.
	if !strings.Contains(out, "2 (100/240 XP)") {
		t.Errorf("missing level progress in:\n%s", out)
	}
	if !strings.Contains(out, "3 days (best 5)") {
		t.Errorf("missing streak line in:\n%s", out)
	}
	if !strings.Contains(out, "75% over 8 reviews") {
		t.Errorf("missing accuracy line in:\n%s", out)
	}
}
