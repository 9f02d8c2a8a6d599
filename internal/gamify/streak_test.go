package gamify

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	today := day(2026, 3, 10)
	yesterday := day(2026, 3, 9)
	threeDaysAgo := day(2026, 3, 7)

	tests := []struct {
		name       string
		lastActive *time.Time
		current    int
		want       int
	}{
		{"no prior activity", nil, 0, 1},
		{"active yesterday extends", &yesterday, 4, 5},
		{"active today unchanged", &today, 4, 4},
		{"three day gap resets", &threeDaysAgo, 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.lastActive, today, tt.current); got != tt.want {
				t.Errorf("NextStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextStreak_SameDayWithZeroCurrent(t *testing.T) {
	// First review of the day already ran, but a stored streak of 0 should
	// still read as an active day.
	today := day(2026, 3, 10)
	if got := NextStreak(&today, today, 0); got != 1 {
		t.Errorf("NextStreak = %d, want 1", got)
	}
}

func TestNextStreak_IgnoresTimeOfDay(t *testing.T) {
	lastActive := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
	if got := NextStreak(&lastActive, today, 2); got != 3 {
		t.Errorf("NextStreak = %d, want 3", got)
	}
}
