package gamify

import "testing"

func TestXPForQuality(t *testing.T) {
	tests := []struct {
		quality, want int
	}{
		{5, 16},
		{4, 12},
		{3, 8},
		{2, 4},
		{1, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := XPForQuality(tt.quality); got != tt.want {
			t.Errorf("XPForQuality(%d) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp, want int
	}{
		{0, 1},
		{59, 1},
		{60, 2},
		{239, 2},
		{240, 3},
		{540, 4},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXP_NonDecreasing(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp %d", prev, level, xp)
		}
		prev = level
	}
}

func TestXPForLevel_RoundTrips(t *testing.T) {
	for level := 1; level <= 10; level++ {
		xp := XPForLevel(level)
		if got := LevelForXP(xp); got != level {
			t.Errorf("LevelForXP(XPForLevel(%d)) = %d", level, got)
		}
	}
}
