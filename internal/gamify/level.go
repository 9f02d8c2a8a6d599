package gamify

import "math"

// xpPerLevelSquare is the curve constant: level L requires 60*(L-1)^2 XP.
const xpPerLevelSquare = 60

// LevelForXP returns the learner level for a cumulative XP total.
// The curve is level = floor(sqrt(xp/60)) + 1, never below 1, so
// 0 XP is level 1, 60 XP reaches level 2 and 240 XP reaches level 3.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	level := int(math.Sqrt(float64(xp)/xpPerLevelSquare)) + 1
	if level < 1 {
		return 1
	}
	return level
}

// XPForLevel returns the minimum cumulative XP needed to reach a level.
// Used by the dashboard for progress-to-next-level display.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return xpPerLevelSquare * (level - 1) * (level - 1)
}
