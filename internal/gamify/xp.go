package gamify

// XPForQuality returns the XP awarded for one review at the given quality.
// The table is deliberately convex: perfect recall pays twice what a bare
// pass does, and any quality below 2 (including invalid input the scheduler
// already rejected) falls through to the minimum.
func XPForQuality(quality int) int {
	switch quality {
	case 5:
		return 16
	case 4:
		return 12
	case 3:
		return 8
	case 2:
		return 4
	default:
		return 1
	}
}
