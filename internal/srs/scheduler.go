package srs

import (
	"errors"
	"fmt"
	"math"
)

// Quality rating bounds. 0 is a total blackout, 5 is perfect recall.
const (
	MinQuality = 0
	MaxQuality = 5
)

// PassThreshold is the lowest quality that counts as a successful recall.
// Below it the card lapses and its repetition chain resets.
const PassThreshold = 3

// MinEaseFactor is the SM-2 floor. The ease factor is never pushed below it,
// neither by lapses nor by the post-review delta. There is deliberately no
// upper bound: a long run of perfect recalls keeps growing the interval.
const MinEaseFactor = 1.3

const failEasePenalty = 0.2

// ErrQualityRange reports a quality rating outside [0,5].
var ErrQualityRange = errors.New("quality rating out of range")

// State is the numeric scheduling state of one card. It carries no identity
// and no side effects; Advance maps one State to the next.
type State struct {
	Repetitions  int
	IntervalDays int
	EaseFactor   float64
	Lapses       int
}

// Advance applies one review with the given quality rating and returns the
// next state. The input state is not modified.
//
// Fail path (quality < 3): repetitions reset, the card comes back tomorrow,
// the ease factor takes a fixed penalty and the lapse counter grows.
//
// Pass path: the first two successful repetitions use fixed 1- and 3-day
// intervals; after that the interval grows by ease factor times a quality
// boost (quality 3 neutral, quality 5 adds 30%). The ease factor then moves
// by the SM-2 delta, floored at MinEaseFactor.
func Advance(prev State, quality int) (State, error) {
	if quality < MinQuality || quality > MaxQuality {
		return State{}, fmt.Errorf("%w: %d", ErrQualityRange, quality)
	}

	next := prev

	if quality < PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = 1
		next.EaseFactor = math.Max(MinEaseFactor, prev.EaseFactor-failEasePenalty)
		next.Lapses = prev.Lapses + 1
		return next, nil
	}

	next.Repetitions = prev.Repetitions + 1
	switch next.Repetitions {
	case 1:
		next.IntervalDays = 1
	case 2:
		next.IntervalDays = 3
	default:
		boost := 1 + float64(quality-PassThreshold)*0.15
		days := math.Round(float64(prev.IntervalDays) * prev.EaseFactor * boost)
		next.IntervalDays = int(math.Max(1, days))
	}

	delta := 0.1 - float64(MaxQuality-quality)*(0.08+float64(MaxQuality-quality)*0.02)
	next.EaseFactor = math.Max(MinEaseFactor, prev.EaseFactor+delta)

	return next, nil
}
