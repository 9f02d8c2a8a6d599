package srs

import (
	"errors"
	"math"
	"testing"
)

func TestAdvance_RejectsOutOfRangeQuality(t *testing.T) {
	prev := State{Repetitions: 2, IntervalDays: 3, EaseFactor: 2.5}
	for _, q := range []int{-1, 6, 100} {
		_, err := Advance(prev, q)
		if !errors.Is(err, ErrQualityRange) {
			t.Errorf("quality %d: err = %v, want ErrQualityRange", q, err)
		}
	}
}

func TestAdvance_FailPath(t *testing.T) {
	tests := []struct {
		name    string
		prev    State
		quality int
		wantEF  float64
	}{
		{"blackout resets chain", State{Repetitions: 5, IntervalDays: 30, EaseFactor: 2.5, Lapses: 1}, 0, 2.3},
		{"quality 2 still fails", State{Repetitions: 1, IntervalDays: 1, EaseFactor: 2.5}, 2, 2.3},
		{"ease floored at 1.3", State{Repetitions: 3, IntervalDays: 10, EaseFactor: 1.35}, 1, 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Advance(tt.prev, tt.quality)
			if err != nil {
				t.Fatalf("Advance: %v", err)
			}
			if next.Repetitions != 0 {
				t.Errorf("Repetitions = %d, want 0", next.Repetitions)
			}
			if next.IntervalDays != 1 {
				t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
			}
			if next.Lapses != tt.prev.Lapses+1 {
				t.Errorf("Lapses = %d, want %d", next.Lapses, tt.prev.Lapses+1)
			}
			if math.Abs(next.EaseFactor-tt.wantEF) > 1e-9 {
				t.Errorf("EaseFactor = %v, want %v", next.EaseFactor, tt.wantEF)
			}
		})
	}
}

func TestAdvance_FirstPassIsOneDayRegardlessOfEase(t *testing.T) {
	for _, ef := range []float64{1.3, 2.5, 3.8} {
		next, err := Advance(State{EaseFactor: ef}, 4)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if next.Repetitions != 1 || next.IntervalDays != 1 {
			t.Errorf("ef %v: got reps=%d interval=%d, want 1/1", ef, next.Repetitions, next.IntervalDays)
		}
	}
}

func TestAdvance_SecondPassIsThreeDays(t *testing.T) {
	next, err := Advance(State{Repetitions: 1, IntervalDays: 1, EaseFactor: 2.5}, 3)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", next.IntervalDays)
	}
}

func TestAdvance_QualityBoost(t *testing.T) {
	prev := State{Repetitions: 2, IntervalDays: 3, EaseFactor: 2.5}

	tests := []struct {
		quality      int
		wantInterval int
		wantEF       float64
	}{
		{3, 8, 2.36},  // neutral boost: round(3*2.5) = 8; EF delta -0.14
		{4, 9, 2.5},   // round(3*2.5*1.15) = 9; EF delta 0
		{5, 10, 2.6},  // round(3*2.5*1.3) = 10; EF delta +0.1
	}

	for _, tt := range tests {
		next, err := Advance(prev, tt.quality)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if next.Repetitions != 3 {
			t.Errorf("quality %d: Repetitions = %d, want 3", tt.quality, next.Repetitions)
		}
		if next.IntervalDays != tt.wantInterval {
			t.Errorf("quality %d: IntervalDays = %d, want %d", tt.quality, next.IntervalDays, tt.wantInterval)
		}
		if math.Abs(next.EaseFactor-tt.wantEF) > 1e-9 {
			t.Errorf("quality %d: EaseFactor = %v, want %v", tt.quality, next.EaseFactor, tt.wantEF)
		}
	}
}

func TestAdvance_IntervalNeverBelowOne(t *testing.T) {
	next, err := Advance(State{Repetitions: 2, IntervalDays: 0, EaseFactor: 1.3}, 3)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next.IntervalDays < 1 {
		t.Errorf("IntervalDays = %d, want >= 1", next.IntervalDays)
	}
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	prev := State{Repetitions: 2, IntervalDays: 3, EaseFactor: 2.5, Lapses: 1}
	orig := prev
	if _, err := Advance(prev, 5); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if prev != orig {
		t.Errorf("input mutated: %+v", prev)
	}
}
