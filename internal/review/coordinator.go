package review

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nosziii/words/internal/gamify"
	"github.com/nosziii/words/internal/srs"
	"github.com/nosziii/words/internal/store"
)

// Result is what a committed submission reports back. Callers that need the
// full updated card state re-read it separately.
type Result struct {
	Quality int
	XPGain  int
}

// Coordinator runs one review event end to end: scheduler, counters, leech
// evaluation, ledger and profile updates, committed as a single unit.
type Coordinator struct {
	store *store.Store
	locks *lockTable

	// profileMu serializes profile writes across all concurrent reviews.
	// Every review touches the one profile row, so this is a deliberate
	// global bottleneck at single-learner scale.
	profileMu sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewCoordinator creates a coordinator over the given store.
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{
		store: st,
		locks: newLockTable(),
		now:   time.Now,
	}
}

// LegacyQuality maps the old boolean review result onto the quality scale:
// a pass is a hesitant correct answer, a fail is a recognized-too-late one.
func LegacyQuality(correct bool) int {
	if correct {
		return 4
	}
	return 1
}

// SubmitLegacy accepts a boolean review result from clients that predate
// quality ratings.
func (c *Coordinator) SubmitLegacy(ctx context.Context, learnerID, cardID string, correct bool) (Result, error) {
	return c.Submit(ctx, learnerID, cardID, LegacyQuality(correct))
}

// Submit applies one review of a card at the given quality rating.
//
// Validation happens before the card lock is taken, so a malformed request
// never blocks or mutates anything. Reviews of the same card serialize;
// reviews of different cards proceed independently. All writes (card state,
// daily ledger, profile) commit atomically or not at all.
//
// Submit is not idempotent: resubmitting the same review double-counts the
// attempt and advances the schedule twice. Callers must not retry
// automatically.
func (c *Coordinator) Submit(ctx context.Context, learnerID, cardID string, quality int) (Result, error) {
	if cardID == "" {
		return Result{}, fmt.Errorf("%w: missing card id", ErrInvalidInput)
	}
	if learnerID == "" {
		return Result{}, fmt.Errorf("%w: missing learner id", ErrInvalidInput)
	}
	if quality < srs.MinQuality || quality > srs.MaxQuality {
		return Result{}, fmt.Errorf("%w: quality %d", ErrInvalidInput, quality)
	}

	release, err := c.locks.acquire(ctx, cardID, LockTimeout)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}
	defer release()

	now := c.now().UTC()
	today := srs.DayOf(now)
	todayStr := today.Format(store.DayFormat)
	nowStr := now.Format(time.RFC3339)
	xpGain := gamify.XPForQuality(quality)

	c.profileMu.Lock()
	defer c.profileMu.Unlock()

	// The card state is read and rewritten inside the same transaction, so
	// the read-modify-write holds even against writers outside this process.
	err = c.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		rs, err := store.GetReviewStateTx(tx, cardID)
		if err != nil {
			return err
		}
		if rs == nil {
			return fmt.Errorf("%w: card %s", ErrNotFound, cardID)
		}

		next, err := srs.Advance(srs.State{
			Repetitions:  rs.Repetitions,
			IntervalDays: rs.IntervalDays,
			EaseFactor:   rs.EaseFactor,
			Lapses:       rs.Lapses,
		}, quality)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		wasNew := rs.FirstReviewedAt == nil

		rs.Attempts++
		if quality >= srs.PassThreshold {
			rs.Correct++
		} else {
			rs.Wrong++
		}
		rs.Repetitions = next.Repetitions
		rs.IntervalDays = next.IntervalDays
		rs.EaseFactor = next.EaseFactor

		// A hard fail that pushes the lapse count over the threshold marks one
		// more leech occurrence. leechCount only ever grows.
		if quality < srs.LeechFailQuality && next.Lapses >= srs.LeechLapseThreshold {
			rs.LeechCount++
		}
		rs.Lapses = next.Lapses

		rs.DueDate = today.AddDate(0, 0, next.IntervalDays).Format(store.DayFormat)
		if wasNew {
			rs.FirstReviewedAt = &nowStr
		}
		rs.LastReviewedAt = &nowStr

		if err := store.UpdateReviewStateTx(tx, rs); err != nil {
			return err
		}
		if err := store.BumpLedgerTx(tx, todayStr, wasNew); err != nil {
			return err
		}

		p, err := store.GetProfileTx(tx, learnerID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: learner %s", ErrNotFound, learnerID)
		}

		p.XP += xpGain
		p.Level = gamify.LevelForXP(p.XP)

		var lastActive *time.Time
		if p.LastActiveDate != nil {
			if t, err := time.Parse(store.DayFormat, *p.LastActiveDate); err == nil {
				lastActive = &t
			}
		}
		p.Streak = gamify.NextStreak(lastActive, today, p.Streak)
		if p.Streak > p.LongestStreak {
			p.LongestStreak = p.Streak
		}
		p.LastActiveDate = &todayStr

		attempts, correct, err := store.SumAttemptsCorrectTx(tx)
		if err != nil {
			return err
		}
		badges, _ := gamify.Grant(p.Badges(), gamify.Metrics{
			Attempts: attempts,
			Correct:  correct,
			Streak:   p.Streak,
			XP:       p.XP,
		})
		p.SetBadges(badges)

		return store.UpdateProfileTx(tx, p)
	})
	if err != nil {
		if isSentinel(err) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}

	return Result{Quality: quality, XPGain: xpGain}, nil
}

// Reset zeroes every card's review state, clears the ledger and restores the
// learner profile to defaults, all in one transaction.
func (c *Coordinator) Reset(ctx context.Context, learnerID string) error {
	today := srs.DayOf(c.now().UTC()).Format(store.DayFormat)

	c.profileMu.Lock()
	defer c.profileMu.Unlock()

	err := c.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := store.ResetReviewStatesTx(tx, today); err != nil {
			return err
		}
		if err := store.ClearLedgerTx(tx); err != nil {
			return err
		}
		return store.ResetProfileTx(tx, learnerID)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}
	return nil
}

func isSentinel(err error) bool {
	for _, s := range []error{ErrInvalidInput, ErrNotFound, ErrTransactionFailure} {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
