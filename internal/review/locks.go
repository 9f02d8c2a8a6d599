package review

import (
	"context"
	"errors"
	"sync"
	"time"
)

// LockTimeout bounds how long a submission waits for another review of the
// same card to finish. The source system left this unbounded; a stuck holder
// would then wedge every later submission for that card, so the wait is
// capped and the caller gets a transaction failure instead.
const LockTimeout = 5 * time.Second

var errLockTimeout = errors.New("timed out waiting for card lock")

// lockTable hands out one exclusive lock per card ID. Reviews of the same
// card serialize on their lock; reviews of different cards never touch each
// other's entry.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]chan struct{})}
}

// acquire blocks until the card's lock is held, the timeout passes, or ctx
// is done. On success it returns the release function.
func (lt *lockTable) acquire(ctx context.Context, cardID string, timeout time.Duration) (func(), error) {
	lt.mu.Lock()
	ch, ok := lt.locks[cardID]
	if !ok {
		ch = make(chan struct{}, 1)
		lt.locks[cardID] = ch
	}
	lt.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-timer.C:
		return nil, errLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
