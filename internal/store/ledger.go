package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DayEntry is one calendar day of the progress ledger.
type DayEntry struct {
	Day         string `db:"day"`
	NewCount    int    `db:"new_count"`
	ReviewCount int    `db:"review_count"`
}

// BumpLedgerTx records one committed review on the given day, creating the
// entry if it's the first review of that day. When isNew is true the review
// was the card's first ever and the new counter grows too. Entries for other
// days are never touched.
func BumpLedgerTx(tx *sqlx.Tx, day string, isNew bool) error {
	newInc := 0
	if isNew {
		newInc = 1
	}
	_, err := tx.Exec(`
		INSERT INTO daily_ledger (day, new_count, review_count)
		VALUES (?, ?, 1)
		ON CONFLICT (day) DO UPDATE SET
			review_count = review_count + 1,
			new_count = new_count + excluded.new_count`,
		day, newInc,
	)
	if err != nil {
		return fmt.Errorf("bump ledger: %w", err)
	}
	return nil
}

// LedgerDay returns the entry for one day, or a zero entry if none exists.
func (s *Store) LedgerDay(ctx context.Context, day string) (DayEntry, error) {
	var e DayEntry
	err := s.db.GetContext(ctx, &e, `SELECT * FROM daily_ledger WHERE day = ?`, day)
	if errors.Is(err, sql.ErrNoRows) {
		return DayEntry{Day: day}, nil
	}
	if err != nil {
		return DayEntry{}, fmt.Errorf("ledger day: %w", err)
	}
	return e, nil
}

// Trend returns the most recent n ledger entries in chronological order.
func (s *Store) Trend(ctx context.Context, n int) ([]DayEntry, error) {
	var entries []DayEntry
	err := s.db.SelectContext(ctx, &entries,
		`SELECT * FROM daily_ledger ORDER BY day DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	// Query is newest-first for the LIMIT; reporting wants oldest-first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// ClearLedgerTx deletes every ledger entry. Only the explicit reset does this.
func ClearLedgerTx(tx *sqlx.Tx) error {
	if _, err := tx.Exec(`DELETE FROM daily_ledger`); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	return nil
}
