package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ReviewState is the per-card scheduling and statistics record, 1:1 with its
// card. Mutated only by the review coordinator. Day-granularity values
// (DueDate) use DayFormat; timestamps use RFC 3339.
type ReviewState struct {
	CardID          string  `db:"card_id"`
	Attempts        int     `db:"attempts"`
	Correct         int     `db:"correct"`
	Wrong           int     `db:"wrong"`
	Repetitions     int     `db:"repetitions"`
	IntervalDays    int     `db:"interval_days"`
	EaseFactor      float64 `db:"ease_factor"`
	DueDate         string  `db:"due_date"`
	Lapses          int     `db:"lapses"`
	LeechCount      int     `db:"leech_count"`
	FirstReviewedAt *string `db:"first_reviewed_at"`
	LastReviewedAt  *string `db:"last_reviewed_at"`
}

// InsertStateTx creates the default review state for a newly imported card,
// due on the given day.
func InsertStateTx(tx *sqlx.Tx, cardID, dueDay string) error {
	_, err := tx.Exec(
		`INSERT INTO review_states (card_id, due_date) VALUES (?, ?)`,
		cardID, dueDay,
	)
	if err != nil {
		return fmt.Errorf("insert review state: %w", err)
	}
	return nil
}

// GetReviewState returns the state for a card, or nil if the card has none.
func (s *Store) GetReviewState(ctx context.Context, cardID string) (*ReviewState, error) {
	var rs ReviewState
	err := s.db.GetContext(ctx, &rs, `SELECT * FROM review_states WHERE card_id = ?`, cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review state: %w", err)
	}
	return &rs, nil
}

// GetReviewStateTx reads the state for a card inside a review transaction,
// or nil if the card has none.
func GetReviewStateTx(tx *sqlx.Tx, cardID string) (*ReviewState, error) {
	var rs ReviewState
	err := tx.Get(&rs, `SELECT * FROM review_states WHERE card_id = ?`, cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review state: %w", err)
	}
	return &rs, nil
}

// UpdateReviewStateTx writes the full state row inside a review transaction.
func UpdateReviewStateTx(tx *sqlx.Tx, rs *ReviewState) error {
	res, err := tx.NamedExec(`
		UPDATE review_states SET
			attempts = :attempts,
			correct = :correct,
			wrong = :wrong,
			repetitions = :repetitions,
			interval_days = :interval_days,
			ease_factor = :ease_factor,
			due_date = :due_date,
			lapses = :lapses,
			leech_count = :leech_count,
			first_reviewed_at = :first_reviewed_at,
			last_reviewed_at = :last_reviewed_at
		WHERE card_id = :card_id`, rs)
	if err != nil {
		return fmt.Errorf("update review state: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("update review state: card %s has no state row", rs.CardID)
	}
	return nil
}

// SumAttemptsCorrectTx returns the lifetime attempt and correct totals across
// all cards, as seen inside the current transaction.
func SumAttemptsCorrectTx(tx *sqlx.Tx) (attempts, correct int, err error) {
	row := struct {
		Attempts int `db:"attempts"`
		Correct  int `db:"correct"`
	}{}
	err = tx.Get(&row, `
		SELECT COALESCE(SUM(attempts), 0) AS attempts,
		       COALESCE(SUM(correct), 0) AS correct
		FROM review_states`)
	if err != nil {
		return 0, 0, fmt.Errorf("sum attempts: %w", err)
	}
	return row.Attempts, row.Correct, nil
}

// ResetReviewStatesTx zeroes every state back to its import defaults with the
// given day as the due date.
func ResetReviewStatesTx(tx *sqlx.Tx, dueDay string) error {
	_, err := tx.Exec(`
		UPDATE review_states SET
			attempts = 0, correct = 0, wrong = 0,
			repetitions = 0, interval_days = 0, ease_factor = 2.5,
			due_date = ?, lapses = 0, leech_count = 0,
			first_reviewed_at = NULL, last_reviewed_at = NULL`, dueDay)
	if err != nil {
		return fmt.Errorf("reset review states: %w", err)
	}
	return nil
}
