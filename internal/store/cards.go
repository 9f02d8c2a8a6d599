package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Card is a vocabulary entry. Immutable after import except for the optional
// example sentence.
type Card struct {
	ID        string  `db:"id"`
	Prompt    string  `db:"prompt"`
	Answer    string  `db:"answer"`
	Example   *string `db:"example_sentence"`
	CreatedAt string  `db:"created_at"`
}

// CardStats joins a card with the statistics the classifier and the session
// composer consume.
type CardStats struct {
	CardID     string  `db:"card_id"`
	Prompt     string  `db:"prompt"`
	Answer     string  `db:"answer"`
	Attempts   int     `db:"attempts"`
	Correct    int     `db:"correct"`
	Wrong      int     `db:"wrong"`
	LeechCount int     `db:"leech_count"`
	EaseFactor float64 `db:"ease_factor"`
	DueDate    string  `db:"due_date"`
}

// InsertCardTx inserts a card inside an import transaction.
func InsertCardTx(tx *sqlx.Tx, c Card) error {
	_, err := tx.Exec(
		`INSERT INTO cards (id, prompt, answer, example_sentence, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Prompt, c.Answer, c.Example, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}
	return nil
}

// CardExistsTx reports whether a card with the same prompt/answer pair is
// already imported.
func CardExistsTx(tx *sqlx.Tx, prompt, answer string) (bool, error) {
	var n int
	err := tx.Get(&n, `SELECT COUNT(*) FROM cards WHERE prompt = ? AND answer = ?`, prompt, answer)
	if err != nil {
		return false, fmt.Errorf("card exists: %w", err)
	}
	return n > 0, nil
}

// GetCard returns a card by ID, or nil if it doesn't exist.
func (s *Store) GetCard(ctx context.Context, id string) (*Card, error) {
	var c Card
	err := s.db.GetContext(ctx, &c, `SELECT * FROM cards WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &c, nil
}

// CountCards returns the number of imported cards.
func (s *Store) CountCards(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM cards`); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

// ListCardStats returns every card joined with its review statistics,
// ordered by a stable identifier for deterministic consumption.
func (s *Store) ListCardStats(ctx context.Context) ([]CardStats, error) {
	var stats []CardStats
	err := s.db.SelectContext(ctx, &stats, `
		SELECT c.id AS card_id, c.prompt, c.answer,
		       r.attempts, r.correct, r.wrong, r.leech_count, r.ease_factor, r.due_date
		FROM cards c
		JOIN review_states r ON r.card_id = c.id
		ORDER BY c.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list card stats: %w", err)
	}
	return stats, nil
}

// Totals aggregates lifetime counters across the whole deck. Due counts
// compare against the given day.
type Totals struct {
	Cards    int `db:"cards"`
	Attempts int `db:"attempts"`
	Correct  int `db:"correct"`
	Wrong    int `db:"wrong"`
	DueToday int `db:"due_today"`
}

// DeckTotals computes the dashboard's lifetime aggregates.
func (s *Store) DeckTotals(ctx context.Context, today string) (Totals, error) {
	var t Totals
	err := s.db.GetContext(ctx, &t, `
		SELECT COUNT(*) AS cards,
		       COALESCE(SUM(r.attempts), 0) AS attempts,
		       COALESCE(SUM(r.correct), 0) AS correct,
		       COALESCE(SUM(r.wrong), 0) AS wrong,
		       COALESCE(SUM(CASE WHEN r.due_date <= ? THEN 1 ELSE 0 END), 0) AS due_today
		FROM cards c
		JOIN review_states r ON r.card_id = c.id`, today)
	if err != nil {
		return Totals{}, fmt.Errorf("deck totals: %w", err)
	}
	return t, nil
}

// Mistakes returns the worst cards: leechCount desc, then wrong desc, then
// attempts desc, with the card ID as a stable tiebreak. Cards without a
// single miss or leech mark are excluded.
func (s *Store) Mistakes(ctx context.Context, limit int) ([]CardStats, error) {
	var stats []CardStats
	err := s.db.SelectContext(ctx, &stats, `
		SELECT c.id AS card_id, c.prompt, c.answer,
		       r.attempts, r.correct, r.wrong, r.leech_count, r.ease_factor, r.due_date
		FROM cards c
		JOIN review_states r ON r.card_id = c.id
		WHERE r.wrong > 0 OR r.leech_count > 0
		ORDER BY r.leech_count DESC, r.wrong DESC, r.attempts DESC, c.id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("mistakes: %w", err)
	}
	return stats, nil
}
