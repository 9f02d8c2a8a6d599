package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id               TEXT PRIMARY KEY,
	prompt           TEXT NOT NULL,
	answer           TEXT NOT NULL,
	example_sentence TEXT,
	created_at       TEXT NOT NULL,
	UNIQUE (prompt, answer)
);

CREATE TABLE IF NOT EXISTS review_states (
	card_id           TEXT PRIMARY KEY REFERENCES cards(id) ON DELETE CASCADE,
	attempts          INTEGER NOT NULL DEFAULT 0,
	correct           INTEGER NOT NULL DEFAULT 0,
	wrong             INTEGER NOT NULL DEFAULT 0,
	repetitions       INTEGER NOT NULL DEFAULT 0,
	interval_days     INTEGER NOT NULL DEFAULT 0,
	ease_factor       REAL NOT NULL DEFAULT 2.5,
	due_date          TEXT NOT NULL,
	lapses            INTEGER NOT NULL DEFAULT 0,
	leech_count       INTEGER NOT NULL DEFAULT 0,
	first_reviewed_at TEXT,
	last_reviewed_at  TEXT
);

CREATE INDEX IF NOT EXISTS idx_review_states_due ON review_states(due_date);

CREATE TABLE IF NOT EXISTS daily_ledger (
	day          TEXT PRIMARY KEY,
	new_count    INTEGER NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS profiles (
	id               TEXT PRIMARY KEY,
	xp               INTEGER NOT NULL DEFAULT 0,
	level            INTEGER NOT NULL DEFAULT 1,
	streak           INTEGER NOT NULL DEFAULT 0,
	longest_streak   INTEGER NOT NULL DEFAULT 0,
	last_active_date TEXT,
	badges           TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS settings (
	id                    INTEGER PRIMARY KEY CHECK (id = 1),
	daily_goal_new        INTEGER NOT NULL DEFAULT 20,
	daily_goal_reviews    INTEGER NOT NULL DEFAULT 50,
	min_wrong_for_hard    INTEGER NOT NULL DEFAULT 2,
	max_accuracy_for_hard INTEGER NOT NULL DEFAULT 70,
	updated_at            TEXT NOT NULL
);
`

// migrate creates the schema and seeds the two singleton rows.
func migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO settings (id, updated_at) VALUES (1, ?)`, now,
	); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR IGNORE INTO profiles (id) VALUES (?)`, DefaultLearnerID,
	); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}
