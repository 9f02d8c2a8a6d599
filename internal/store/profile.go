package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Profile is a learner's gamification record. One row per learner; the local
// single-learner deployment uses DefaultLearnerID.
type Profile struct {
	ID             string  `db:"id"`
	XP             int     `db:"xp"`
	Level          int     `db:"level"`
	Streak         int     `db:"streak"`
	LongestStreak  int     `db:"longest_streak"`
	LastActiveDate *string `db:"last_active_date"`
	BadgesJSON     string  `db:"badges"`
}

// Badges decodes the stored badge identifier set.
func (p *Profile) Badges() []string {
	if p.BadgesJSON == "" {
		return nil
	}
	var badges []string
	if err := json.Unmarshal([]byte(p.BadgesJSON), &badges); err != nil {
		return nil
	}
	return badges
}

// SetBadges encodes the badge identifier set for storage.
func (p *Profile) SetBadges(badges []string) {
	if badges == nil {
		badges = []string{}
	}
	b, err := json.Marshal(badges)
	if err != nil {
		return
	}
	p.BadgesJSON = string(b)
}

// GetProfile returns a learner profile, or nil if the learner is unknown.
func (s *Store) GetProfile(ctx context.Context, learnerID string) (*Profile, error) {
	var p Profile
	err := s.db.GetContext(ctx, &p, `SELECT * FROM profiles WHERE id = ?`, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// GetProfileTx is GetProfile inside a review transaction.
func GetProfileTx(tx *sqlx.Tx, learnerID string) (*Profile, error) {
	var p Profile
	err := tx.Get(&p, `SELECT * FROM profiles WHERE id = ?`, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfileTx writes the full profile row.
func UpdateProfileTx(tx *sqlx.Tx, p *Profile) error {
	_, err := tx.NamedExec(`
		UPDATE profiles SET
			xp = :xp,
			level = :level,
			streak = :streak,
			longest_streak = :longest_streak,
			last_active_date = :last_active_date,
			badges = :badges
		WHERE id = :id`, p)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// ResetProfileTx restores a profile to its zero defaults.
func ResetProfileTx(tx *sqlx.Tx, learnerID string) error {
	_, err := tx.Exec(`
		UPDATE profiles SET
			xp = 0, level = 1, streak = 0, longest_streak = 0,
			last_active_date = NULL, badges = '[]'
		WHERE id = ?`, learnerID)
	if err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}
