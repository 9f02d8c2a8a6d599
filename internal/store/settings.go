package store

import (
	"context"
	"fmt"
	"time"
)

// Settings is the singleton engine configuration row.
type Settings struct {
	DailyGoalNew       int `db:"daily_goal_new"`
	DailyGoalReviews   int `db:"daily_goal_reviews"`
	MinWrongForHard    int `db:"min_wrong_for_hard"`
	MaxAccuracyForHard int `db:"max_accuracy_for_hard"`
}

// GetSettings returns the current settings. The row is seeded at migration,
// so it always exists.
func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	var st Settings
	err := s.db.GetContext(ctx, &st, `
		SELECT daily_goal_new, daily_goal_reviews, min_wrong_for_hard, max_accuracy_for_hard
		FROM settings WHERE id = 1`)
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// UpdateSettings replaces the settings row.
func (s *Store) UpdateSettings(ctx context.Context, st Settings) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET
			daily_goal_new = ?,
			daily_goal_reviews = ?,
			min_wrong_for_hard = ?,
			max_accuracy_for_hard = ?,
			updated_at = ?
		WHERE id = 1`,
		st.DailyGoalNew, st.DailyGoalReviews, st.MinWrongForHard, st.MaxAccuracyForHard,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
