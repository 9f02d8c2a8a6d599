package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/review"
	"github.com/nosziii/words/internal/session"
	"github.com/nosziii/words/internal/srs"
	"github.com/nosziii/words/internal/store"
	"github.com/nosziii/words/internal/ui/practice"
	"github.com/nosziii/words/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive practice session over due cards",
	Long: "Builds a practice queue from cards due today, weighted toward cards\n" +
		"you get wrong often, then drills them one by one. Missed cards come\n" +
		"back two positions later.",
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		hardOnly, _ := cmd.Flags().GetBool("hard-only")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()

		settings, err := st.GetSettings(ctx)
		if err != nil {
			return err
		}

		cards, err := dueCards(cmd, st, settings, now, hardOnly)
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println(theme.Hint.Render("Nothing due. Come back tomorrow."))
			return nil
		}

		queue := session.New(now.UnixNano()).Build(cards, length)
		coord := review.NewCoordinator(st)

		answered, correctCount, err := practice.Run(queue, func(cardID string, correct bool) (int, error) {
			res, err := coord.SubmitLegacy(ctx, learnerID(cmd), cardID, correct)
			return res.XPGain, err
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s %d/%d correct\n", theme.Title.Render("Session done:"), correctCount, answered)
		return nil
	},
}

// dueCards loads the cards due on or before today, optionally narrowed to
// the hard set.
func dueCards(cmd *cobra.Command, st *store.Store, settings store.Settings, now time.Time, hardOnly bool) ([]session.Card, error) {
	stats, err := st.ListCardStats(cmd.Context())
	if err != nil {
		return nil, err
	}

	thresholds := srs.Thresholds{
		MinWrongForHard:    settings.MinWrongForHard,
		MaxAccuracyForHard: settings.MaxAccuracyForHard,
	}

	var cards []session.Card
	for _, s := range stats {
		due, err := time.Parse(store.DayFormat, s.DueDate)
		if err != nil {
			return nil, fmt.Errorf("card %s: bad due date %q: %w", s.CardID, s.DueDate, err)
		}
		if !srs.IsDue(due, now) {
			continue
		}
		if hardOnly && !srs.IsHard(s.Attempts, s.Correct, s.Wrong, thresholds) {
			continue
		}
		cards = append(cards, session.Card{
			ID:         s.CardID,
			Prompt:     s.Prompt,
			Answer:     s.Answer,
			Wrong:      s.Wrong,
			LeechCount: s.LeechCount,
		})
	}
	return cards, nil
}

func init() {
	practiceCmd.Flags().Int("length", 20, "Number of prompts in the session")
	practiceCmd.Flags().Bool("hard-only", false, "Drill only cards classified as hard")
}
