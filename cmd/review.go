package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/review"
	"github.com/nosziii/words/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id>",
	Short: "Record one review of a card",
	Long: "Record a review with an explicit quality grade (0-5), or with the\n" +
		"legacy --correct/--wrong flags which map to quality 4 and 1.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, _ := cmd.Flags().GetInt("quality")
		correct, _ := cmd.Flags().GetBool("correct")
		wrong, _ := cmd.Flags().GetBool("wrong")

		if correct && wrong {
			return errors.New("--correct and --wrong are mutually exclusive")
		}
		if quality >= 0 && (correct || wrong) {
			return errors.New("use either --quality or --correct/--wrong, not both")
		}
		if quality < 0 && !correct && !wrong {
			return errors.New("one of --quality, --correct or --wrong is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coord := review.NewCoordinator(st)
		ctx := cmd.Context()

		card, err := st.GetCard(ctx, args[0])
		if err != nil {
			return err
		}

		var res review.Result
		if quality >= 0 {
			res, err = coord.Submit(ctx, learnerID(cmd), args[0], quality)
		} else {
			res, err = coord.SubmitLegacy(ctx, learnerID(cmd), args[0], correct)
		}
		if err != nil {
			return err
		}

		label := args[0]
		if card != nil {
			label = card.Prompt
		}
		style := theme.Good
		if res.Quality < 3 {
			style = theme.Bad
		}
		fmt.Printf("%s %q  quality %d, +%d XP\n", style.Render("recorded"), label, res.Quality, res.XPGain)
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("quality", -1, "Recall quality 0-5")
	reviewCmd.Flags().Bool("correct", false, "Mark the review correct (quality 4)")
	reviewCmd.Flags().Bool("wrong", false, "Mark the review wrong (quality 1)")
}
