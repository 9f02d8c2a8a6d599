package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/review"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all learning progress",
	Long: "Clears every card's scheduling state, the daily ledger and the\n" +
		"learner profile. Cards themselves are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("refusing to reset without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coord := review.NewCoordinator(st)
		if err := coord.Reset(cmd.Context(), learnerID(cmd)); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
