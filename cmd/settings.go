package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/store"
	"github.com/nosziii/words/internal/ui/theme"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the engine settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		printSettings(s)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: "Keys: daily-goal-new, daily-goal-reviews, min-wrong-for-hard,\n" +
		"max-accuracy-for-hard. Values must be non-negative integers.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value, err := strconv.Atoi(args[1])
		if err != nil || value < 0 {
			return fmt.Errorf("value %q must be a non-negative integer", args[1])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		s, err := st.GetSettings(ctx)
		if err != nil {
			return err
		}

		switch key {
		case "daily-goal-new":
			s.DailyGoalNew = value
		case "daily-goal-reviews":
			s.DailyGoalReviews = value
		case "min-wrong-for-hard":
			s.MinWrongForHard = value
		case "max-accuracy-for-hard":
			if value > 100 {
				return fmt.Errorf("max-accuracy-for-hard is a percentage, got %d", value)
			}
			s.MaxAccuracyForHard = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := st.UpdateSettings(ctx, s); err != nil {
			return err
		}
		printSettings(s)
		return nil
	},
}

func printSettings(s store.Settings) {
	row := func(key string, value int) {
		fmt.Printf("%s %d\n", theme.Label.Render(key+":"), value)
	}
	row("daily-goal-new", s.DailyGoalNew)
	row("daily-goal-reviews", s.DailyGoalReviews)
	row("min-wrong-for-hard", s.MinWrongForHard)
	row("max-accuracy-for-hard", s.MaxAccuracyForHard)
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}
