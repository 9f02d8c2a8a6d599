package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/report"
	"github.com/nosziii/words/internal/ui/theme"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "List the cards you miss most",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := report.Mistakes(cmd.Context(), st, limit)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println(theme.Hint.Render("No mistakes recorded yet."))
			return nil
		}

		for _, r := range rows {
			line := fmt.Sprintf("%-24s %-24s %d/%d wrong", r.Prompt, r.Answer, r.Wrong, r.Attempts)
			if r.LeechCount > 0 {
				line += "  " + theme.Warn.Render(fmt.Sprintf("leech x%d", r.LeechCount))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	mistakesCmd.Flags().Int("limit", 20, "Maximum number of cards to list (1-50)")
}
