package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/gamify"
	"github.com/nosziii/words/internal/report"
	"github.com/nosziii/words/internal/ui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show progress, streak and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := report.BuildDashboard(cmd.Context(), st, learnerID(cmd), time.Now())
		if err != nil {
			return err
		}

		fmt.Println(renderDashboard(d))
		return nil
	},
}

func renderDashboard(d *report.Dashboard) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Words") + "\n\n")

	row := func(label string, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", theme.Label.Render(label+":"), theme.Value.Render(value)))
	}

	next := gamify.XPForLevel(d.Profile.Level + 1)
	row("Level", fmt.Sprintf("%d (%d/%d XP)", d.Profile.Level, d.Profile.XP, next))
	row("Streak", fmt.Sprintf("%d days (best %d)", d.Profile.Streak, d.Profile.LongestStreak))
	row("Cards", fmt.Sprintf("%d total, %d due today, %d hard", d.Totals.Cards, d.Totals.DueToday, d.HardCount))
	if d.Totals.Attempts > 0 {
		acc := 100 * d.Totals.Correct / d.Totals.Attempts
		row("Accuracy", fmt.Sprintf("%d%% over %d reviews", acc, d.Totals.Attempts))
	}
	row("Today", fmt.Sprintf("%d/%d new, %d/%d reviews",
		d.Today.NewCount, d.Settings.DailyGoalNew,
		d.Today.ReviewCount, d.Settings.DailyGoalReviews))

	if badges := d.Profile.Badges(); len(badges) > 0 {
		names := make([]string, len(badges))
		for i, id := range badges {
			names[i] = gamify.BadgeName(id)
		}
		row("Badges", strings.Join(names, ", "))
	}

	if len(d.Trend) > 0 {
		b.WriteString("\n" + theme.Label.Render("Last days:") + "\n")
		for _, e := range d.Trend {
			b.WriteString(fmt.Sprintf("  %s  %3d reviews, %d new\n", e.Day, e.ReviewCount, e.NewCount))
		}
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}
