package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import vocabulary pairs from a semicolon-separated file",
	Long:  "Each line is \"prompt;answer\". Duplicates and malformed lines are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		pairs, invalid, err := importer.Parse(f)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := importer.Import(cmd.Context(), st, pairs, time.Now())
		if err != nil {
			return err
		}
		sum.Invalid = invalid

		fmt.Printf("Imported %d cards (%d duplicates skipped, %d invalid lines).\n",
			sum.Imported, sum.Skipped, sum.Invalid)
		return nil
	},
}
