package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fffcards/fff/internal/deck"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories in the deck with their question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadQuestions(cmd.Context())
		if err != nil {
			return err
		}

		d := deck.New(result.Questions, deck.Policy{}, nil)
		counts := d.Counts()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, c := range d.Categories() {
			fmt.Fprintf(w, "%s\t%d\n", c, counts[c])
		}
		fmt.Fprintf(w, "\t\nGesamt\t%d\n", d.Total())
		return w.Flush()
	},
}
