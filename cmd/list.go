package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fffcards/fff/internal/deck"
	"github.com/fffcards/fff/internal/ui/components"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the deck in the order it would be shown",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringSlice("category", nil, "Only include these categories (repeatable)")
	listCmd.Flags().Bool("no-shuffle", false, "Keep the source order")
}

func runList(cmd *cobra.Command, args []string) error {
	selected, _ := cmd.Flags().GetStringSlice("category")
	noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
	if len(selected) == 0 {
		selected = cfg.Deck.Categories
	}

	result, err := loadQuestions(cmd.Context())
	if err != nil {
		return err
	}

	policy := cfg.Policy()
	if noShuffle {
		policy.Shuffle = false
	}
	d := deck.New(result.Questions, policy, nil)
	if len(selected) > 0 {
		d.Select(deck.NewSelection(selected...))
	}

	out := cmd.OutOrStdout()
	if d.Empty() {
		fmt.Fprintln(out, "Keine Fragen in den gewählten Kategorien.")
		return nil
	}
	for i, q := range d.Visible() {
		text := strings.ReplaceAll(q.Text, components.SoftHyphen, "")
		fmt.Fprintf(out, "%d. [%s] %s\n", i+1, components.CategoryLabel(q.Category), text)
	}
	return nil
}
