package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/app"
	"github.com/fffcards/fff/internal/screens/cards"
	"github.com/fffcards/fff/internal/source"
)

// runApp builds the loader from the config and launches the TUI.
func runApp(cmd *cobra.Command) error {
	noIntro, _ := cmd.Flags().GetBool("no-intro")
	noMouse, _ := cmd.Flags().GetBool("no-mouse")

	opts := app.Options{
		Cards: cards.Options{
			Loader:     newLoader(),
			Policy:     cfg.Policy(),
			Categories: cfg.Deck.Categories,
			Logger:     logger,
		},
		Intro:  cfg.UI.Intro && !noIntro,
		Mouse:  cfg.UI.Mouse && !noMouse,
		Logger: logger,
	}
	return app.Run(cmd.Context(), opts)
}

func newLoader() *source.Loader {
	return source.NewLoader(cfg.Primary(), cfg.Fallback(), logger)
}

// loadQuestions runs the loader once for the non-interactive commands.
func loadQuestions(ctx context.Context) (source.Result, error) {
	result := newLoader().Load(ctx)
	if result.Failed {
		return result, fmt.Errorf("load questions: %w", result.Err)
	}
	if result.FellBack {
		logger.Warn("using fallback source", zap.String("source", result.Source))
	}
	return result, nil
}
