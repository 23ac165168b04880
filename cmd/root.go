package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/config"
	"github.com/fffcards/fff/internal/logging"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fff",
	Short: "Fuck, Friends or Family: conversation cards in the terminal",
	Long: `fff shows conversation prompts for couples one card at a time.

Questions come from a published spreadsheet when one is configured and
from the built-in deck otherwise. Swipe with the mouse or use the arrow
keys to move between cards; press c to choose categories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		c, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		l, err := logging.New(c.Log.Level, c.Log.Path)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		cfg, logger = c, l
		logger.Debug("command started", zap.String("command", cmd.Name()), zap.String("version", version))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. SIGINT cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default ./config.yaml or $XDG_CONFIG_HOME/fff/config.yaml)")
	pf.String("source-url", "", "CSV URL to load questions from (overrides --sheet-id)")
	pf.String("sheet-id", "", "Google Sheets document id to load questions from")
	pf.String("fallback", "", "Local CSV used when the remote source fails (default: built-in deck)")
	pf.String("log-level", "", "Log level: debug, info, warn, error or off")

	rootCmd.Flags().Bool("no-intro", false, "Skip the intro slides")
	rootCmd.Flags().Bool("no-mouse", false, "Disable mouse swipes and clicks")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
