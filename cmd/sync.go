package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/question"
)

var ErrNoRemote = errors.New("no remote source configured: set --source-url or --sheet-id")

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the remote deck into the local fallback file",
	Long: `Fetches the configured spreadsheet, checks that it contains questions and
writes the CSV to --out (default: source.fallback). Point source.fallback
at the same file to use it when the spreadsheet is unreachable.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("out", "", "Where to write the CSV (default: source.fallback)")
}

func runSync(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.Source.Fallback
	}
	if out == "" {
		return errors.New("no output path: pass --out or set source.fallback")
	}

	primary := cfg.Primary()
	if primary == nil {
		return ErrNoRemote
	}

	data, err := primary.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch %s: %w", primary.Name(), err)
	}
	qs, err := question.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", primary.Name(), err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("deck synced", zap.String("source", primary.Name()), zap.String("path", out), zap.Int("questions", len(qs)))
	fmt.Fprintf(cmd.OutOrStdout(), "%d Fragen aus %d Kategorien gespeichert in %s\n",
		len(qs), len(question.Categories(qs)), out)
	return nil
}
