package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fff to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))

		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		out := cmd.OutOrStdout()
		if checkOnly {
			return reportUpdate(ctx, out, checker)
		}

		rel, err := checker.Update(ctx, version, func(stage selfupdate.Stage, msg string) {
			logger.Info("update progress", zap.String("stage", string(stage)))
			fmt.Fprintln(out, msg)
		})
		switch {
		case err == nil:
			logger.Info("updated", zap.String("from", version), zap.String("to", rel.Tag))
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Entwicklungs-Builds können nicht aktualisiert werden. Installiere zuerst ein Release.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintf(out, "fff %s ist aktuell.\n", version)
			return nil
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("%w\n\nVersuche: sudo fff update", err)
		}
		return err
	},
}

func reportUpdate(ctx context.Context, out io.Writer, checker *selfupdate.Checker) error {
	result, err := checker.Check(ctx, version)
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		fmt.Fprintf(out, "fff %s ist aktuell.\n", version)
		return nil
	}
	fmt.Fprintf(out, "Update verfügbar: %s -> %s\n%s\n", version, result.LatestVersion, result.ReleaseURL)
	return nil
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only report whether a newer release exists")
}
