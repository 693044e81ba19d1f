package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	lutfilter "github.com/gablabelle/expo-lut-filter"
	"github.com/gablabelle/expo-lut-filter/internal/logging"
)

// NewRoot creates the lutctl root command.
func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lutctl",
		Short: "apply LUT color filters and grain textures to images",
		Long: "lutctl applies 3D color-lookup-table filters to images, " +
			"optionally blending a grain texture, and writes the result to disk.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}
			logger := logging.Logger(logging.TeeWriter(logFile), false, level)
			slog.SetDefault(logger)
			lutfilter.SetLogger(logger)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewApplyCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "Also write logs to this rotated file")
	return cmd
}

// NewVersionCmd creates the version cobra command.
func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
}
