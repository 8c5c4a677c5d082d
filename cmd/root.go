package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/clipboard"
	"github.com/itsmostafa/foldertree/internal/config"
	"github.com/itsmostafa/foldertree/internal/ctxlog"
	"github.com/itsmostafa/foldertree/internal/output"
	"github.com/itsmostafa/foldertree/internal/version"
)

var configPath string
var logLevel string

// appConfig is loaded before every command runs
var appConfig = config.Default()

// clipboardWriter is swapped out in tests
var clipboardWriter clipboard.Writer = clipboard.System{}

var rootCmd = &cobra.Command{
	Use:   "foldertree",
	Short: "Turn a # heading outline into a folder tree",
	Long: `foldertree converts an outline written with markdown-style headings into an
ASCII tree and into a GENERATE-FOLDERS.bat script that recreates the outline as
nested folders.

The number of leading # characters is the depth of a heading. Lines that do not
start with # are ignored, so notes and prose can live alongside the outline.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $FOLDERTREE_CONFIG or ~/.config/foldertree/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads the config and puts a logger in the command context
func setup(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger := ctxlog.New(cmd.ErrOrStderr(), level)
	logger.Debug("config loaded", "path", configPath, "theme", cfg.Theme)

	appConfig = cfg
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), appConfig.Theme)
}

// copyToClipboard copies text and reports the outcome. Failures are
// reported and logged but never fail the command.
func copyToClipboard(cmd *cobra.Command, text string) {
	log := ctxlog.FromContext(cmd.Context())
	notices := output.NewPrinter(cmd.ErrOrStderr(), appConfig.Theme)

	if err := clipboardWriter.WriteAll(text); err != nil {
		log.Warn("clipboard copy failed", "error", err)
		notices.Warning(fmt.Sprintf("Could not copy to clipboard: %v", err))
		return
	}
	notices.Notice("Copied to clipboard!")
}

// reportError prints a command failure in the configured theme
func reportError(w io.Writer, err error) {
	output.NewPrinter(w, appConfig.Theme).Error(err.Error())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
