package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/config"
	"github.com/itsmostafa/foldertree/internal/ctxlog"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or save the display theme",
	Long:      `Without arguments, print the current theme. With an argument, save it to the config file.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{config.ThemeDark, config.ThemeLight},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), appConfig.Theme)
			return err
		}

		theme, err := config.ValidateTheme(args[0])
		if err != nil {
			return err
		}

		// Save from the file alone so env overrides are not persisted
		fileCfg, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		fileCfg.Theme = theme
		if err := fileCfg.Save(configPath); err != nil {
			return err
		}

		ctxlog.FromContext(cmd.Context()).Info("theme saved", "theme", theme, "path", configPath)

		appConfig.Theme = theme
		newPrinter(cmd).Notice(fmt.Sprintf("Theme set to %s (saved to %s)", theme, configPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
