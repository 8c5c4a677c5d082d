package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/ctxlog"
	"github.com/itsmostafa/foldertree/internal/outline"
	"github.com/itsmostafa/foldertree/internal/script"
)

var scriptOut string
var scriptName string

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Generate the folder-creation script",
	Long: `Compile the outline into mkdir/cd commands and write them to a script file
(GENERATE-FOLDERS.bat by default). Use --out - to print the script instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := buildOutline(cmd, args)
		if err != nil {
			return err
		}

		if scriptOut == "-" {
			if err := script.Write(cmd.OutOrStdout(), res.Script); err != nil {
				return err
			}
			if len(res.Script) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		}

		return writeScript(cmd, res)
	},
}

// writeScript writes the script using --out/--name, falling back to config
func writeScript(cmd *cobra.Command, res *outline.Result) error {
	dir := scriptOut
	if dir == "" {
		dir = appConfig.OutputDir
	}
	name := scriptName
	if name == "" {
		name = appConfig.ScriptName
	}

	p := newPrinter(cmd)
	if res.Empty() {
		p.Warning("Outline has no headings; the script will be empty")
	}

	path, err := script.WriteFile(dir, name, res.Script)
	if err != nil {
		return err
	}

	ctxlog.FromContext(cmd.Context()).Info("script written", "path", path, "commands", len(res.Script))
	p.ScriptWritten(path)
	return nil
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptOut, "out", "o", "", "Output directory, or - for stdout (default from config)")
	scriptCmd.Flags().StringVar(&scriptName, "name", "", "Script file name (default GENERATE-FOLDERS.bat)")
	rootCmd.AddCommand(scriptCmd)
}
