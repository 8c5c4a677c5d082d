package cmd

import (
	"github.com/spf13/cobra"
)

var buildCopy bool

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Print the tree and write the folder script in one pass",
	Long: `Parse the outline once, print the rendered tree and write the folder-creation
script next to it. This is the usual command when editing an outline.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, source, err := buildOutline(cmd, args)
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		p.Tree(source, res.Tree)
		p.Summary(res.Forest.Count(), res.Forest.Depth(), len(res.Script))

		if err := writeScript(cmd, res); err != nil {
			return err
		}

		if buildCopy {
			copyToClipboard(cmd, res.TreeString())
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&scriptOut, "out", "o", "", "Output directory for the script (default from config)")
	buildCmd.Flags().StringVar(&scriptName, "name", "", "Script file name (default GENERATE-FOLDERS.bat)")
	buildCmd.Flags().BoolVarP(&buildCopy, "copy", "c", false, "Copy the rendered tree to the clipboard")
	rootCmd.AddCommand(buildCmd)
}
