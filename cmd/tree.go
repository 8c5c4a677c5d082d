package cmd

import (
	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/export"
)

var treeFormat string
var treeCopy bool
var treePlain bool

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the outline as an ASCII tree",
	Long: `Parse the outline and print it as a tree drawn with box-drawing characters.
Reads from stdin when no file (or "-") is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(treeFormat)
		if err != nil {
			return err
		}

		res, source, err := buildOutline(cmd, args)
		if err != nil {
			return err
		}

		if format == export.FormatText && !treePlain {
			p := newPrinter(cmd)
			p.Tree(source, res.Tree)
			p.Summary(res.Forest.Count(), res.Forest.Depth(), len(res.Script))
		} else if err := export.Write(cmd.OutOrStdout(), res.Forest, format); err != nil {
			return err
		}

		if treeCopy {
			copyToClipboard(cmd, res.TreeString())
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "text", "Output format (text, json, yaml)")
	treeCmd.Flags().BoolVarP(&treeCopy, "copy", "c", false, "Copy the rendered tree to the clipboard")
	treeCmd.Flags().BoolVar(&treePlain, "plain", false, "Print only the tree, without the styled panel")
	rootCmd.AddCommand(treeCmd)
}
