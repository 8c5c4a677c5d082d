package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/outline"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a sample outline",
	Long: `Print a sample BIM project outline. Pipe it into another command to try
foldertree out:

  foldertree example | foldertree build`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), outline.SampleOutline)
		return err
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
