package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/ctxlog"
	"github.com/itsmostafa/foldertree/internal/script"
)

var applyDir string
var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Create the outline's folders directly",
	Long: `Replay the compiled folder script against a directory instead of writing a
script file. Existing folders are reused. Use --dry-run to see what would be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := buildOutline(cmd, args)
		if err != nil {
			return err
		}

		log := ctxlog.FromContext(cmd.Context())
		p := newPrinter(cmd)

		stats, err := script.Replay(applyDir, res.Script, script.Options{
			DryRun: applyDryRun,
			OnCreate: func(rel string) {
				p.Created(rel, applyDryRun)
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create folders: %w", err)
		}

		log.Info("folders applied", "dir", applyDir, "created", stats.Created, "existing", stats.Existing, "dry_run", applyDryRun)

		verb := "Created"
		if applyDryRun {
			verb = "Would create"
		}
		p.Notice(fmt.Sprintf("%s %d folders in %s (%d already existed)", verb, stats.Created, applyDir, stats.Existing))
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyDir, "dir", "d", ".", "Directory to create the folders in")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Only print the folders that would be created")
	rootCmd.AddCommand(applyCmd)
}
