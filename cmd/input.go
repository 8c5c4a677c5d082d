package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/foldertree/internal/ctxlog"
	"github.com/itsmostafa/foldertree/internal/outline"
)

// readOutline reads the outline from the file named by args[0], or from
// stdin when no argument or "-" is given. It returns the text and a label
// for the source.
func readOutline(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read outline: %w", err)
	}
	return string(data), args[0], nil
}

// buildOutline reads the input and runs the pipeline over it
func buildOutline(cmd *cobra.Command, args []string) (*outline.Result, string, error) {
	text, source, err := readOutline(cmd, args)
	if err != nil {
		return nil, "", err
	}

	res := outline.Build(text)
	ctxlog.FromContext(cmd.Context()).Debug("outline parsed",
		"source", source,
		"bytes", len(text),
		"nodes", res.Forest.Count(),
		"depth", res.Forest.Depth(),
		"commands", len(res.Script),
	)
	return res, source, nil
}
