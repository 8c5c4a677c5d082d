package outline

import (
	"strings"
)

// Box-drawing pieces used by Render.
const (
	BranchConnector = "├── "
	LastConnector   = "└── "
	BranchIndent    = "│   "
	LastIndent      = "    "
)

// Render draws the forest as a tree, one line per node in depth-first
// pre-order. Top-level nodes are printed without a connector.
func Render(forest Forest) []string {
	var lines []string
	renderNodes(&lines, forest, 0, "")
	return lines
}

// RenderString returns Render's lines joined with newlines.
func RenderString(forest Forest) string {
	return strings.Join(Render(forest), "\n")
}

func renderNodes(lines *[]string, nodes []*Node, depth int, prefix string) {
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		var line, next string
		if depth > 0 {
			connector, indent := BranchConnector, BranchIndent
			if isLast {
				connector, indent = LastConnector, LastIndent
			}
			line = prefix + connector
			next = prefix + indent
		}

		*lines = append(*lines, line+node.Text)
		renderNodes(lines, node.Children, depth+1, next)
	}
}
