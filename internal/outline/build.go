package outline

import (
	"strings"
)

// Result holds everything produced by one pass over an outline.
type Result struct {
	Forest Forest
	Tree   []string
	Script Script
}

// Build parses text and feeds the forest to both the renderer and the
// compiler.
func Build(text string) *Result {
	forest := Parse(text)
	return &Result{
		Forest: forest,
		Tree:   Render(forest),
		Script: Compile(forest),
	}
}

// TreeString returns the rendered tree as a single string.
func (r *Result) TreeString() string {
	return strings.Join(r.Tree, "\n")
}

// Empty reports whether the outline contained no headings.
func (r *Result) Empty() bool {
	return len(r.Forest) == 0
}
