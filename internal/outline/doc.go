// Package outline turns a heading-style outline into a folder tree.
//
// # Overview
//
// An outline is plain text in which every line starting with one or more
// '#' characters is a heading. The number of '#' characters is the heading's
// level; everything else on the line is its label. Lines that are not
// headings are ignored.
//
//	# PROJECT NAME
//	## WIB
//	### CALCULATIONS
//	## PUBLISHED
//
// The package has three stages that share a single data model:
//
//   - Parse builds a Forest of Nodes. A heading becomes a child of the
//     nearest preceding heading with a smaller level, so levels may skip
//     (a level-4 heading directly under a level-1 heading is fine).
//
//   - Render draws the forest as an ASCII tree using box-drawing
//     connectors.
//
//   - Compile turns the forest into a Script: mkdir/cd/cd .. commands that,
//     executed in order, recreate the outline as nested directories.
//
// Build runs all three stages for one input and returns a Result.
//
// # Usage
//
//	res := outline.Build(text)
//	fmt.Println(res.TreeString())
//	for _, line := range res.Script.Lines() {
//		fmt.Println(line)
//	}
//
// All functions in this package are pure: they never fail, do no I/O and
// keep no state between calls.
package outline
