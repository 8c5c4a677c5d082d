package outline

import (
	"regexp"
)

// Marker is the character that introduces a heading. Its repeat count is
// the heading level.
const Marker = '#'

const (
	// blankClass matches ASCII and Unicode space separators, line separators
	// and the byte order mark
	blankClass = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`
	// labelClass matches one character that is not a line terminator
	labelClass = `[^\n\r\x{2028}\x{2029}]`
)

var (
	newlinePattern = regexp.MustCompile(`\r?\n`)
	headingPattern = regexp.MustCompile(`^(` + regexp.QuoteMeta(string(Marker)) + `+)` + blankClass + `*(` + labelClass + `+)$`)
)

// ParseLine reports whether line is a heading and, if so, returns its level
// and label.
func ParseLine(line string) (level int, text string, ok bool) {
	matches := headingPattern.FindStringSubmatch(line)
	if matches == nil {
		return 0, "", false
	}
	return len(matches[1]), matches[2], true
}

// Parse builds a forest from outline text.
//
// Each heading is attached as the last child of the nearest preceding
// heading whose level is strictly smaller; headings with no such ancestor
// become top-level nodes. Lines that are not headings are skipped.
func Parse(text string) Forest {
	var (
		roots Forest
		stack []*Node // open ancestors, innermost last
	)

	for _, line := range newlinePattern.Split(text, -1) {
		level, label, ok := ParseLine(line)
		if !ok {
			continue
		}

		node := &Node{Level: level, Text: label}

		// Pop until the top of the stack is a proper ancestor
		for len(stack) > 0 && stack[len(stack)-1].Level >= level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}

		stack = append(stack, node)
	}

	return roots
}
