package outline

import (
	"fmt"
	"strings"
	"unicode"
)

// Op identifies the kind of a script command.
type Op int

const (
	// OpMkdir creates a directory in the current directory
	OpMkdir Op = iota
	// OpChdir enters a directory
	OpChdir
	// OpChdirUp returns to the parent directory
	OpChdirUp
)

// Command is a single step of a folder-creation script.
type Command struct {
	Op   Op
	Name string // empty for OpChdirUp
}

// String renders the command as a shell line.
func (c Command) String() string {
	switch c.Op {
	case OpMkdir:
		return `mkdir "` + c.Name + `"`
	case OpChdir:
		return `cd "` + c.Name + `"`
	case OpChdirUp:
		return "cd .."
	default:
		return fmt.Sprintf("unknown op %d", c.Op)
	}
}

// Script is an ordered list of commands. Executed in order from an empty
// working directory, it recreates the compiled forest as directories.
type Script []Command

// Lines returns the commands as shell lines.
func (s Script) Lines() []string {
	lines := make([]string, len(s))
	for i, cmd := range s {
		lines[i] = cmd.String()
	}
	return lines
}

// String returns the script with one command per line.
func (s Script) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Count returns the number of commands with the given op.
func (s Script) Count(op Op) int {
	n := 0
	for _, cmd := range s {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

// SanitizeName turns a heading label into a directory name. Surrounding
// whitespace is trimmed, then every rune that is not an ASCII letter, ASCII
// digit, underscore or whitespace is removed. Accented and non-Latin
// characters are dropped. Distinct labels may map to the same name.
func SanitizeName(text string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
}

func isWordRune(r rune) bool {
	switch {
	case r == '_':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

// Compile turns the forest into a folder-creation script.
//
// Every node gets a mkdir. A node with children is additionally entered
// with cd before its children are compiled and left with cd .. afterwards,
// so siblings are always created in the right directory.
func Compile(forest Forest) Script {
	var script Script
	compileNodes(&script, forest)
	return script
}

func compileNodes(script *Script, nodes []*Node) {
	for _, node := range nodes {
		name := SanitizeName(node.Text)
		*script = append(*script, Command{Op: OpMkdir, Name: name})

		if node.IsLeaf() {
			continue
		}

		*script = append(*script, Command{Op: OpChdir, Name: name})
		compileNodes(script, node.Children)
		*script = append(*script, Command{Op: OpChdirUp})
	}
}
