package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/foldertree/internal/config"
)

// palette holds the colors for one theme
type palette struct {
	accent  lipgloss.Color
	dim     lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	err     lipgloss.Color
	text    lipgloss.Color
}

var palettes = map[string]palette{
	config.ThemeDark: {
		accent:  lipgloss.Color("81"),
		dim:     lipgloss.Color("240"),
		success: lipgloss.Color("42"),
		warning: lipgloss.Color("220"),
		err:     lipgloss.Color("196"),
		text:    lipgloss.Color("255"),
	},
	config.ThemeLight: {
		accent:  lipgloss.Color("25"),
		dim:     lipgloss.Color("245"),
		success: lipgloss.Color("28"),
		warning: lipgloss.Color("130"),
		err:     lipgloss.Color("160"),
		text:    lipgloss.Color("235"),
	},
}

// Printer renders styled CLI output for one theme
type Printer struct {
	w io.Writer

	titleStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	treeStyle    lipgloss.Style
	boxStyle     lipgloss.Style
}

// NewPrinter creates a Printer writing to w. Unknown themes fall back to dark.
func NewPrinter(w io.Writer, theme string) *Printer {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[config.ThemeDark]
	}

	return &Printer{
		w: w,

		// titleStyle for bold headers
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		// dimStyle for muted metadata text
		dimStyle: lipgloss.NewStyle().
			Foreground(p.dim),

		successStyle: lipgloss.NewStyle().
			Foreground(p.success),

		warningStyle: lipgloss.NewStyle().
			Foreground(p.warning),

		errorStyle: lipgloss.NewStyle().
			Foreground(p.err),

		treeStyle: lipgloss.NewStyle().
			Foreground(p.text),

		// boxStyle for the tree panel with rounded border
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
	}
}

// Tree renders the tree inside a bordered panel titled with source
func (p *Printer) Tree(source string, lines []string) {
	body := p.dimStyle.Render("(no headings found)")
	if len(lines) > 0 {
		body = p.treeStyle.Render(strings.Join(lines, "\n"))
	}

	content := p.titleStyle.Render(source) + "\n" + body
	fmt.Fprintln(p.w, p.boxStyle.Render(content))
}

// Summary renders the folder and nesting counts
func (p *Printer) Summary(folders, depth, commands int) {
	fmt.Fprintf(p.w, "%s %d  %s %d  %s %d\n",
		p.dimStyle.Render("Folders:"), folders,
		p.dimStyle.Render("Depth:"), depth,
		p.dimStyle.Render("Commands:"), commands,
	)
}

// ScriptWritten renders the path of a generated script
func (p *Printer) ScriptWritten(path string) {
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.successStyle.Render("✓"),
		p.dimStyle.Render("Script written to"),
		path,
	)
}

// Created renders a directory created by apply
func (p *Printer) Created(path string, dryRun bool) {
	indicator := p.successStyle.Render("+")
	if dryRun {
		indicator = p.dimStyle.Render("~")
	}
	fmt.Fprintf(p.w, "%s %s\n", indicator, path)
}

// Notice renders an informational message
func (p *Printer) Notice(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.successStyle.Render("●"), msg)
}

// Warning renders a non-fatal failure
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.warningStyle.Render("!"), msg)
}

// Error renders a fatal failure
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.errorStyle.Render("✗"), msg)
}
