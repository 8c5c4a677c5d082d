package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Tree(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "dark")

	p.Tree("outline.md", []string{"A", "└── B"})

	out := buf.String()
	for _, want := range []string{"outline.md", "A", "└── B"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrinter_EmptyTree(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, "light").Tree("stdin", nil)

	if !strings.Contains(buf.String(), "no headings found") {
		t.Errorf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  []string
	}{
		{"summary", func(p *Printer) { p.Summary(22, 4, 45) }, []string{"Folders:", "22", "Depth:", "4", "Commands:", "45"}},
		{"script written", func(p *Printer) { p.ScriptWritten("out/GENERATE-FOLDERS.bat") }, []string{"Script written to", "out/GENERATE-FOLDERS.bat"}},
		{"created", func(p *Printer) { p.Created("A/B", false) }, []string{"+", "A/B"}},
		{"dry run", func(p *Printer) { p.Created("A/B", true) }, []string{"~", "A/B"}},
		{"warning", func(p *Printer) { p.Warning("copy failed") }, []string{"copy failed"}},
		{"error", func(p *Printer) { p.Error("boom") }, []string{"boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf, "unknown-theme"))

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("expected %q in output %q", want, buf.String())
				}
			}
		})
	}
}
