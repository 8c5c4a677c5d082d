package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "REPORT", "REPORT"},
		{"slash and bang", "SAP/SAFE!", "SAPSAFE"},
		{"hyphen removed", "YYMMDD-FOLDER NAME 1", "YYMMDDFOLDER NAME 1"},
		{"surrounding whitespace trimmed", "  REVIT IFC  ", "REVIT IFC"},
		{"trim happens before removal", " !x! ", "x"},
		{"underscore kept", "snake_case", "snake_case"},
		{"non-ascii letters removed", "Café Über", "Caf ber"},
		{"non-ascii digits removed", "٣D", "D"},
		{"non-latin label emptied", "設計", ""},
		{"no-break space kept", "A\u00a0B", "A\u00a0B"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{Command{Op: OpMkdir, Name: "A"}, `mkdir "A"`},
		{Command{Op: OpChdir, Name: "A B"}, `cd "A B"`},
		{Command{Op: OpChdirUp}, `cd ..`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "leaf only",
			input: "# A",
			want:  []string{`mkdir "A"`},
		},
		{
			name:  "parent with two children",
			input: "# A\n## B\n## C",
			want: []string{
				`mkdir "A"`,
				`cd "A"`,
				`mkdir "B"`,
				`mkdir "C"`,
				`cd ..`,
			},
		},
		{
			name:  "returns to ancestor before next sibling",
			input: "# A\n## B\n### C\n## D\n# E",
			want: []string{
				`mkdir "A"`,
				`cd "A"`,
				`mkdir "B"`,
				`cd "B"`,
				`mkdir "C"`,
				`cd ..`,
				`mkdir "D"`,
				`cd ..`,
				`mkdir "E"`,
			},
		},
		{
			name:  "sanitized names",
			input: "# SAP/SAFE!\n## a-b",
			want: []string{
				`mkdir "SAPSAFE"`,
				`cd "SAPSAFE"`,
				`mkdir "ab"`,
				`cd ..`,
			},
		},
		{
			name:  "colliding names are not disambiguated",
			input: "# A!\n# A?",
			want: []string{
				`mkdir "A"`,
				`mkdir "A"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(Parse(tt.input)).Lines()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_Shape(t *testing.T) {
	forest := Parse(SampleOutline)
	script := Compile(forest)

	parents := 0
	forest.Walk(func(n *Node, _ int) {
		if !n.IsLeaf() {
			parents++
		}
	})

	if got := script.Count(OpMkdir); got != forest.Count() {
		t.Errorf("expected %d mkdir commands, got %d", forest.Count(), got)
	}
	if got := script.Count(OpChdir); got != parents {
		t.Errorf("expected %d cd commands, got %d", parents, got)
	}
	if script.Count(OpChdir) != script.Count(OpChdirUp) {
		t.Errorf("cd count %d does not match cd .. count %d",
			script.Count(OpChdir), script.Count(OpChdirUp))
	}

	// The cursor never climbs above the starting directory
	depth := 0
	for i, cmd := range script {
		switch cmd.Op {
		case OpChdir:
			depth++
		case OpChdirUp:
			depth--
		}
		if depth < 0 {
			t.Fatalf("command %d (%s) leaves the starting directory", i, cmd)
		}
	}
	if depth != 0 {
		t.Errorf("script ends %d levels below the starting directory", depth)
	}
}

func TestScriptString(t *testing.T) {
	script := Compile(Parse("# A\n## B"))
	want := "mkdir \"A\"\ncd \"A\"\nmkdir \"B\"\ncd .."
	if got := script.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
