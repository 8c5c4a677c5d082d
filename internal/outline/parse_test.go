package outline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLevel int
		wantText  string
		wantOK    bool
	}{
		{"level one", "# A", 1, "A", true},
		{"level three", "### Section", 3, "Section", true},
		{"no space after marker", "#Title", 1, "Title", true},
		{"extra spaces after marker", "##    Deep", 2, "Deep", true},
		{"trailing whitespace kept", "# A  ", 1, "A  ", true},
		{"inner markers kept in label", "# C# notes", 1, "C# notes", true},
		{"bare marker", "#", 0, "", false},
		{"bare markers keep one as label", "##", 1, "#", true},
		{"prose", "Notes:", 0, "", false},
		{"indented heading", "  # A", 0, "", false},
		{"empty", "", 0, "", false},
		{"footnote", "[1] WIB (Work in progress)", 0, "", false},
		{"no-break space after marker", "#\u00a0Title", 1, "Title", true},
		{"ideographic space after marker", "##\u3000Plans", 2, "Plans", true},
		{"byte order mark after marker", "#\ufeffA", 1, "A", true},
		{"lone carriage return", "# A\rB", 0, "", false},
		{"line separator", "# A\u2028B", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, text, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if level != tt.wantLevel || text != tt.wantText {
				t.Errorf("ParseLine(%q) = (%d, %q), want (%d, %q)", tt.line, level, text, tt.wantLevel, tt.wantText)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Forest
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only prose",
			input: "hello\n\nworld\n[1] note",
			want:  nil,
		},
		{
			name:  "parent with two children",
			input: "# A\n## B\n## C",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{
					{Level: 2, Text: "B"},
					{Level: 2, Text: "C"},
				}},
			},
		},
		{
			name:  "skipped level attaches to nearest smaller level",
			input: "# A\n### B",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{
					{Level: 3, Text: "B"},
				}},
			},
		},
		{
			name:  "shallower heading after skipped level becomes sibling",
			input: "# A\n### B\n## C",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{
					{Level: 3, Text: "B"},
					{Level: 2, Text: "C"},
				}},
			},
		},
		{
			name:  "multiple roots",
			input: "# A\n## B\n# C",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{{Level: 2, Text: "B"}}},
				{Level: 1, Text: "C"},
			},
		},
		{
			name:  "first heading deeper than later ones",
			input: "### A\n# B",
			want: Forest{
				{Level: 3, Text: "A"},
				{Level: 1, Text: "B"},
			},
		},
		{
			name:  "carriage returns",
			input: "# A\r\n## B\r\n",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{{Level: 2, Text: "B"}}},
			},
		},
		{
			name:  "prose between headings is skipped",
			input: "intro\n# A\nsome text\n\n## B",
			want: Forest{
				{Level: 1, Text: "A", Children: []*Node{{Level: 2, Text: "B"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_LevelMatchesMarkerCount(t *testing.T) {
	wantLevels := []int{1, 4, 2, 6, 3}

	var lines []string
	for i, level := range wantLevels {
		lines = append(lines, strings.Repeat(string(Marker), level)+" "+string(rune('a'+i)))
	}
	input := strings.Join(lines, "\n")

	var got []int
	Parse(input).Walk(func(n *Node, _ int) {
		got = append(got, n.Level)
	})

	// Pre-order walk of this input visits nodes in source order
	if diff := cmp.Diff(wantLevels, got); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ChildLevelExceedsParent(t *testing.T) {
	forest := Parse(SampleOutline)

	var check func(parent *Node)
	check = func(parent *Node) {
		for _, child := range parent.Children {
			if child.Level <= parent.Level {
				t.Errorf("child %q level %d not greater than parent %q level %d",
					child.Text, child.Level, parent.Text, parent.Level)
			}
			check(child)
		}
	}
	for _, root := range forest {
		check(root)
	}
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	forest := Parse(SampleOutline)

	var got []string
	forest.Walk(func(n *Node, _ int) {
		got = append(got, n.Text)
	})

	var want []string
	for _, line := range strings.Split(SampleOutline, "\n") {
		if _, text, ok := ParseLine(line); ok {
			want = append(want, text)
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SampleOutline(t *testing.T) {
	forest := Parse(SampleOutline)

	if len(forest) != 1 {
		t.Fatalf("expected 1 root node, got %d", len(forest))
	}
	root := forest[0]
	if root.Text != "PROJECT NAME" {
		t.Errorf("expected root 'PROJECT NAME', got %q", root.Text)
	}

	// WIB, EIP, PUBLISHED
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 children under root, got %d", len(root.Children))
	}
	if got := forest.Count(); got != 22 {
		t.Errorf("expected 22 nodes, got %d", got)
	}
	if got := forest.Depth(); got != 4 {
		t.Errorf("expected depth 4, got %d", got)
	}
}
