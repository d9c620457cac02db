package newick

import (
	"strings"
	"testing"

	"github.com/tsawler/dendro/tree"
)

func names(t *testing.T, tr *tree.Tree) []string {
	t.Helper()
	col := tr.NodeData().Get(NodeNameColumn)
	if col == nil {
		t.Fatal("parsed tree has no node name column")
	}
	out := make([]string, tr.NodeCount())
	for v := range out {
		out[v] = col.Value(v).String()
	}
	return out
}

func TestParseSimpleTree(t *testing.T) {
	tr, err := ParseString("(leafA:1.5,leafB:2.25)root;")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if tr.NodeCount() != 3 || tr.EdgeCount() != 2 {
		t.Fatalf("got %d nodes / %d edges, want 3 / 2", tr.NodeCount(), tr.EdgeCount())
	}

	got := names(t, tr)
	want := []string{"root", "leafA", "leafB"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	weights := tr.EdgeData().Get(EdgeWeightColumn)
	if weights == nil {
		t.Fatal("parsed tree has no weight column")
	}
	root := tr.Root()
	children := tr.Children(root)
	if w := weights.Value(tr.EdgeID(root, children[0])).Float64(); w != 1.5 {
		t.Errorf("weight to first child = %v, want 1.5", w)
	}
	if w := weights.Value(tr.EdgeID(root, children[1])).Float64(); w != 2.25 {
		t.Errorf("weight to second child = %v, want 2.25", w)
	}
}

func TestParseNested(t *testing.T) {
	tr, err := ParseString("((A,B)AB,(C,D)CD)root;")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if tr.NodeCount() != 7 {
		t.Fatalf("NodeCount() = %d, want 7", tr.NodeCount())
	}

	root := tr.Root()
	kids := tr.Children(root)
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}

	col := tr.NodeData().Get(NodeNameColumn)
	if got := col.Value(kids[0]).String(); got != "AB" {
		t.Errorf("first child name = %q, want AB", got)
	}
	if got := col.Value(kids[1]).String(); got != "CD" {
		t.Errorf("second child name = %q, want CD", got)
	}
	for i, want := range []string{"A", "B"} {
		if got := col.Value(tr.Children(kids[0])[i]).String(); got != want {
			t.Errorf("grandchild %d = %q, want %q", i, got, want)
		}
	}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // name of the root's single child
	}{
		{"underscores become spaces", "(Homo_sapiens)x;", "Homo sapiens"},
		{"quoted label verbatim", "('Homo sapiens (modern)')x;", "Homo sapiens (modern)"},
		{"quoted with embedded quote", "('it''s')x;", "it's"},
		{"empty leaf label", "(,A)x;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v", tt.input, err)
			}
			child := tr.Children(tr.Root())[0]
			if got := tr.NodeData().Get(NodeNameColumn).Value(child).String(); got != tt.want {
				t.Errorf("child name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseWithoutLengths(t *testing.T) {
	tr, err := ParseString("(A,B)root;")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if tr.EdgeData().Get(EdgeWeightColumn) != nil {
		t.Error("weight column created for input without branch lengths")
	}
}

func TestParseWhitespaceAndComments(t *testing.T) {
	tr, err := ParseString(" ( A : 1.0 , B : 2.0 ) [a comment] root ;\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if tr.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", tr.NodeCount())
	}
	if got := names(t, tr)[0]; got != "root" {
		t.Errorf("root name = %q, want root", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing semicolon", "(A,B)root"},
		{"unbalanced paren", "((A,B;"},
		{"trailing garbage", "(A,B); extra"},
		{"bad branch length", "(A:abc)x;"},
		{"unterminated quote", "('A)x;"},
		{"unterminated comment", "(A[unclosed)x;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.input); err == nil {
				t.Errorf("ParseString(%q) = nil error, want failure", tt.input)
			} else if !strings.HasPrefix(err.Error(), "newick:") {
				t.Errorf("error %q lacks newick: prefix", err)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	tr, err := Parse(strings.NewReader("(A,B)r;"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tr.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", tr.NodeCount())
	}
}
