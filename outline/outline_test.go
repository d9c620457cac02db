package outline

import (
	"strings"
	"testing"

	"github.com/tsawler/dendro/tree"
)

func TestRender(t *testing.T) {
	tr := tree.New()
	root := tr.AddRoot()
	a := tr.AddChild(root)
	tr.AddChild(root)
	tr.AddChild(a)

	names := tree.NewColumn("node name", tr.NodeCount())
	names.SetValue(root, tree.NewString("root"))
	names.SetValue(a, tree.NewString("inner <clade>"))
	tr.NodeData().Add(names)

	var sb strings.Builder
	err := Render(&sb, tr, Options{NameColumn: "node name", Title: "test tree"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "<title>test tree</title>") {
		t.Errorf("missing title in:\n%s", got)
	}
	if n := strings.Count(got, "<li>"); n != tr.NodeCount() {
		t.Errorf("got %d list items, want %d", n, tr.NodeCount())
	}
	// Labels are escaped and unnamed nodes fall back to their id.
	if !strings.Contains(got, "inner &lt;clade&gt;") {
		t.Errorf("label not escaped in:\n%s", got)
	}
	if !strings.Contains(got, "node 2") || !strings.Contains(got, "node 3") {
		t.Errorf("missing fallback labels in:\n%s", got)
	}
	// Child list nests inside the parent's item.
	if !strings.Contains(got, "<ul><li>root<ul>") {
		t.Errorf("list nesting does not mirror the tree:\n%s", got)
	}
}

func TestRenderEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, tree.New(), Options{}); err == nil {
		t.Error("Render(empty tree) returned nil error")
	}
}

func TestRenderNoNameColumn(t *testing.T) {
	tr := tree.New()
	tr.AddChild(tr.AddRoot())

	var sb strings.Builder
	if err := Render(&sb, tr, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(sb.String(), "node 0") {
		t.Errorf("missing fallback label in:\n%s", sb.String())
	}
}
