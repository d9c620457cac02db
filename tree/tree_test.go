package tree

import "testing"

// ============================================================================
// Tree structure
// ============================================================================

func TestTreeConstruction(t *testing.T) {
	tr := New()
	if tr.Root() != NoNode {
		t.Errorf("empty tree Root() = %d, want NoNode", tr.Root())
	}

	root := tr.AddRoot()
	a := tr.AddChild(root)
	b := tr.AddChild(root)
	c := tr.AddChild(a)

	if root != 0 {
		t.Errorf("AddRoot() = %d, want 0", root)
	}
	if tr.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", tr.NodeCount())
	}
	if tr.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", tr.EdgeCount())
	}

	if got := tr.Parent(root); got != NoNode {
		t.Errorf("Parent(root) = %d, want NoNode", got)
	}
	if got := tr.Parent(c); got != a {
		t.Errorf("Parent(c) = %d, want %d", got, a)
	}

	children := tr.Children(root)
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("Children(root) = %v, want [%d %d]", children, a, b)
	}
	if got := tr.Children(c); len(got) != 0 {
		t.Errorf("Children(leaf) = %v, want empty", got)
	}
}

func TestTreeEdgeID(t *testing.T) {
	tr := New()
	root := tr.AddRoot()
	a := tr.AddChild(root)
	b := tr.AddChild(root)
	c := tr.AddChild(a)

	// Edge ids follow creation order.
	if got := tr.EdgeID(root, a); got != 0 {
		t.Errorf("EdgeID(root, a) = %d, want 0", got)
	}
	if got := tr.EdgeID(root, b); got != 1 {
		t.Errorf("EdgeID(root, b) = %d, want 1", got)
	}
	if got := tr.EdgeID(a, c); got != 2 {
		t.Errorf("EdgeID(a, c) = %d, want 2", got)
	}

	// No edge between unrelated or reversed pairs.
	if got := tr.EdgeID(b, a); got != NoNode {
		t.Errorf("EdgeID(b, a) = %d, want NoNode", got)
	}
	if got := tr.EdgeID(a, root); got != NoNode {
		t.Errorf("EdgeID(a, root) = %d, want NoNode", got)
	}
}

func TestAddRootIdempotent(t *testing.T) {
	tr := New()
	first := tr.AddRoot()
	second := tr.AddRoot()
	if first != second || tr.NodeCount() != 1 {
		t.Errorf("AddRoot() twice: got ids %d, %d and %d nodes", first, second, tr.NodeCount())
	}
}

func TestAddChildOfUnknownParent(t *testing.T) {
	tr := New()
	if got := tr.AddChild(5); got != NoNode {
		t.Errorf("AddChild(unknown) = %d, want NoNode", got)
	}
}

// ============================================================================
// Columns
// ============================================================================

func TestColumnValues(t *testing.T) {
	c := NewColumn("confidence", 3)
	if c.Len() != 3 || c.Components() != 1 {
		t.Fatalf("NewColumn: Len=%d Components=%d", c.Len(), c.Components())
	}

	c.SetValue(1, NewFloat64(0.9))
	if got := c.Value(1).Float64(); got != 0.9 {
		t.Errorf("Value(1) = %v, want 0.9", got)
	}
	if c.Value(0).IsValid() {
		t.Error("unset row reports a valid value")
	}
	if c.Value(99).IsValid() {
		t.Error("out-of-range row reports a valid value")
	}
}

func TestColumnComponents(t *testing.T) {
	c := NewColumnWithComponents("color", 2, 3)
	c.SetComponent(1, 2, NewUint8(255))

	if got := c.Component(1, 2).String(); got != "255" {
		t.Errorf("Component(1,2) = %q, want %q", got, "255")
	}
	if c.Component(1, 3).IsValid() {
		t.Error("out-of-range component reports a valid value")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestColumnAttributes(t *testing.T) {
	c := NewColumn("habitat", 1)
	if got := c.Attribute("authority"); got != "" {
		t.Errorf("Attribute on fresh column = %q, want empty", got)
	}

	c.SetAttribute("authority", "NCBI")
	c.SetAttribute("unit", "m")
	c.SetAttribute("authority", "EBI") // overwrite keeps key order

	if got := c.Attribute("authority"); got != "EBI" {
		t.Errorf("Attribute(authority) = %q, want %q", got, "EBI")
	}
	keys := c.AttributeKeys()
	if len(keys) != 2 || keys[0] != "authority" || keys[1] != "unit" {
		t.Errorf("AttributeKeys() = %v, want [authority unit]", keys)
	}
}

// ============================================================================
// Column sets
// ============================================================================

func TestColumnSetOrder(t *testing.T) {
	s := NewColumnSet()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		s.Add(NewColumn(name, 1))
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	// Iteration is insertion order, not sorted order.
	for i, want := range []string{"zeta", "alpha", "mid"} {
		if got := s.At(i).Name(); got != want {
			t.Errorf("At(%d).Name() = %q, want %q", i, got, want)
		}
	}
}

func TestColumnSetGet(t *testing.T) {
	s := NewColumnSet()
	c := NewColumn("weight", 2)
	s.Add(c)

	if got := s.Get("weight"); got != c {
		t.Error("Get(weight) did not return the added column")
	}
	if got := s.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestColumnSetReplaceKeepsPosition(t *testing.T) {
	s := NewColumnSet()
	s.Add(NewColumn("a", 1))
	s.Add(NewColumn("b", 1))

	replacement := NewColumn("a", 5)
	s.Add(replacement)

	if s.Len() != 2 {
		t.Fatalf("Len() after replace = %d, want 2", s.Len())
	}
	if s.At(0) != replacement {
		t.Error("replacement column did not keep position 0")
	}
	if got := s.Get("a"); got != replacement {
		t.Error("Get(a) did not return the replacement")
	}
}
