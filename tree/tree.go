package tree

// NoNode is returned by lookups when no node or edge exists.
const NoNode = -1

// Tree is a rooted tree of integer-identified nodes. Node 0 is always the
// root; every other node is created as the child of an existing node, which
// also creates the connecting edge. Edge ids are assigned in creation order
// and index the edge-scope column set.
type Tree struct {
	parent   []int
	children [][]int
	edgeOf   []int // edgeOf[v] is the id of the edge from parent[v] to v
	nodeData *ColumnSet
	edgeData *ColumnSet
}

// New creates an empty tree with no nodes.
func New() *Tree {
	return &Tree{
		nodeData: NewColumnSet(),
		edgeData: NewColumnSet(),
	}
}

// AddRoot creates the root node and returns its id (always 0). Calling
// AddRoot on a non-empty tree returns the existing root.
func (t *Tree) AddRoot() int {
	if len(t.parent) > 0 {
		return 0
	}
	t.parent = append(t.parent, NoNode)
	t.children = append(t.children, nil)
	t.edgeOf = append(t.edgeOf, NoNode)
	return 0
}

// AddChild creates a new node as the last child of parent, together with
// the edge connecting them, and returns the new node's id. It returns
// NoNode when parent does not exist.
func (t *Tree) AddChild(parent int) int {
	if parent < 0 || parent >= len(t.parent) {
		return NoNode
	}
	v := len(t.parent)
	edge := t.EdgeCount()
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	t.edgeOf = append(t.edgeOf, edge)
	t.children[parent] = append(t.children[parent], v)
	return v
}

// Root returns the root node id, or NoNode for an empty tree.
func (t *Tree) Root() int {
	if len(t.parent) == 0 {
		return NoNode
	}
	return 0
}

// Parent returns the parent of v, or NoNode for the root or an unknown node.
func (t *Tree) Parent(v int) int {
	if v < 0 || v >= len(t.parent) {
		return NoNode
	}
	return t.parent[v]
}

// Children returns the children of v in the order they were added. The
// returned slice is owned by the tree and must not be modified.
func (t *Tree) Children(v int) []int {
	if v < 0 || v >= len(t.children) {
		return nil
	}
	return t.children[v]
}

// EdgeID returns the id of the edge from parent to child, or NoNode when no
// such edge exists.
func (t *Tree) EdgeID(parent, child int) int {
	if child < 0 || child >= len(t.parent) || t.parent[child] != parent {
		return NoNode
	}
	return t.edgeOf[child]
}

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.parent) }

// EdgeCount returns the number of edges (NodeCount-1 for a non-empty tree).
func (t *Tree) EdgeCount() int {
	if len(t.parent) == 0 {
		return 0
	}
	return len(t.parent) - 1
}

// NodeData returns the node-scope column set. Columns added here must have
// one row per node.
func (t *Tree) NodeData() *ColumnSet { return t.nodeData }

// EdgeData returns the edge-scope column set. Columns added here must have
// one row per edge.
func (t *Tree) EdgeData() *ColumnSet { return t.edgeData }
