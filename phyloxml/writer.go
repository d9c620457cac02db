package phyloxml

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/dendro/tree"
	"github.com/tsawler/dendro/xmldoc"
)

// PhyloXML namespace declarations carried on the document root.
const (
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	phyloxmlNamespace = "http://www.phyloxml.org"
	schemaLocation    = "http://www.phyloxml.org http://www.phyloxml.org/1.10/phyloxml.xsd"
)

// treeLevelRow is the sentinel row index meaning "tree-level emission":
// read row 0 and record the column as consumed.
const treeLevelRow = -1

// Default column names resolved by the writer's fixed conventions.
const (
	DefaultEdgeWeightColumn = "weight"
	DefaultNodeNameColumn   = "node name"
)

// ErrEmptyTree is returned when the input tree has no nodes.
var ErrEmptyTree = errors.New("phyloxml: empty tree")

// Writer serializes trees to PhyloXML. Configure the column names before
// calling Write; the zero value resolves no edge-weight or node-name column
// and emits unindented output.
//
// A Writer holds no per-document state and may be reused across writes, but
// a single Write call must not run concurrently with mutation of its tree.
type Writer struct {
	// EdgeWeightColumn names the edge-scope column written as each clade's
	// branch_length attribute.
	EdgeWeightColumn string

	// NodeNameColumn names the node-scope column written as each clade's
	// <name> element.
	NodeNameColumn string

	// Indent is the per-depth indentation of the output document.
	Indent string
}

// NewWriter returns a Writer with the default column names ("weight",
// "node name") and two-space indentation.
func NewWriter() *Writer {
	return &Writer{
		EdgeWeightColumn: DefaultEdgeWeightColumn,
		NodeNameColumn:   DefaultNodeNameColumn,
		Indent:           "  ",
	}
}

// Write serializes t as a complete PhyloXML document. The document holds a
// single <phylogeny rooted="true"> whose clade nesting mirrors the tree's
// parent/child relation, built depth-first from the root with children in
// tree order.
//
// Recursion depth equals tree depth; pathologically deep trees are bounded
// only by stack capacity.
//
// The only error condition is a failure of the output stream; absence of
// any optional column simply omits the corresponding output.
func (w *Writer) Write(out io.Writer, t *tree.Tree) error {
	root := t.Root()
	if root == tree.NoNode {
		return ErrEmptyTree
	}

	// Per-invocation state: resolved designated columns plus the ledger of
	// column names already emitted in a fixed role.
	d := &docWriter{
		tree:        t,
		edgeWeights: t.EdgeData().Get(w.EdgeWeightColumn),
		nodeNames:   t.NodeData().Get(w.NodeNameColumn),
		emitted:     make(map[string]struct{}),
	}

	docElement := xmldoc.NewElement("phyloxml")
	docElement.SetAttribute("xmlns:xsi", xsiNamespace)
	docElement.SetAttribute("xmlns", phyloxmlNamespace)
	docElement.SetAttribute("xsi:schemaLocation", schemaLocation)

	phylogeny := xmldoc.NewElement("phylogeny")
	phylogeny.SetAttribute("rooted", "true")

	// Optional elements describing the whole phylogeny, sourced from
	// specially named node columns at row 0.
	d.writeTreeLevelElement(phylogeny, "name", "")
	d.writeTreeLevelElement(phylogeny, "description", "")
	d.writeTreeLevelElement(phylogeny, "confidence", "type")
	d.writeTreeLevelProperties(phylogeny)

	d.writeClade(root, phylogeny)
	docElement.AddChild(phylogeny)

	if err := docElement.WriteTo(out, w.Indent); err != nil {
		return fmt.Errorf("phyloxml: %w", err)
	}
	return nil
}

// docWriter carries the state of one Write invocation.
type docWriter struct {
	tree        *tree.Tree
	edgeWeights *tree.Column // nil when unconfigured or absent
	nodeNames   *tree.Column // nil when unconfigured or absent
	emitted     map[string]struct{}
}

// consume records a column name as emitted in a fixed role so the generic
// property pass skips it.
func (d *docWriter) consume(name string) {
	d.emitted[name] = struct{}{}
}

func (d *docWriter) consumed(name string) bool {
	_, ok := d.emitted[name]
	return ok
}

// writeTreeLevelElement emits one optional tree-level element sourced from
// the node column "phylogeny.<elementName>", attaching attributeName from
// the column's metadata when requested and non-empty. A missing column
// means the element is simply omitted.
func (d *docWriter) writeTreeLevelElement(phylogeny *xmldoc.Element, elementName, attributeName string) {
	columnName := treeLevelPrefix + elementName
	column := d.tree.NodeData().Get(columnName)
	if column == nil {
		return
	}

	element := xmldoc.NewElement(elementName)
	element.SetText(column.Value(0).String())
	if attributeName != "" {
		if v := column.Attribute(attributeName); v != "" {
			element.SetAttribute(attributeName, v)
		}
	}
	phylogeny.AddChild(element)

	d.consume(columnName)
}

// writeTreeLevelProperties emits every node column named with the
// tree-level property prefix as a property element on the phylogeny.
func (d *docWriter) writeTreeLevelProperties(phylogeny *xmldoc.Element) {
	nodeData := d.tree.NodeData()
	for i := 0; i < nodeData.Len(); i++ {
		column := nodeData.At(i)
		if isTreeLevelProperty(column.Name()) {
			d.writeProperty(column, treeLevelRow, phylogeny)
		}
	}
}

// writeClade emits the clade element for node v and, recursively, for its
// descendants, appending the result to parent.
func (d *docWriter) writeClade(v int, parent *xmldoc.Element) {
	clade := xmldoc.NewElement("clade")

	d.writeBranchLength(v, clade)
	d.writeName(v, clade)
	d.writeConfidence(v, clade)
	d.writeColor(v, clade)

	// Any node column not consumed by a fixed role becomes a per-clade
	// generic property.
	nodeData := d.tree.NodeData()
	for i := 0; i < nodeData.Len(); i++ {
		column := nodeData.At(i)
		if column == d.nodeNames || column == d.edgeWeights {
			continue
		}
		if d.consumed(column.Name()) {
			continue
		}
		d.writeProperty(column, v, clade)
	}

	for _, child := range d.tree.Children(v) {
		d.writeClade(child, clade)
	}

	parent.AddChild(clade)
}

// writeBranchLength sets the clade's branch_length attribute from the edge
// weight of the edge into v. The root has no incoming edge and gets no
// attribute.
func (d *docWriter) writeBranchLength(v int, clade *xmldoc.Element) {
	if d.edgeWeights == nil {
		return
	}

	if parent := d.tree.Parent(v); parent != tree.NoNode {
		if edge := d.tree.EdgeID(parent, v); edge != tree.NoNode {
			clade.SetFloatAttribute("branch_length", d.edgeWeights.Value(edge).Float64())
		}
	}

	d.consume(d.edgeWeights.Name())
}

// writeName emits the clade's <name> element when the node-name column
// holds non-empty text for v.
func (d *docWriter) writeName(v int, clade *xmldoc.Element) {
	if d.nodeNames == nil {
		return
	}

	if name := d.nodeNames.Value(v).String(); name != "" {
		element := xmldoc.NewElement("name")
		element.SetText(name)
		clade.AddChild(element)
	}

	d.consume(d.nodeNames.Name())
}

// writeConfidence emits a <confidence> element from the node column
// literally named "confidence", with its "type" metadata as an attribute
// when present.
func (d *docWriter) writeConfidence(v int, clade *xmldoc.Element) {
	column := d.tree.NodeData().Get("confidence")
	if column == nil {
		return
	}

	if confidence := column.Value(v).String(); confidence != "" {
		element := xmldoc.NewElement("confidence")
		if t := column.Attribute("type"); t != "" {
			element.SetAttribute("type", t)
		}
		element.SetText(confidence)
		clade.AddChild(element)
	}

	d.consume(column.Name())
}

// writeColor emits a <color> element with red/green/blue children from the
// node column literally named "color". A column that is not 3-component
// bytes is treated as if it were absent.
func (d *docWriter) writeColor(v int, clade *xmldoc.Element) {
	column := d.tree.NodeData().Get("color")
	if column == nil || column.Components() != 3 {
		return
	}
	for c := 0; c < 3; c++ {
		if column.Component(v, c).Kind() != tree.Uint8 {
			return
		}
	}

	element := xmldoc.NewElement("color")
	for c, name := range [3]string{"red", "green", "blue"} {
		channel := xmldoc.NewElement(name)
		channel.SetText(column.Component(v, c).String())
		element.AddChild(channel)
	}
	clade.AddChild(element)

	d.consume(column.Name())
}

// writeProperty emits a generic <property> element for one row of a
// column. The sentinel row treeLevelRow reads row 0 and records the column
// as consumed, so tree-level properties never reappear under a clade;
// clade-level properties are emitted on every clade that reaches here.
func (d *docWriter) writeProperty(column *tree.Column, row int, parent *xmldoc.Element) {
	authority := column.Attribute("authority")
	if authority == "" {
		authority = "VTK"
	}
	appliesTo := column.Attribute("applies_to")
	if appliesTo == "" {
		appliesTo = "clade"
	}
	unit := column.Attribute("unit")

	ref := authority + ":" + propertyLocalName(column.Name())

	if row == treeLevelRow {
		row = 0
		d.consume(column.Name())
	}

	value := column.Value(row)

	element := xmldoc.NewElement("property")
	element.SetAttribute("datatype", Datatype(value.Kind()))
	element.SetAttribute("ref", ref)
	element.SetAttribute("applies_to", appliesTo)
	if unit != "" {
		element.SetAttribute("unit", unit)
	}
	element.SetText(value.String())

	parent.AddChild(element)
}
