// Package dendro provides a fluent API for building rooted phylogenetic
// trees with typed attribute data and serializing them to PhyloXML.
//
// Basic usage:
//
//	t, err := dendro.Open("tree.nwk")
//	if err != nil {
//	    // handle error
//	}
//	xml, err := dendro.FromTree(t).PhyloXML()
//
// With options:
//
//	err := dendro.FromTree(t).
//	    EdgeWeightColumn("branch length").
//	    NodeNameColumn("taxon").
//	    WriteFile("tree.xml")
//
// For advanced use cases, the lower-level tree, newick and phyloxml
// packages are also available.
package dendro

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/dendro/format"
	"github.com/tsawler/dendro/newick"
	"github.com/tsawler/dendro/phyloxml"
	"github.com/tsawler/dendro/tree"
)

// Open reads a tree file, detecting its format from content and filename.
// Newick input is parsed into a tree whose attribute columns match the
// PhyloXML writer's defaults. PhyloXML and NEXUS inputs are recognized but
// not parsed.
func Open(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open tree file: %w", err)
	}

	f, err := format.DetectReader(bytes.NewReader(data), path)
	if err != nil {
		return nil, fmt.Errorf("detect format of %s: %w", path, err)
	}

	switch f {
	case format.Newick:
		t, err := newick.ParseString(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return t, nil
	case format.PhyloXML, format.NEXUS:
		return nil, fmt.Errorf("%s: reading %s is not supported", path, f)
	default:
		return nil, fmt.Errorf("%s: unrecognized tree format", path)
	}
}

// FromTree returns an Exporter for fluent serialization of t.
//
// Example:
//
//	xml, err := dendro.FromTree(t).PhyloXML()
func FromTree(t *tree.Tree) *Exporter {
	return &Exporter{
		tree:   t,
		writer: phyloxml.NewWriter(),
	}
}

// Exporter configures and runs PhyloXML serialization of one tree.
type Exporter struct {
	tree   *tree.Tree
	writer *phyloxml.Writer
}

// EdgeWeightColumn overrides the edge column serialized as branch lengths
// (default "weight").
func (e *Exporter) EdgeWeightColumn(name string) *Exporter {
	e.writer.EdgeWeightColumn = name
	return e
}

// NodeNameColumn overrides the node column serialized as clade names
// (default "node name").
func (e *Exporter) NodeNameColumn(name string) *Exporter {
	e.writer.NodeNameColumn = name
	return e
}

// Indent overrides the output indentation (default two spaces).
func (e *Exporter) Indent(indent string) *Exporter {
	e.writer.Indent = indent
	return e
}

// WriteTo serializes the tree as PhyloXML to w.
func (e *Exporter) WriteTo(w io.Writer) error {
	return e.writer.Write(w, e.tree)
}

// PhyloXML serializes the tree and returns the document text.
func (e *Exporter) PhyloXML() (string, error) {
	var sb strings.Builder
	if err := e.writer.Write(&sb, e.tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteFile serializes the tree as PhyloXML to the named file, creating or
// truncating it.
func (e *Exporter) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := e.writer.Write(f, e.tree); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	t := dendro.Must(dendro.Open("tree.nwk"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
