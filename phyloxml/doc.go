// Package phyloxml serializes a [tree.Tree] to a PhyloXML document.
//
// PhyloXML (http://www.phyloxml.org) represents a phylogeny as nested
// <clade> elements. The writer maps the tree structure one clade per node
// and resolves attribute columns onto the document by naming convention:
//
//   - the configured edge-weight column (default "weight") becomes each
//     clade's branch_length attribute
//   - the configured node-name column (default "node name") becomes each
//     clade's <name> element
//   - node columns literally named "confidence" and "color" become the
//     corresponding PhyloXML elements
//   - a node column named "phylogeny.<element>" supplies the tree-level
//     <name>, <description> or <confidence> element from its row 0
//   - node columns prefixed "phylogeny.property." become tree-level
//     <property> elements; every remaining node column becomes a per-clade
//     <property> element
//
// Each underlying column is emitted in exactly one of these roles: a
// per-write ledger of consumed column names keeps a column that was
// serialized as a fixed element from reappearing as a generic property.
//
// Column metadata supplies property attributes: "authority" (default
// "VTK"), "applies_to" (default "clade"), "unit" (omitted when empty), and
// "type" on confidence elements.
package phyloxml
