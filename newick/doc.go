// Package newick reads trees in the Newick format, roughly following the
// conventions established at
// http://evolution.genetics.washington.edu/phylip/newick_doc.html.
//
// The reader produces a [tree.Tree] wired for direct serialization with
// the phyloxml package: node labels land in a node column named
// "node name" and branch lengths, when present anywhere in the input, land
// in an edge column named "weight" — the phyloxml writer's default column
// names.
//
// Unquoted labels have underscores converted to spaces; quoted labels
// ('like this', with '' as an embedded quote) are taken verbatim. Labels
// are normalized to Unicode NFC. Square-bracket comments are skipped.
// This package only includes a reader; a writer will be added as needed.
package newick
