package phyloxml

import (
	"strings"

	"github.com/tsawler/dendro/tree"
)

// Datatype maps a value kind to the XML Schema datatype token used in a
// property element's datatype attribute. The mapping is total: string and
// any unrecognized kind fall back to "xsd:string".
func Datatype(k tree.Kind) string {
	switch k {
	case tree.Bool:
		return "xsd:boolean"
	case tree.Int8:
		return "xsd:byte"
	case tree.Uint8:
		return "xsd:unsignedByte"
	case tree.Int16:
		return "xsd:short"
	case tree.Uint16:
		return "xsd:unsignedShort"
	case tree.Int32:
		return "xsd:integer"
	case tree.Uint32:
		return "xsd:unsignedInt"
	case tree.Int64:
		return "xsd:long"
	case tree.Uint64:
		return "xsd:unsignedLong"
	case tree.Float32:
		return "xsd:float"
	case tree.Float64:
		return "xsd:double"
	default:
		return "xsd:string"
	}
}

// Column naming conventions recognized by the writer.
const (
	treeLevelPrefix    = "phylogeny."
	treePropertyPrefix = "phylogeny.property."
	propertyPrefix     = "property."
)

// isTreeLevelProperty reports whether a node column holds a tree-level
// generic property.
func isTreeLevelProperty(name string) bool {
	return strings.HasPrefix(name, treePropertyPrefix)
}

// propertyLocalName derives the local part of a property element's ref
// attribute from the column name: everything after the first occurrence of
// "property.", or the whole name when the marker is absent. Searching for
// the first occurrence (rather than a leading prefix) is what lets a
// tree-level "phylogeny.property.x" column resolve to local name "x".
func propertyLocalName(name string) string {
	if i := strings.Index(name, propertyPrefix); i >= 0 {
		return name[i+len(propertyPrefix):]
	}
	return name
}
