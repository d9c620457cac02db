package phyloxml

import (
	"testing"

	"github.com/tsawler/dendro/tree"
)

func TestDatatype(t *testing.T) {
	tests := []struct {
		kind tree.Kind
		want string
	}{
		{tree.Bool, "xsd:boolean"},
		{tree.Int8, "xsd:byte"},
		{tree.Uint8, "xsd:unsignedByte"},
		{tree.Int16, "xsd:short"},
		{tree.Uint16, "xsd:unsignedShort"},
		{tree.Int32, "xsd:integer"},
		{tree.Uint32, "xsd:unsignedInt"},
		{tree.Int64, "xsd:long"},
		{tree.Uint64, "xsd:unsignedLong"},
		{tree.Float32, "xsd:float"},
		{tree.Float64, "xsd:double"},
		{tree.String, "xsd:string"},
		// Total function: unknown kinds take the string fallback.
		{tree.Invalid, "xsd:string"},
		{tree.Kind(99), "xsd:string"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Datatype(tt.kind); got != tt.want {
				t.Errorf("Datatype(%v) = %q, want %q", tt.kind, got, tt.want)
			}
			// Idempotent: same kind always maps to the same token.
			if again := Datatype(tt.kind); again != tt.want {
				t.Errorf("Datatype(%v) second call = %q, want %q", tt.kind, again, tt.want)
			}
		})
	}
}
