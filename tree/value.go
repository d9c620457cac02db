package tree

import (
	"math"
	"strconv"
)

// Kind identifies the primitive type held by a Value.
type Kind int

const (
	// Invalid is the kind of the zero Value.
	Invalid Kind = iota
	// Bool holds true or false.
	Bool
	// Int8 holds a signed 8-bit integer.
	Int8
	// Int16 holds a signed 16-bit integer.
	Int16
	// Int32 holds a signed 32-bit integer.
	Int32
	// Int64 holds a signed 64-bit integer.
	Int64
	// Uint8 holds an unsigned 8-bit integer (a byte).
	Uint8
	// Uint16 holds an unsigned 16-bit integer.
	Uint16
	// Uint32 holds an unsigned 32-bit integer.
	Uint32
	// Uint64 holds an unsigned 64-bit integer.
	Uint64
	// Float32 holds a 32-bit floating point number.
	Float32
	// Float64 holds a 64-bit floating point number.
	Float64
	// String holds arbitrary text.
	String
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a self-describing scalar: one of a fixed set of primitive kinds
// together with its payload. The zero Value has kind Invalid and renders as
// the empty string.
type Value struct {
	kind Kind
	num  uint64 // integer/bool/float payload (floats via math bits)
	str  string
}

// NewBool returns a Bool value.
func NewBool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: Bool, num: n}
}

// NewInt8 returns an Int8 value.
func NewInt8(v int8) Value { return Value{kind: Int8, num: uint64(v)} }

// NewInt16 returns an Int16 value.
func NewInt16(v int16) Value { return Value{kind: Int16, num: uint64(v)} }

// NewInt32 returns an Int32 value.
func NewInt32(v int32) Value { return Value{kind: Int32, num: uint64(v)} }

// NewInt64 returns an Int64 value.
func NewInt64(v int64) Value { return Value{kind: Int64, num: uint64(v)} }

// NewUint8 returns a Uint8 value.
func NewUint8(v uint8) Value { return Value{kind: Uint8, num: uint64(v)} }

// NewUint16 returns a Uint16 value.
func NewUint16(v uint16) Value { return Value{kind: Uint16, num: uint64(v)} }

// NewUint32 returns a Uint32 value.
func NewUint32(v uint32) Value { return Value{kind: Uint32, num: uint64(v)} }

// NewUint64 returns a Uint64 value.
func NewUint64(v uint64) Value { return Value{kind: Uint64, num: v} }

// NewFloat32 returns a Float32 value.
func NewFloat32(v float32) Value {
	return Value{kind: Float32, num: uint64(math.Float32bits(v))}
}

// NewFloat64 returns a Float64 value.
func NewFloat64(v float64) Value {
	return Value{kind: Float64, num: math.Float64bits(v)}
}

// NewString returns a String value.
func NewString(v string) Value { return Value{kind: String, str: v} }

// Kind reports which primitive kind the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value holds anything at all.
func (v Value) IsValid() bool { return v.kind != Invalid }

// String renders the value as text: decimal for integers, "true"/"false"
// for booleans, the shortest round-trip form for floats, the text itself
// for strings, and "" for the invalid value.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		if v.num != 0 {
			return "true"
		}
		return "false"
	case Int8, Int16, Int32, Int64:
		return strconv.FormatInt(int64(v.num), 10)
	case Uint8, Uint16, Uint32, Uint64:
		return strconv.FormatUint(v.num, 10)
	case Float32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.num))), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case String:
		return v.str
	default:
		return ""
	}
}

// Float64 converts the value to a float64. Integer and boolean kinds widen;
// strings are parsed and yield 0 when unparseable, matching the lossy
// numeric coercion serializers expect from attribute data.
func (v Value) Float64() float64 {
	switch v.kind {
	case Bool:
		if v.num != 0 {
			return 1
		}
		return 0
	case Int8, Int16, Int32, Int64:
		return float64(int64(v.num))
	case Uint8, Uint16, Uint32, Uint64:
		return float64(v.num)
	case Float32:
		return float64(math.Float32frombits(uint32(v.num)))
	case Float64:
		return math.Float64frombits(v.num)
	case String:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
