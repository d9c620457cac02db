package tree

// Column is a named, ordered sequence of values attached to the nodes or
// edges of a tree. Rows are addressed by node/edge id. A column may carry
// more than one component per row (for example an RGB color column carries
// three), and an optional metadata map consumed by serializers.
type Column struct {
	name       string
	components int
	values     []Value
	meta       map[string]string
	metaKeys   []string // preserves SetAttribute order for deterministic iteration
}

// NewColumn creates a single-component column with the given name and row
// count. All rows start as the invalid Value.
func NewColumn(name string, rows int) *Column {
	return NewColumnWithComponents(name, rows, 1)
}

// NewColumnWithComponents creates a column whose rows each hold components
// values, stored row-major.
func NewColumnWithComponents(name string, rows, components int) *Column {
	if components < 1 {
		components = 1
	}
	return &Column{
		name:       name,
		components: components,
		values:     make([]Value, rows*components),
	}
}

// Name returns the column's name.
func (c *Column) Name() string { return c.name }

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return len(c.values) / c.components
}

// Components returns the number of values stored per row.
func (c *Column) Components() int { return c.components }

// Value returns the first component of the given row, or the invalid Value
// when the row is out of range.
func (c *Column) Value(row int) Value {
	return c.Component(row, 0)
}

// SetValue sets the first component of the given row. Out-of-range rows are
// ignored.
func (c *Column) SetValue(row int, v Value) {
	c.SetComponent(row, 0, v)
}

// Component returns component comp of the given row, or the invalid Value
// when out of range.
func (c *Column) Component(row, comp int) Value {
	i := row*c.components + comp
	if row < 0 || comp < 0 || comp >= c.components || i >= len(c.values) {
		return Value{}
	}
	return c.values[i]
}

// SetComponent sets component comp of the given row. Out-of-range indices
// are ignored.
func (c *Column) SetComponent(row, comp int, v Value) {
	i := row*c.components + comp
	if row < 0 || comp < 0 || comp >= c.components || i >= len(c.values) {
		return
	}
	c.values[i] = v
}

// Attribute returns the metadata value stored under key, or "" when the key
// is absent. Serializers use well-known keys such as "authority",
// "applies_to", "unit" and "type".
func (c *Column) Attribute(key string) string {
	if c.meta == nil {
		return ""
	}
	return c.meta[key]
}

// SetAttribute stores a metadata key/value pair on the column.
func (c *Column) SetAttribute(key, value string) {
	if c.meta == nil {
		c.meta = make(map[string]string)
	}
	if _, ok := c.meta[key]; !ok {
		c.metaKeys = append(c.metaKeys, key)
	}
	c.meta[key] = value
}

// AttributeKeys returns the metadata keys in the order they were first set.
func (c *Column) AttributeKeys() []string {
	keys := make([]string, len(c.metaKeys))
	copy(keys, c.metaKeys)
	return keys
}

// ColumnSet is an insertion-ordered collection of columns with unique names.
type ColumnSet struct {
	columns []*Column
	byName  map[string]*Column
}

// NewColumnSet creates an empty column set.
func NewColumnSet() *ColumnSet {
	return &ColumnSet{byName: make(map[string]*Column)}
}

// Add appends a column to the set. A column whose name is already present
// replaces the existing one in place, keeping its original position.
func (s *ColumnSet) Add(c *Column) {
	if existing, ok := s.byName[c.name]; ok {
		for i, col := range s.columns {
			if col == existing {
				s.columns[i] = c
				break
			}
		}
		s.byName[c.name] = c
		return
	}
	s.columns = append(s.columns, c)
	s.byName[c.name] = c
}

// Get returns the column with the given name, or nil when absent.
func (s *ColumnSet) Get(name string) *Column {
	return s.byName[name]
}

// Len returns the number of columns in the set.
func (s *ColumnSet) Len() int { return len(s.columns) }

// At returns the column at position i in insertion order.
func (s *ColumnSet) At(i int) *Column { return s.columns[i] }
