package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/dendro/tree"
)

// Column names used for parsed attribute data. They match the phyloxml
// writer's default column names so a parsed tree serializes without
// further configuration.
const (
	NodeNameColumn   = "node name"
	EdgeWeightColumn = "weight"
)

// Parse reads a single Newick tree from r.
func Parse(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: read input: %w", err)
	}
	return ParseString(string(data))
}

// ParseString parses a single Newick tree, e.g. "(A:1.5,B:2.25)root;".
// Trailing content after the terminating semicolon (other than whitespace)
// is an error.
func ParseString(s string) (*tree.Tree, error) {
	p := &parser{input: s, tree: tree.New()}

	root := p.tree.AddRoot()
	p.parseNode(root)
	p.skipSpace()
	if p.err == nil && !p.consume(';') {
		p.fail("expected ';'")
	}
	p.skipSpace()
	if p.err == nil && p.pos < len(p.input) {
		p.fail("unexpected content after ';'")
	}
	if p.err != nil {
		return nil, p.err
	}

	p.attachColumns()
	return p.tree, nil
}

// parser is a recursive-descent parser over the input string. The first
// syntax error is recorded in err and short-circuits further parsing.
type parser struct {
	input string
	pos   int
	tree  *tree.Tree
	err   error

	names      []string  // per node id
	lengths    []float64 // per edge id
	hasLength  []bool    // per edge id
	sawLengths bool
}

// parseNode parses one subtree rooted at the already-created node v:
// an optional parenthesized child list, then an optional label, then an
// optional branch length.
func (p *parser) parseNode(v int) {
	if p.err != nil {
		return
	}
	p.skipSpace()

	if p.consume('(') {
		for {
			child := p.tree.AddChild(v)
			p.parseNode(child)
			p.skipSpace()
			if p.consume(',') {
				continue
			}
			break
		}
		if p.err == nil && !p.consume(')') {
			p.fail("expected ',' or ')'")
			return
		}
		p.skipSpace()
	}

	p.setName(v, p.parseLabel())

	p.skipSpace()
	if p.consume(':') {
		p.setLength(v, p.parseLength())
	}
}

// parseLabel reads a quoted or unquoted label. Both may be empty.
func (p *parser) parseLabel() string {
	if p.err != nil {
		return ""
	}
	if p.peek() == '\'' {
		return p.parseQuotedLabel()
	}

	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '(' || c == ')' || c == ',' || c == ':' || c == ';' || c == '[' || c == ']' || isSpace(c) {
			break
		}
		p.pos++
	}
	label := p.input[start:p.pos]
	// Underscores in unquoted labels are a conventional encoding of spaces.
	label = strings.ReplaceAll(label, "_", " ")
	return norm.NFC.String(label)
}

func (p *parser) parseQuotedLabel() string {
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
				sb.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return norm.NFC.String(sb.String())
		}
		sb.WriteByte(c)
		p.pos++
	}
	p.fail("unterminated quoted label")
	return ""
}

// parseLength reads the branch length following ':'.
func (p *parser) parseLength() float64 {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	length, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.fail(fmt.Sprintf("invalid branch length %q", text))
		return 0
	}
	return length
}

func (p *parser) setName(v int, name string) {
	for len(p.names) <= v {
		p.names = append(p.names, "")
	}
	p.names[v] = name
}

func (p *parser) setLength(v int, length float64) {
	parent := p.tree.Parent(v)
	if parent == tree.NoNode {
		// A length on the root has no edge to live on; tolerated and dropped.
		return
	}
	edge := p.tree.EdgeID(parent, v)
	for len(p.lengths) <= edge {
		p.lengths = append(p.lengths, 0)
		p.hasLength = append(p.hasLength, false)
	}
	p.lengths[edge] = length
	p.hasLength[edge] = true
	p.sawLengths = true
}

// attachColumns materializes the collected labels and branch lengths as
// attribute columns. The weight column is only created when the input
// carried at least one branch length.
func (p *parser) attachColumns() {
	names := tree.NewColumn(NodeNameColumn, p.tree.NodeCount())
	for v := 0; v < p.tree.NodeCount(); v++ {
		name := ""
		if v < len(p.names) {
			name = p.names[v]
		}
		names.SetValue(v, tree.NewString(name))
	}
	p.tree.NodeData().Add(names)

	if !p.sawLengths {
		return
	}
	weights := tree.NewColumn(EdgeWeightColumn, p.tree.EdgeCount())
	for e := 0; e < p.tree.EdgeCount(); e++ {
		var length float64
		if e < len(p.lengths) && p.hasLength[e] {
			length = p.lengths[e]
		}
		weights.SetValue(e, tree.NewFloat64(length))
	}
	p.tree.EdgeData().Add(weights)
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) consume(c byte) bool {
	if p.err == nil && p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// skipSpace advances past whitespace and square-bracket comments.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if isSpace(c) {
			p.pos++
			continue
		}
		if c == '[' {
			end := strings.IndexByte(p.input[p.pos:], ']')
			if end < 0 {
				p.fail("unterminated comment")
				return
			}
			p.pos += end + 1
			continue
		}
		break
	}
}

func (p *parser) fail(msg string) {
	if p.err == nil {
		p.err = fmt.Errorf("newick: %s at offset %d", msg, p.pos)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
