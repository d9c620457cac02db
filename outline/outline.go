// Package outline renders a tree as a nested HTML list for quick visual
// inspection of parsed trees.
package outline

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/dendro/tree"
)

// Options configures HTML outline rendering.
type Options struct {
	// NameColumn names the node column rendered as each item's label.
	// Nodes without a (non-empty) name render as "node <id>".
	NameColumn string

	// Title is the document title. Empty means "tree".
	Title string
}

// Render writes t as a standalone HTML document to w: one nested <ul>
// whose list nesting mirrors the tree's parent/child relation, children in
// tree order.
func Render(w io.Writer, t *tree.Tree, opts Options) error {
	root := t.Root()
	if root == tree.NoNode {
		return fmt.Errorf("outline: empty tree")
	}

	title := opts.Title
	if title == "" {
		title = "tree"
	}
	names := t.NodeData().Get(opts.NameColumn)

	doc := element(atom.Html, "html")
	head := element(atom.Head, "head")
	titleEl := element(atom.Title, "title")
	titleEl.AppendChild(textNode(title))
	head.AppendChild(titleEl)
	doc.AppendChild(head)

	body := element(atom.Body, "body")
	list := element(atom.Ul, "ul")
	list.AppendChild(item(t, names, root))
	body.AppendChild(list)
	doc.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("outline: render html: %w", err)
	}
	return nil
}

// item builds the <li> for node v, containing its label and, when v has
// children, a nested <ul>.
func item(t *tree.Tree, names *tree.Column, v int) *html.Node {
	li := element(atom.Li, "li")
	li.AppendChild(textNode(label(names, v)))

	children := t.Children(v)
	if len(children) > 0 {
		ul := element(atom.Ul, "ul")
		for _, child := range children {
			ul.AppendChild(item(t, names, child))
		}
		li.AppendChild(ul)
	}
	return li
}

func label(names *tree.Column, v int) string {
	if names != nil {
		if name := names.Value(v).String(); name != "" {
			return name
		}
	}
	return "node " + strconv.Itoa(v)
}

func element(a atom.Atom, name string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
