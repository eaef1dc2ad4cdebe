package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SetInnerHTML replaces the children of n with the nodes parsed from
// markup in the context of n's tag. The markup is not sanitized.
func (n *Node) SetInnerHTML(markup string) {
	if n.typ != ElementNode {
		return
	}
	n.removeChildren()
	if markup == "" {
		return
	}

	context := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tag,
		DataAtom: atom.Lookup([]byte(n.tag)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		n.AppendChild(&Node{typ: RawNode, data: markup, doc: n.doc})
		return
	}
	for _, hn := range parsed {
		if c := n.doc.importHTML(hn); c != nil {
			n.AppendChild(c)
		}
	}
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, c := range n.children {
		_ = html.Render(&buf, exportHTML(c))
	}
	return buf.String()
}

// OuterHTML serializes n and its children.
func (n *Node) OuterHTML() string {
	if n.typ == DocumentNode {
		return n.InnerHTML()
	}
	var buf bytes.Buffer
	_ = html.Render(&buf, exportHTML(n))
	return buf.String()
}

// importHTML converts a parsed x/net/html node into a detached Node.
// Comments and doctypes are dropped.
func (d *Document) importHTML(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		return d.CreateTextNode(hn.Data)
	case html.ElementNode:
		el := d.CreateElement(hn.Data)
		for _, a := range hn.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if child := d.importHTML(c); child != nil {
				el.AppendChild(child)
			}
		}
		return el
	default:
		return nil
	}
}

// exportHTML converts n into an x/net/html tree for serialization.
func exportHTML(n *Node) *html.Node {
	switch n.typ {
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.data}
	case RawNode:
		return &html.Node{Type: html.RawNode, Data: n.data}
	}

	hn := &html.Node{Type: html.ElementNode, Data: n.tag, DataAtom: atom.Lookup([]byte(n.tag))}
	if n.typ == DocumentNode {
		hn = &html.Node{Type: html.DocumentNode}
	}
	for _, a := range n.Attributes() {
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	for _, c := range n.children {
		hn.AppendChild(exportHTML(c))
	}
	return hn
}
