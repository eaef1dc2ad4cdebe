package dom

import "strings"

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode  NodeType = iota + 1 // <div>, <table>, etc.
	TextNode                         // Plain text node
	DocumentNode                     // Document root
	RawNode                          // Markup that could not be parsed, kept verbatim
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case DocumentNode:
		return "Document"
	case RawNode:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute in insertion order.
type Attr struct {
	Name  string
	Value string
}

// Node is a unit of the presentation tree.
type Node struct {
	typ      NodeType
	tag      string
	data     string
	attrs    []Attr
	style    *Style
	classes  *ClassList
	handlers []binding
	parent   *Node
	children []*Node
	doc      *Document
}

func newElement(doc *Document, tag string) *Node {
	n := &Node{typ: ElementNode, tag: strings.ToLower(tag), doc: doc}
	n.style = &Style{owner: n}
	n.classes = &ClassList{owner: n}
	return n
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the lower-cased tag name of an element, or "" for other nodes.
func (n *Node) Tag() string { return n.tag }

// NodeName returns the structural type name of the node: the upper-cased
// tag for elements, "#text" for text and "#document" for the root.
func (n *Node) NodeName() string {
	switch n.typ {
	case ElementNode:
		return strings.ToUpper(n.tag)
	case TextNode:
		return "#text"
	case DocumentNode:
		return "#document"
	default:
		return "#raw"
	}
}

// Data returns the text of a text or raw node.
func (n *Node) Data() string { return n.data }

// Document returns the document that created the node.
func (n *Node) Document() *Document { return n.doc }

// ParentNode returns the parent of the node, or nil when detached or root.
func (n *Node) ParentNode() *Node { return n.parent }

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// AppendChild appends child as the last child of n, detaching it from its
// previous parent first. It returns child, or nil without changing the
// tree when child is n or one of its ancestors.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return nil
	}
	if child.Contains(n) {
		return nil
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// removeChildren detaches every child of n.
func (n *Node) removeChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.data
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.typ == TextNode {
			b.WriteString(c.data)
		}
		return true
	})
	return b.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(text string) {
	if n.typ == TextNode {
		n.data = text
		return
	}
	n.removeChildren()
	if text != "" {
		n.AppendChild(&Node{typ: TextNode, data: text, doc: n.doc})
	}
}
