package dom

import "strings"

// Document owns a presentation tree.
type Document struct {
	root *Node
	html *Node
	head *Node
	body *Node
}

// NewDocument creates a document with empty head and body elements.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Node{typ: DocumentNode, doc: d}
	d.html = d.root.AppendChild(newElement(d, "html"))
	d.head = d.html.AppendChild(newElement(d, "head"))
	d.body = d.html.AppendChild(newElement(d, "body"))
	return d
}

// Root returns the #document node.
func (d *Document) Root() *Node { return d.root }

// Head returns the head element.
func (d *Document) Head() *Node { return d.head }

// Body returns the body element.
func (d *Document) Body() *Node { return d.body }

// CreateElement creates a detached element. Tags are lower-cased.
func (d *Document) CreateElement(tag string) *Node {
	return newElement(d, tag)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{typ: TextNode, data: text, doc: d}
}

// GetElementByID returns the first element attached to the document whose
// id attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	d.root.Walk(func(n *Node) bool {
		if n.typ == ElementNode && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns attached elements with the given tag in
// document order.
func (d *Document) GetElementsByTagName(tag string) []*Node {
	return d.root.ElementsByTagName(tag)
}

// ElementsByTagName returns descendant elements of n (including n) with
// the given tag in document order.
func (n *Node) ElementsByTagName(tag string) []*Node {
	tag = strings.ToLower(tag)
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.typ == ElementNode && c.tag == tag {
			out = append(out, c)
		}
		return true
	})
	return out
}
