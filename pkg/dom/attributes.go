package dom

import (
	"errors"
	"strings"
)

// ErrInvalidCharacter is returned by SetAttribute for names that cannot be
// written as an HTML attribute.
var ErrInvalidCharacter = errors.New("dom: invalid character in attribute name")

// ValidAttributeName reports whether name can be written as an HTML
// attribute name: non-empty, with no whitespace, quotes, '<', '>', '/',
// '=' or control characters.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r >= 0x7f && r <= 0x9f:
			return false
		case strings.ContainsRune(`"'<>/=`, r):
			return false
		}
	}
	return true
}

// SetAttribute sets the named attribute. Names are lower-cased. Setting
// "class" or "style" replaces the class list or style map. Invalid names
// leave the node unchanged and return ErrInvalidCharacter.
func (n *Node) SetAttribute(name, value string) error {
	if !ValidAttributeName(name) {
		return ErrInvalidCharacter
	}
	if n.typ != ElementNode {
		return nil
	}
	name = strings.ToLower(name)
	switch name {
	case "class":
		n.classes.reset(strings.Fields(value))
		n.touchAttr(name)
		return nil
	case "style":
		n.style.reset(parseStyle(value))
		n.touchAttr(name)
		return nil
	}
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return nil
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return nil
}

// GetAttribute returns the named attribute value.
func (n *Node) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.Name == name {
			return n.liveValue(a), true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// RemoveAttribute removes the named attribute if present.
func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			break
		}
	}
	switch name {
	case "class":
		n.classes.reset(nil)
	case "style":
		n.style.reset(nil)
	}
}

// Attributes returns the attributes in insertion order with live class and
// style values.
func (n *Node) Attributes() []Attr {
	out := make([]Attr, len(n.attrs))
	for i, a := range n.attrs {
		out[i] = Attr{Name: a.Name, Value: n.liveValue(a)}
	}
	return out
}

// ID returns the id attribute.
func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

// Style returns the live style map of an element.
func (n *Node) Style() *Style { return n.style }

// ClassList returns the live class list of an element.
func (n *Node) ClassList() *ClassList { return n.classes }

// touchAttr records the attribute slot so class and style keep their place
// in attribute order.
func (n *Node) touchAttr(name string) {
	for _, a := range n.attrs {
		if a.Name == name {
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name})
}

func (n *Node) liveValue(a Attr) string {
	switch a.Name {
	case "class":
		return n.classes.String()
	case "style":
		return n.style.String()
	}
	return a.Value
}
