package dom

import "strings"

// Property is a single style declaration.
type Property struct {
	Name  string
	Value string
}

// Style is the live, ordered style map of an element.
type Style struct {
	owner *Node
	props []Property
}

// Set sets a property, keeping its original position when it already
// exists. An empty value removes the property.
func (s *Style) Set(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if value == "" {
		s.Remove(name)
		return
	}
	s.owner.touchAttr("style")
	for i := range s.props {
		if s.props[i].Name == name {
			s.props[i].Value = value
			return
		}
	}
	s.props = append(s.props, Property{Name: name, Value: value})
}

// Get returns a property value.
func (s *Style) Get(name string) string {
	for _, p := range s.props {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Remove deletes a property.
func (s *Style) Remove(name string) {
	for i, p := range s.props {
		if p.Name == name {
			s.props = append(s.props[:i], s.props[i+1:]...)
			return
		}
	}
}

// Merge sets every property in order, overwriting existing values.
func (s *Style) Merge(props []Property) {
	for _, p := range props {
		s.Set(p.Name, p.Value)
	}
}

// Properties returns a copy of the declarations in order.
func (s *Style) Properties() []Property {
	return append([]Property(nil), s.props...)
}

// Len returns the number of declarations.
func (s *Style) Len() int { return len(s.props) }

// String serializes the style as a CSS declaration block.
func (s *Style) String() string {
	var b strings.Builder
	for i, p := range s.props {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteByte(';')
	}
	return b.String()
}

func (s *Style) reset(props []Property) {
	s.props = props
}

// parseStyle splits a declaration block into properties.
func parseStyle(text string) []Property {
	var props []Property
	for _, decl := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		props = append(props, Property{Name: name, Value: value})
	}
	return props
}
