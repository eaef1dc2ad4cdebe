package build

import "github.com/vango-dev/domkit/pkg/dom"

// Style merges the given properties onto the element's style.
func Style(props ...dom.Property) Entry {
	return StyleEntry{Props: props}
}

// StyleProps merges alternating property names and values onto the
// element's style.
func StyleProps(kv ...string) Entry {
	props := make([]dom.Property, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		props = append(props, dom.Property{Name: kv[i], Value: kv[i+1]})
	}
	return StyleEntry{Props: props}
}

// Class adds space-separated class tokens.
func Class(tokens string) Entry {
	return ClassEntry{Value: tokens}
}

// On binds a single listener.
func On(event string, l dom.Listener) EventBinding {
	return EventBinding{Event: event, Listener: l}
}

// Events registers listeners in order.
func Events(bindings ...EventBinding) Entry {
	return EventsEntry{Bindings: bindings}
}

// ParentID appends the element to the element with the given id.
func ParentID(id string) Entry {
	return ParentEntry{ID: id}
}

// ParentNode appends the element to n.
func ParentNode(n *dom.Node) Entry {
	return ParentEntry{Node: n}
}

// Data declares a single data-* attribute.
func Data(name string, value any) Dataset {
	return Dataset{Name: name, Value: value}
}

// Datasets sets data-* attributes in order.
func Datasets(values ...Dataset) Entry {
	return DatasetsEntry{Values: values}
}

// InnerHTML replaces the children with parsed markup.
func InnerHTML(markup string) Entry {
	return InnerHTMLEntry{Markup: markup}
}

// Attr sets a whitelisted attribute.
func Attr(name string, value any) Entry {
	return AttrEntry{Name: name, Value: value}
}

func ID(id string) Entry            { return Attr("id", id) }
func Src(src string) Entry          { return Attr("src", src) }
func Alt(alt string) Entry          { return Attr("alt", alt) }
func Name(name string) Entry        { return Attr("name", name) }
func Type(typ string) Entry         { return Attr("type", typ) }
func Href(href string) Entry        { return Attr("href", href) }
func Target(target string) Entry    { return Attr("target", target) }
func Value(value any) Entry         { return Attr("value", value) }
func Placeholder(text string) Entry { return Attr("placeholder", text) }
func Pattern(pattern string) Entry  { return Attr("pattern", pattern) }
func Min(v any) Entry               { return Attr("min", v) }
func Max(v any) Entry               { return Attr("max", v) }
func Step(v any) Entry              { return Attr("step", v) }
func Rows(n int) Entry              { return Attr("rows", n) }
func Draggable(v bool) Entry        { return Attr("draggable", v) }
func ContentEditable(v bool) Entry  { return Attr("contentEditable", v) }
func Required(v bool) Entry         { return Attr("required", v) }
func Checked(v bool) Entry          { return Attr("checked", v) }

// Disabled sets or removes the disabled attribute.
func Disabled(v bool) Entry {
	return DisabledEntry{Disabled: v}
}

// Child pairs a tag with its spec.
func Child(tag string, spec Spec) ChildSpec {
	return ChildSpec{Tag: tag, Spec: spec}
}

// Children builds and appends each child in order.
func Children(children ...ChildSpec) Entry {
	return ChildrenEntry{Children: children}
}

// TableData populates a table from records.
func TableData(records ...Record) Entry {
	return TableDataEntry{Records: records}
}

// DataFrame populates a table from columnar data.
func DataFrame(cols []string, vals [][]any) Entry {
	return FrameEntry{Frame: Frame{Cols: cols, Vals: vals}}
}

// Unknown carries a key the builder does not apply.
func Unknown(name string, value any) Entry {
	return UnknownEntry{Name: name, Value: value}
}
