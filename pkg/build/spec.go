package build

import "github.com/vango-dev/domkit/pkg/dom"

// Entry is one configuration key of a Spec. The set of entry types is
// closed; Build switches over all of them.
type Entry interface {
	// Key returns the configuration key the entry stands for.
	Key() string
	isEntry()
}

// Spec is an ordered element configuration. Entries are applied in slice
// order.
type Spec []Entry

// Lookup returns the last entry with the given key.
func (s Spec) Lookup(key string) (Entry, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != nil && s[i].Key() == key {
			return s[i], true
		}
	}
	return nil, false
}

// StyleEntry merges properties onto the element's style.
type StyleEntry struct{ Props []dom.Property }

// ClassEntry adds each space-separated token to the class list.
type ClassEntry struct{ Value string }

// EventBinding pairs an event name with its listener.
type EventBinding struct {
	Event    string
	Listener dom.Listener
}

// EventsEntry registers listeners in order.
type EventsEntry struct{ Bindings []EventBinding }

// ParentEntry appends the element to a parent resolved by id, or to Node
// when it is set.
type ParentEntry struct {
	ID   string
	Node *dom.Node
}

// Dataset is a single data-* attribute.
type Dataset struct {
	Name  string
	Value any
}

// DatasetsEntry sets one data-<name> attribute per dataset.
type DatasetsEntry struct{ Values []Dataset }

// InnerHTMLEntry replaces the element's children with parsed markup.
type InnerHTMLEntry struct{ Markup string }

// AttrEntry sets a whitelisted attribute verbatim. Names outside the
// whitelist are treated as unrecognized keys.
type AttrEntry struct {
	Name  string
	Value any
}

// DisabledEntry sets or removes the disabled attribute.
type DisabledEntry struct{ Disabled bool }

// ChildSpec is a tag and the spec to build it with.
type ChildSpec struct {
	Tag  string
	Spec Spec
}

// ChildrenEntry builds and appends each child in order.
type ChildrenEntry struct{ Children []ChildSpec }

// TableDataEntry populates a table from a record list.
type TableDataEntry struct{ Records []Record }

// FrameEntry populates a table from a columnar frame.
type FrameEntry struct{ Frame Frame }

// UnknownEntry carries a key the builder does not recognize.
type UnknownEntry struct {
	Name  string
	Value any
}

func (StyleEntry) Key() string     { return "style" }
func (ClassEntry) Key() string     { return "class" }
func (EventsEntry) Key() string    { return "events" }
func (ParentEntry) Key() string    { return "parent" }
func (DatasetsEntry) Key() string  { return "datasets" }
func (InnerHTMLEntry) Key() string { return "innerHTML" }
func (e AttrEntry) Key() string    { return e.Name }
func (DisabledEntry) Key() string  { return "disabled" }
func (ChildrenEntry) Key() string  { return "children" }
func (TableDataEntry) Key() string { return "tableData" }
func (FrameEntry) Key() string     { return "df" }
func (e UnknownEntry) Key() string { return e.Name }

func (StyleEntry) isEntry()     {}
func (ClassEntry) isEntry()     {}
func (EventsEntry) isEntry()    {}
func (ParentEntry) isEntry()    {}
func (DatasetsEntry) isEntry()  {}
func (InnerHTMLEntry) isEntry() {}
func (AttrEntry) isEntry()      {}
func (DisabledEntry) isEntry()  {}
func (ChildrenEntry) isEntry()  {}
func (TableDataEntry) isEntry() {}
func (FrameEntry) isEntry()     {}
func (UnknownEntry) isEntry()   {}

// attrKeys is the whitelist of attributes set verbatim.
var attrKeys = map[string]bool{
	"id":              true,
	"src":             true,
	"alt":             true,
	"name":            true,
	"type":            true,
	"href":            true,
	"target":          true,
	"text":            true,
	"value":           true,
	"placeholder":     true,
	"height":          true,
	"width":           true,
	"draggable":       true,
	"contentEditable": true,
	"min":             true,
	"max":             true,
	"step":            true,
	"rows":            true,
	"required":        true,
	"checked":         true,
	"onkeypress":      true,
	"pattern":         true,
}

// IsAttrKey reports whether key is a whitelisted attribute key.
func IsAttrKey(key string) bool {
	return attrKeys[key]
}
