package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/vango-dev/domkit/pkg/dom"
)

// Surface is the part of the presentation surface the builder needs
// besides node mutation. *dom.Document implements it.
type Surface interface {
	CreateElement(tag string) *dom.Node
	GetElementByID(id string) *dom.Node
}

// Result is the outcome of a build: NodeResult or TableHandles.
type Result interface {
	// Root returns the element created for the requested tag.
	Root() *dom.Node
	isResult()
}

// NodeResult is returned for every tag except table.
type NodeResult struct {
	Node *dom.Node
}

// Root implements Result.
func (r NodeResult) Root() *dom.Node { return r.Node }
func (NodeResult) isResult()         {}

// TableHandles is returned for table tags: the table and its thead and
// tbody sections.
type TableHandles struct {
	Table *dom.Node
	Head  *dom.Node
	Body  *dom.Node
}

// Root implements Result.
func (t TableHandles) Root() *dom.Node { return t.Table }
func (TableHandles) isResult()         {}

// IsTableTag reports whether tag denotes a tabular container.
func IsTableTag(tag string) bool {
	return strings.EqualFold(tag, "table")
}

// Option configures a Builder.
type Option func(*Builder)

// WithReporter sets the diagnostics reporter. The default discards.
func WithReporter(r Reporter) Option {
	return func(b *Builder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithStrictTableData rejects specs carrying both tableData and df instead
// of populating the table twice.
func WithStrictTableData(strict bool) Option {
	return func(b *Builder) {
		b.strictTables = strict
	}
}

// WithMiddleware appends build middleware.
func WithMiddleware(mw ...Middleware) Option {
	return func(b *Builder) {
		b.middleware = append(b.middleware, mw...)
	}
}

// Builder materializes specs on a Surface. A Builder holds no per-build
// state; concurrent builds are only safe on distinct surfaces.
type Builder struct {
	surface      Surface
	reporter     Reporter
	strictTables bool
	middleware   []Middleware
}

// New creates a Builder for surface.
func New(surface Surface, opts ...Option) *Builder {
	b := &Builder{
		surface:  surface,
		reporter: Discard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Use appends build middleware.
func (b *Builder) Use(mw ...Middleware) {
	b.middleware = append(b.middleware, mw...)
}

// Build creates an element for tag and applies spec to it.
func (b *Builder) Build(tag string, spec Spec) (Result, error) {
	return b.BuildContext(context.Background(), tag, spec)
}

// BuildContext is Build with a context for middleware. Middleware wraps
// the top-level build only; children are built inside it.
func (b *Builder) BuildContext(ctx context.Context, tag string, spec Spec) (Result, error) {
	h := BuildFunc(func(_ context.Context, tag string, spec Spec) (Result, error) {
		return b.build(tag, spec)
	})
	for i := len(b.middleware) - 1; i >= 0; i-- {
		h = b.middleware[i](h)
	}
	return h(ctx, tag, spec)
}

// BuildTable builds a table and returns its handles.
func (b *Builder) BuildTable(spec Spec) (TableHandles, error) {
	res, err := b.Build("table", spec)
	if err != nil {
		return TableHandles{}, err
	}
	handles, ok := res.(TableHandles)
	if !ok {
		return TableHandles{}, fmt.Errorf("build: table build returned %T", res)
	}
	return handles, nil
}

// BuildElement builds tag and returns the created element regardless of
// the result shape.
func (b *Builder) BuildElement(tag string, spec Spec) (*dom.Node, error) {
	res, err := b.Build(tag, spec)
	if err != nil {
		return nil, err
	}
	return res.Root(), nil
}

func (b *Builder) build(tag string, spec Spec) (Result, error) {
	isTable := IsTableTag(tag)
	records, frame := tableSources(spec)
	if isTable && b.strictTables && records != nil && frame != nil {
		return nil, conflictingTableData()
	}

	el := b.surface.CreateElement(tag)
	for _, entry := range spec {
		if err := b.apply(el, tag, entry); err != nil {
			return nil, err
		}
	}

	if !isTable {
		return NodeResult{Node: el}, nil
	}

	head := el.AppendChild(b.surface.CreateElement("thead"))
	body := el.AppendChild(b.surface.CreateElement("tbody"))
	if records != nil {
		b.populateRecords(head, body, records.Records)
	}
	if frame != nil {
		b.populateFrame(head, body, frame.Frame)
	}
	return TableHandles{Table: el, Head: head, Body: body}, nil
}

func (b *Builder) apply(el *dom.Node, tag string, entry Entry) error {
	switch e := entry.(type) {
	case nil:
	case StyleEntry:
		el.Style().Merge(e.Props)
	case ClassEntry:
		el.ClassList().Add(strings.Split(e.Value, " ")...)
	case EventsEntry:
		for _, bnd := range e.Bindings {
			el.AddEventListener(bnd.Event, bnd.Listener)
		}
	case ParentEntry:
		target := e.Node
		if target == nil {
			target = b.surface.GetElementByID(e.ID)
			if target == nil {
				return lookupFailure(tag, e.ID)
			}
		}
		if target.AppendChild(el) == nil {
			return hierarchyRequest(tag)
		}
	case DatasetsEntry:
		for _, d := range e.Values {
			if el.SetAttribute("data-"+d.Name, formatScalar(d.Value)) != nil {
				b.report(tag, "data-"+d.Name)
			}
		}
	case InnerHTMLEntry:
		el.SetInnerHTML(e.Markup)
	case AttrEntry:
		if !IsAttrKey(e.Name) {
			b.report(tag, e.Name)
			return nil
		}
		if el.SetAttribute(e.Name, formatScalar(e.Value)) != nil {
			b.report(tag, e.Name)
		}
	case DisabledEntry:
		if e.Disabled {
			el.SetAttribute("disabled", "disabled")
		} else {
			el.RemoveAttribute("disabled")
		}
	case ChildrenEntry:
		for _, c := range e.Children {
			res, err := b.build(c.Tag, c.Spec)
			if err != nil {
				return err
			}
			if el.AppendChild(res.Root()) == nil {
				return hierarchyRequest(c.Tag)
			}
		}
	case TableDataEntry, FrameEntry:
		// Consumed by the table pass.
	case UnknownEntry:
		if e.Name == "tableData" || e.Name == "df" {
			return nil
		}
		b.report(tag, e.Name)
	default:
		b.report(tag, entry.Key())
	}
	return nil
}

// report forwards a diagnostic. A panicking reporter never aborts a build.
func (b *Builder) report(tag, key string) {
	defer func() { _ = recover() }()
	b.reporter.Report(Diagnostic{Tag: tag, Key: key})
}

// tableSources returns the last record list and the last frame in spec.
func tableSources(spec Spec) (*TableDataEntry, *FrameEntry) {
	var records *TableDataEntry
	var frame *FrameEntry
	for _, entry := range spec {
		switch e := entry.(type) {
		case TableDataEntry:
			records = &e
		case FrameEntry:
			frame = &e
		}
	}
	return records, frame
}
