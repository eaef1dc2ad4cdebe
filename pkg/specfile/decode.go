package specfile

import (
	"gopkg.in/yaml.v3"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/dom"
)

func (d *decoder) spec(n *yaml.Node) (build.Spec, error) {
	n = resolve(n)
	if isNull(n) {
		return nil, nil
	}
	if err := d.visit(n); err != nil {
		return nil, err
	}
	if n.Kind != yaml.MappingNode {
		return nil, d.invalid(n, "spec must be a mapping")
	}

	spec := make(build.Spec, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolve(n.Content[i+1])
		entry, err := d.entry(k.Value, v)
		if err != nil {
			return nil, err
		}
		spec = append(spec, entry)
	}
	return spec, nil
}

func (d *decoder) entry(key string, v *yaml.Node) (build.Entry, error) {
	switch key {
	case "style":
		return d.style(v)
	case "class":
		s, err := d.str(v, key)
		if err != nil {
			return nil, err
		}
		return build.Class(s), nil
	case "events":
		return d.events(v)
	case "parent":
		s, err := d.str(v, key)
		if err != nil {
			return nil, err
		}
		return build.ParentID(s), nil
	case "datasets":
		return d.datasets(v)
	case "innerHTML":
		s, err := d.str(v, key)
		if err != nil {
			return nil, err
		}
		return build.InnerHTML(s), nil
	case "disabled":
		var b bool
		if v.Kind != yaml.ScalarNode || v.Decode(&b) != nil {
			return nil, d.invalid(v, "disabled must be a boolean")
		}
		return build.Disabled(b), nil
	case "children":
		return d.children(v)
	case "tableData":
		return d.tableData(v)
	case "df":
		return d.frame(v)
	}

	value, err := d.value(v)
	if err != nil {
		return nil, err
	}
	if build.IsAttrKey(key) {
		return build.Attr(key, value), nil
	}
	return build.Unknown(key, value), nil
}

func (d *decoder) style(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.MappingNode {
		return nil, d.invalid(v, "style must be a mapping of property to value")
	}
	props := make([]dom.Property, 0, len(v.Content)/2)
	for i := 0; i+1 < len(v.Content); i += 2 {
		val := resolve(v.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return nil, d.invalid(val, "style value for %q must be a scalar", v.Content[i].Value)
		}
		props = append(props, dom.Property{Name: v.Content[i].Value, Value: val.Value})
	}
	return build.Style(props...), nil
}

func (d *decoder) events(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, d.invalid(v, "events must be a list of [event, handler] pairs")
	}
	bindings := make([]build.EventBinding, 0, len(v.Content))
	for _, item := range v.Content {
		item = resolve(item)
		if item.Kind != yaml.SequenceNode || len(item.Content) != 2 {
			return nil, d.invalid(item, "event binding must be an [event, handler] pair")
		}
		event, handler := resolve(item.Content[0]), resolve(item.Content[1])
		if event.Kind != yaml.ScalarNode || handler.Kind != yaml.ScalarNode {
			return nil, d.invalid(item, "event binding must hold two strings")
		}
		l, err := d.handler(handler)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, build.On(event.Value, l))
	}
	return build.Events(bindings...), nil
}

func (d *decoder) handler(n *yaml.Node) (dom.Listener, error) {
	if l, ok := d.handlers[n.Value]; ok {
		return l, nil
	}
	if d.fallback != nil {
		if l := d.fallback(n.Value); l != nil {
			return l, nil
		}
	}
	return nil, d.locate(domerrors.New("E111").WithDetailf("no handler named %q", n.Value), n)
}

func (d *decoder) datasets(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.MappingNode {
		return nil, d.invalid(v, "datasets must be a mapping")
	}
	values := make([]build.Dataset, 0, len(v.Content)/2)
	for i := 0; i+1 < len(v.Content); i += 2 {
		val, err := d.value(v.Content[i+1])
		if err != nil {
			return nil, err
		}
		values = append(values, build.Data(v.Content[i].Value, val))
	}
	return build.Datasets(values...), nil
}

func (d *decoder) children(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, d.invalid(v, "children must be a list of [tag, spec] pairs")
	}
	children := make([]build.ChildSpec, 0, len(v.Content))
	for _, item := range v.Content {
		item = resolve(item)
		if err := d.visit(item); err != nil {
			return nil, err
		}
		if item.Kind != yaml.SequenceNode || len(item.Content) < 1 || len(item.Content) > 2 {
			return nil, d.invalid(item, "child must be a [tag, spec] pair")
		}
		tag := resolve(item.Content[0])
		if tag.Kind != yaml.ScalarNode || tag.Value == "" {
			return nil, d.invalid(tag, "child tag must be a non-empty string")
		}
		var spec build.Spec
		if len(item.Content) == 2 {
			var err error
			if spec, err = d.spec(item.Content[1]); err != nil {
				return nil, err
			}
		}
		children = append(children, build.Child(tag.Value, spec))
	}
	return build.Children(children...), nil
}

func (d *decoder) tableData(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, d.invalid(v, "tableData must be a list of records")
	}
	records := make([]build.Record, 0, len(v.Content))
	for _, item := range v.Content {
		item = resolve(item)
		if err := d.visit(item); err != nil {
			return nil, err
		}
		if item.Kind != yaml.MappingNode {
			return nil, d.locate(domerrors.New("E104").WithDetail("each tableData record must be a mapping"), item)
		}
		rec, err := d.record(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return build.TableData(records...), nil
}

func (d *decoder) frame(v *yaml.Node) (build.Entry, error) {
	if v.Kind != yaml.MappingNode {
		return nil, d.locate(domerrors.New("E104").WithDetail("df must be a mapping with cols and vals"), v)
	}
	var frame build.Frame
	for i := 0; i+1 < len(v.Content); i += 2 {
		k, val := v.Content[i], resolve(v.Content[i+1])
		switch k.Value {
		case "cols":
			if val.Kind != yaml.SequenceNode {
				return nil, d.locate(domerrors.New("E104").WithDetail("df.cols must be a list"), val)
			}
			for _, c := range val.Content {
				c = resolve(c)
				if c.Kind != yaml.ScalarNode {
					return nil, d.locate(domerrors.New("E104").WithDetail("df.cols entries must be strings"), c)
				}
				frame.Cols = append(frame.Cols, c.Value)
			}
		case "vals":
			if val.Kind != yaml.SequenceNode {
				return nil, d.locate(domerrors.New("E104").WithDetail("df.vals must be a list of rows"), val)
			}
			for _, row := range val.Content {
				row = resolve(row)
				if err := d.visit(row); err != nil {
					return nil, err
				}
				if row.Kind != yaml.SequenceNode {
					return nil, d.locate(domerrors.New("E104").WithDetail("each df.vals row must be a list"), row)
				}
				vec := make([]any, 0, len(row.Content))
				for _, cell := range row.Content {
					x, err := d.value(cell)
					if err != nil {
						return nil, err
					}
					vec = append(vec, x)
				}
				frame.Vals = append(frame.Vals, vec)
			}
		default:
			return nil, d.locate(domerrors.New("E104").WithDetailf("unknown df key %q", k.Value), k)
		}
	}
	return build.FrameEntry{Frame: frame}, nil
}

func (d *decoder) record(n *yaml.Node) (build.Record, error) {
	rec := make(build.Record, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		val, err := d.value(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		rec = append(rec, build.Field{Name: n.Content[i].Value, Value: val})
	}
	return rec, nil
}

// value converts a node into plain Go data: scalars decode to their
// resolved YAML type, mappings to ordered records, sequences to []any.
func (d *decoder) value(n *yaml.Node) (any, error) {
	n = resolve(n)
	if err := d.visit(n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, d.invalid(n, "%v", err)
		}
		return v, nil
	case yaml.MappingNode:
		return d.record(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return nil, d.invalid(n, "unsupported value")
}

func (d *decoder) str(n *yaml.Node, key string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", d.invalid(n, "%s must be a string", key)
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
