package specfile

import (
	"os"

	"gopkg.in/yaml.v3"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/dom"
)

// DefaultTag is used when a document does not name a tag.
const DefaultTag = "div"

// Handlers maps handler names used in events entries to listeners.
type Handlers map[string]dom.Listener

// Document is a decoded spec document.
type Document struct {
	Tag  string
	Spec build.Spec
	Path string
}

// Option configures decoding.
type Option func(*decoder)

// WithHandlers registers named event handlers.
func WithHandlers(h Handlers) Option {
	return func(d *decoder) {
		for name, l := range h {
			d.handlers[name] = l
		}
	}
}

// WithHandlerFallback supplies listeners for handler names that are not
// registered. Without a fallback, unknown names fail decoding.
func WithHandlerFallback(fn func(name string) dom.Listener) Option {
	return func(d *decoder) {
		d.fallback = fn
	}
}

// Aliases let a small document describe a very large value. Decoding
// visits at most minBudget plus maxExpansion nodes per source node.
const (
	minBudget    = 1000
	maxExpansion = 10
)

type decoder struct {
	path     string
	handlers Handlers
	fallback func(name string) dom.Listener

	budget  int
	visited int
}

func newDecoder(path string, opts []Option) *decoder {
	d := &decoder{path: path, handlers: make(Handlers)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse decodes a spec document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return newDecoder("", opts).document(data)
}

// ParseFile reads and decodes a spec document. Errors carry the file
// location of the offending node.
func ParseFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domerrors.New("E110").WithDetail(err.Error()).Wrap(err)
	}
	doc, err := newDecoder(path, opts).document(data)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// DecodeSpec decodes a single spec mapping node.
func DecodeSpec(node *yaml.Node, opts ...Option) (build.Spec, error) {
	d := newDecoder("", opts)
	d.limit(node)
	return d.spec(node)
}

func (d *decoder) document(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, domerrors.New("E110").WithDetail(err.Error()).Wrap(err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, domerrors.New("E110").WithDetail("empty document")
	}
	d.limit(&root)

	top := resolve(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, d.invalid(top, "document must be a mapping with tag and spec keys")
	}

	doc := &Document{Tag: DefaultTag}
	for i := 0; i+1 < len(top.Content); i += 2 {
		k, v := top.Content[i], resolve(top.Content[i+1])
		switch k.Value {
		case "tag":
			if v.Kind != yaml.ScalarNode || v.Value == "" {
				return nil, d.invalid(v, "tag must be a non-empty string")
			}
			doc.Tag = v.Value
		case "spec":
			spec, err := d.spec(v)
			if err != nil {
				return nil, err
			}
			doc.Spec = spec
		default:
			return nil, d.invalid(k, "unknown document key %q", k.Value)
		}
	}
	return doc, nil
}

// invalid returns an E112 error located at n.
func (d *decoder) invalid(n *yaml.Node, format string, args ...any) error {
	return d.locate(domerrors.New("E112").WithDetailf(format, args...), n)
}

func (d *decoder) locate(err *domerrors.DomError, n *yaml.Node) error {
	if n == nil {
		return err
	}
	return err.WithLocation(d.path, n.Line, n.Column)
}

// limit sets the visit budget from the size of the source tree.
func (d *decoder) limit(root *yaml.Node) {
	d.budget = minBudget + maxExpansion*countNodes(root)
	d.visited = 0
}

// visit charges one node against the budget.
func (d *decoder) visit(n *yaml.Node) error {
	d.visited++
	if d.visited > d.budget {
		return d.invalid(n, "document expands past %d nodes through aliases", d.budget)
	}
	return nil
}

// countNodes counts the nodes of a tree without following aliases.
func countNodes(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Content {
		count += countNodes(c)
	}
	return count
}

// resolve follows alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
