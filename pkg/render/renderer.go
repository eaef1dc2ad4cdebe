package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/domkit/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Elements whose children are all text
	// or inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventMarkers writes data-on-<event>="true" for each listened event.
	EventMarkers bool
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n and its subtree to a string.
func (r *Renderer) RenderToString(n *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *dom.Node) error {
	return r.renderNode(w, n, 0, r.config.Pretty)
}

// RenderChildren renders the children of n without n itself.
func (r *Renderer) RenderChildren(w io.Writer, n *dom.Node) error {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if err := r.renderNode(w, c, 0, r.config.Pretty); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, n *dom.Node, depth int, pretty bool) error {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case dom.ElementNode:
		return r.renderElement(w, n, depth, pretty)
	case dom.TextNode:
		return r.renderText(w, n, depth, pretty)
	case dom.DocumentNode:
		for _, c := range n.Children() {
			if err := r.renderNode(w, c, depth, pretty); err != nil {
				return err
			}
		}
		return nil
	case dom.RawNode:
		_, err := io.WriteString(w, n.Data())
		return err
	default:
		return fmt.Errorf("unknown node type: %s", n.Type())
	}
}

func (r *Renderer) renderElement(w io.Writer, n *dom.Node, depth int, pretty bool) error {
	tag := n.Tag()

	if pretty {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if pretty {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}

	if rawTextElements[tag] {
		if _, err := io.WriteString(w, n.TextContent()); err != nil {
			return err
		}
	} else {
		block := pretty && hasBlockChildren(n)
		if block {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for _, c := range n.Children() {
			if err := r.renderNode(w, c, depth+1, block); err != nil {
				return err
			}
		}
		if block {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func (r *Renderer) renderText(w io.Writer, n *dom.Node, depth int, pretty bool) error {
	text := n.Data()
	if !pretty {
		_, err := io.WriteString(w, escapeText(text))
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	r.writeIndent(w, depth)
	_, err := io.WriteString(w, escapeText(text)+"\n")
	return err
}

// renderAttributes writes attributes in insertion order. Empty class and
// style attributes are skipped.
func (r *Renderer) renderAttributes(w io.Writer, n *dom.Node) error {
	for _, a := range n.Attributes() {
		if (a.Name == "class" || a.Name == "style") && a.Value == "" {
			continue
		}
		if isBooleanAttr(a.Name) {
			if a.Value == "false" {
				continue
			}
			if _, err := io.WriteString(w, " "+a.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Name, escapeAttr(a.Value)); err != nil {
			return err
		}
	}

	if r.config.EventMarkers {
		for _, event := range n.EventTypes() {
			if !dom.ValidAttributeName("data-on-" + event) {
				continue
			}
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, escapeAttr(event)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

// hasBlockChildren reports whether n has a child element that is not
// inline.
func hasBlockChildren(n *dom.Node) bool {
	if isInlineElement(n.Tag()) {
		return false
	}
	for _, c := range n.Children() {
		if c.Type() == dom.ElementNode && !isInlineElement(c.Tag()) {
			return true
		}
	}
	return false
}
