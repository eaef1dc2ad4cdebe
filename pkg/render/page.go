package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/domkit/pkg/dom"
)

// DefaultDoctype is written when PageData.Doctype is empty.
const DefaultDoctype = "html"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the page content. A body element contributes only its
	// children.
	Body *dom.Node

	// Title is the page title
	Title string

	// Doctype is written as <!DOCTYPE ...>. Defaults to "html".
	Doctype string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Scripts are written at the end of the body.
	Scripts []ScriptTag

	// LiveReload is the websocket path of a live reload channel. When set
	// the page reloads itself on every "reload" message.
	LiveReload string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Module bool
	Defer  bool
	Inline string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.writePage(w, page, func() {})
}

// writePage writes the document and calls flush after the head and after
// the body content.
func (r *Renderer) writePage(w io.Writer, page PageData, flush func()) error {
	doctype := page.Doctype
	if doctype == "" {
		doctype = DefaultDoctype
	}
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE %s>\n<html lang=\"%s\">\n", doctype, escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	flush()

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.renderBody(w, page.Body); err != nil {
		return err
	}
	flush()

	for _, script := range page.Scripts {
		if err := r.renderScriptTag(w, script); err != nil {
			return err
		}
	}
	if page.LiveReload != "" {
		if err := r.renderLiveReload(w, page.LiveReload); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
		return err
	}
	flush()
	return nil
}

func (r *Renderer) renderBody(w io.Writer, body *dom.Node) error {
	if body == nil {
		return nil
	}
	if body.Type() == dom.ElementNode && body.Tag() == "body" {
		if err := r.RenderChildren(w, body); err != nil {
			return err
		}
	} else if err := r.RenderToWriter(w, body); err != nil {
		return err
	}
	if !r.config.Pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n"+
		`  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeText(page.Title)); err != nil {
			return err
		}
	}
	for _, meta := range page.Meta {
		if _, err := fmt.Fprintf(w, `  <meta name="%s" content="%s">`+"\n", escapeAttr(meta.Name), escapeAttr(meta.Content)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

func (r *Renderer) renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "<script"); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Module {
		if _, err := io.WriteString(w, ` type="module"`); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, ">%s</script>\n", script.Inline)
	return err
}

// liveReloadScript opens the reload channel. It does not reconnect.
const liveReloadScript = `<script>(function(){var p=location.protocol==="https:"?"wss://":"ws://";` +
	`var ws=new WebSocket(p+location.host+%s);` +
	`ws.onmessage=function(e){if(e.data==="reload"){location.reload();}};})();</script>` + "\n"

func (r *Renderer) renderLiveReload(w io.Writer, path string) error {
	quoted, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("failed to encode live reload path: %w", err)
	}
	_, err = fmt.Fprintf(w, liveReloadScript, quoted)
	return err
}
