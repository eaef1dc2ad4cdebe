package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/domkit/pkg/dom"
)

func el(doc *dom.Document, tag string, children ...*dom.Node) *dom.Node {
	n := doc.CreateElement(tag)
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func TestRenderText(t *testing.T) {
	doc := dom.NewDocument()
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Hello, World!", "Hello, World!"},
		{"markup", "<script>alert('x')</script>", "&lt;script&gt;alert('x')&lt;/script&gt;"},
		{"ampersand", "a & b", "a &amp; b"},
		{"nbsp", "a\u00a0b", "a&nbsp;b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(doc.CreateTextNode(tt.text))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderElementAttributeOrder(t *testing.T) {
	doc := dom.NewDocument()
	div := el(doc, "div", el(doc, "h1", doc.CreateTextNode("Title")))
	div.SetAttribute("id", "main")
	div.ClassList().Add("card", "wide")
	div.SetAttribute("data-row", "3")
	div.Style().Set("color", "red")
	div.SetAttribute("title", `say "hi"`)

	got, err := NewRenderer(RendererConfig{}).RenderToString(div)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div id="main" class="card wide" data-row="3" style="color: red;" title="say &quot;hi&quot;"><h1>Title</h1></div>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderVoidAndBooleanAttributes(t *testing.T) {
	doc := dom.NewDocument()
	renderer := NewRenderer(RendererConfig{})

	input := doc.CreateElement("input")
	input.SetAttribute("type", "checkbox")
	input.SetAttribute("checked", "true")
	input.SetAttribute("required", "false")
	input.SetAttribute("disabled", "disabled")

	got, err := renderer.RenderToString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<input type="checkbox" checked disabled>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	br, _ := renderer.RenderToString(doc.CreateElement("br"))
	if br != "<br>" {
		t.Errorf("br = %q, want <br>", br)
	}
}

func TestRenderSkipsEmptyClassAndStyle(t *testing.T) {
	doc := dom.NewDocument()
	p := doc.CreateElement("p")
	p.ClassList().Add("x")
	p.Style().Set("color", "red")
	p.ClassList().Remove("x")
	p.Style().Remove("color")

	got, _ := NewRenderer(RendererConfig{}).RenderToString(p)
	if got != "<p></p>" {
		t.Errorf("got %q, want <p></p>", got)
	}
}

func TestRenderRawTextAndMarkup(t *testing.T) {
	doc := dom.NewDocument()
	renderer := NewRenderer(RendererConfig{})

	script := doc.CreateElement("script")
	script.SetTextContent("if (a < b && c) {}")
	got, _ := renderer.RenderToString(script)
	if got != "<script>if (a < b && c) {}</script>" {
		t.Errorf("script = %q", got)
	}

	td := doc.CreateElement("td")
	td.SetInnerHTML(`<b>bold</b> &amp; plain`)
	got, _ = renderer.RenderToString(td)
	if got != "<td><b>bold</b> &amp; plain</td>" {
		t.Errorf("td = %q", got)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	doc := dom.NewDocument()
	btn := doc.CreateElement("button")
	btn.AddEventListener("click", func(*dom.Event) {})
	btn.AddEventListener("click", func(*dom.Event) {})
	btn.AddEventListener("mouseover", func(*dom.Event) {})

	plain, _ := NewRenderer(RendererConfig{}).RenderToString(btn)
	if plain != "<button></button>" {
		t.Errorf("without markers = %q", plain)
	}

	marked, _ := NewRenderer(RendererConfig{EventMarkers: true}).RenderToString(btn)
	if want := `<button data-on-click="true" data-on-mouseover="true"></button>`; marked != want {
		t.Errorf("with markers = %q, want %q", marked, want)
	}
}

func TestRenderSkipsUnsafeEventMarkers(t *testing.T) {
	doc := dom.NewDocument()
	btn := doc.CreateElement("button")
	btn.AddEventListener("click onmouseover=alert(1)", func(*dom.Event) {})
	btn.AddEventListener("click", func(*dom.Event) {})

	got, _ := NewRenderer(RendererConfig{EventMarkers: true}).RenderToString(btn)
	if want := `<button data-on-click="true"></button>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderPretty(t *testing.T) {
	doc := dom.NewDocument()
	ul := el(doc, "ul",
		el(doc, "li", doc.CreateTextNode("one ")),
		el(doc, "li", el(doc, "span", doc.CreateTextNode("two"))),
	)

	got, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(ul)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul>\n  <li>one </li>\n  <li><span>two</span></li>\n</ul>\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	tab, _ := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"}).RenderToString(el(doc, "div", el(doc, "p")))
	if tab != "<div>\n\t<p></p>\n</div>\n" {
		t.Errorf("tab indent = %q", tab)
	}
}

func TestRenderChildren(t *testing.T) {
	doc := dom.NewDocument()
	doc.Body().AppendChild(el(doc, "p", doc.CreateTextNode("a")))
	doc.Body().AppendChild(el(doc, "p", doc.CreateTextNode("b")))

	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderChildren(&buf, doc.Body()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "<p>a</p><p>b</p>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	got, err := NewRenderer(RendererConfig{}).RenderToString(nil)
	if err != nil || got != "" {
		t.Errorf("RenderToString(nil) = %q, %v", got, err)
	}
}

func TestRenderPage(t *testing.T) {
	doc := dom.NewDocument()
	doc.Body().AppendChild(el(doc, "main", doc.CreateTextNode("content")))

	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:        doc.Body(),
		Title:       "Q&A",
		Meta:        []MetaTag{{Name: "description", Content: "a page"}},
		StyleSheets: []string{"/app.css"},
		Scripts:     []ScriptTag{{Src: "/app.js", Defer: true}},
		LiveReload:  "/livereload",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n",
		"<title>Q&amp;A</title>",
		`<meta name="description" content="a page">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<body>\n<main>content</main>\n",
		`<script src="/app.js" defer></script>`,
		`location.host+"/livereload"`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<body>\n<body>") {
		t.Error("body element rendered twice")
	}
}

func TestRenderPageDoctypeAndFragment(t *testing.T) {
	doc := dom.NewDocument()
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:    el(doc, "section"),
		Doctype: "html PUBLIC",
		Lang:    "de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html PUBLIC>\n<html lang=\"de\">") {
		t.Errorf("prefix = %q", html[:40])
	}
	if !strings.Contains(html, "<body>\n<section></section>\n") {
		t.Errorf("fragment body missing:\n%s", html)
	}
	if strings.Contains(html, "WebSocket") {
		t.Error("live reload script written without a path")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}
	sr := &StreamingRenderer{
		Renderer: NewRenderer(RendererConfig{}),
		flusher:  fw,
		w:        fw,
	}

	doc := dom.NewDocument()
	if err := sr.RenderPage(PageData{Body: el(doc, "div"), Title: "Flush"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.FlushCount != 3 {
		t.Errorf("flushes = %d, want 3", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "<title>Flush</title>") {
		t.Errorf("output missing title: %s", buf.String())
	}
}

func TestNewStreamingRendererUsesResponseFlusher(t *testing.T) {
	w := httptest.NewRecorder()
	sr := NewStreamingRenderer(w, RendererConfig{})

	doc := dom.NewDocument()
	if err := sr.RenderPage(PageData{Body: el(doc, "p", doc.CreateTextNode("streamed"))}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Flushed {
		t.Error("recorder was not flushed")
	}
	if !strings.Contains(w.Body.String(), "<p>streamed</p>") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`a"b`, "a&quot;b"},
		{"a&b", "a&amp;b"},
		{"line\nbreak\ttab", "line&#10;break&#9;tab"},
		{"<x>", "&lt;x&gt;"},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
