package site

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/dom"
	"github.com/vango-dev/domkit/pkg/render"
)

func writeSpecs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func code(err error) string {
	var de *domerrors.DomError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

const tableSpec = `
tag: table
spec:
  id: scores
  tableData:
    - {name: ann, score: 3}
`

func TestSpecs(t *testing.T) {
	dir := writeSpecs(t, map[string]string{
		"b.yaml":      tableSpec,
		"a.json":      `{"tag": "p"}`,
		"a.yml":       "tag: p\n",
		"notes.txt":   "ignored",
		".hidden.yml": "tag: p\n",
	})
	names, err := New(dir).Specs()
	if err != nil {
		t.Fatalf("Specs() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("Specs() = %v, want [a b]", names)
	}

	missing, err := New(filepath.Join(dir, "nope")).Specs()
	if err != nil || missing != nil {
		t.Errorf("Specs(missing dir) = %v, %v", missing, err)
	}
}

func TestPath(t *testing.T) {
	dir := writeSpecs(t, map[string]string{"a.yml": "tag: p\n", "a.json": `{"tag": "p"}`})
	s := New(dir)

	p, err := s.Path("a")
	if err != nil || filepath.Base(p) != "a.yml" {
		t.Errorf("Path(a) = %q, %v; want a.yml first", p, err)
	}

	for _, name := range []string{"", "missing", "../a", ".a", `x\y`} {
		if _, err := s.Path(name); code(err) != "E140" {
			t.Errorf("Path(%q) = %v, want E140", name, err)
		}
	}
}

func TestRenderPage(t *testing.T) {
	dir := writeSpecs(t, map[string]string{"scores.yaml": tableSpec})
	s := New(dir, WithPage(render.PageData{StyleSheets: []string{"/t.css"}}))

	var buf bytes.Buffer
	if err := s.RenderPage(context.Background(), &buf, "scores"); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"<title>scores</title>",
		`<link rel="stylesheet" href="/t.css">`,
		`<table id="scores"><thead><tr><th>name</th><th>score</th></tr></thead><tbody><tr><td>ann</td><td>3</td></tr></tbody></table>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestBuildAppendsDetachedRoot(t *testing.T) {
	s := New(t.TempDir())
	doc, err := s.Parse([]byte("tag: section\nspec:\n  children:\n    - [div, {id: host}]\n"))
	if err != nil {
		t.Fatal(err)
	}
	page, res, err := s.Build(context.Background(), doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if res.Root().ParentNode() != page.Body() {
		t.Error("root not appended to body")
	}
	if page.GetElementByID("host") == nil {
		t.Error("child not reachable by id")
	}
}

func TestBuildErrors(t *testing.T) {
	s := New(t.TempDir(), WithBuildOptions(build.WithStrictTableData(true)))

	tests := []struct {
		name string
		src  string
		code string
	}{
		{"missing parent", "tag: p\nspec:\n  parent: nowhere\n", "E101"},
		{"strict tables", "tag: table\nspec:\n  tableData: []\n  df: {cols: [a], vals: []}\n", "E103"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := s.Parse([]byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if _, _, err := s.Build(context.Background(), doc); code(err) != tt.code {
				t.Errorf("Build() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestUnknownHandlersStillBind(t *testing.T) {
	var hits int
	s := New(t.TempDir(),
		WithHandlers(map[string]dom.Listener{"known": func(*dom.Event) { hits++ }}),
		WithRenderer(render.RendererConfig{EventMarkers: true}),
	)
	doc, err := s.Parse([]byte("tag: button\nspec:\n  events:\n    - [click, known]\n    - [focus, unknown]\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	if err := s.RenderFragment(context.Background(), &buf, doc); err != nil {
		t.Fatalf("RenderFragment() error = %v", err)
	}
	if got := buf.String(); got != `<button data-on-click="true" data-on-focus="true"></button>` {
		t.Errorf("fragment = %q", got)
	}

	_, res, _ := s.Build(context.Background(), doc)
	res.Root().DispatchEvent(&dom.Event{Type: "click"})
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}

func TestRenderAll(t *testing.T) {
	dir := writeSpecs(t, map[string]string{
		"a.yaml": "tag: p\nspec:\n  innerHTML: A\n",
		"b.yaml": "tag: p\nspec:\n  parent: gone\n",
		"c.yaml": "tag: p\n",
	})
	s := New(dir)

	pages, err := s.RenderAll(context.Background(), "a", "c")
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if len(pages) != 2 || pages[0].Name != "a" || !bytes.Contains(pages[0].HTML, []byte("<p>A</p>")) {
		t.Errorf("pages = %+v", pages)
	}

	pages, err = s.RenderAll(context.Background())
	if code(err) != "E101" {
		t.Errorf("RenderAll() = %v, want E101", err)
	}
	if len(pages) != 1 {
		t.Errorf("pages before failure = %d, want 1", len(pages))
	}
}
