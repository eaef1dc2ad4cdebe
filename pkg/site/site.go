package site

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/dom"
	"github.com/vango-dev/domkit/pkg/render"
	"github.com/vango-dev/domkit/pkg/specfile"
)

// Extensions are the spec file extensions a Site recognizes, in lookup
// order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Option configures a Site.
type Option func(*Site)

// WithHandlers registers named event handlers for spec files. Names that
// are not registered still bind a no-op listener so they render as event
// markers.
func WithHandlers(h specfile.Handlers) Option {
	return func(s *Site) {
		for name, l := range h {
			s.handlers[name] = l
		}
	}
}

// WithBuildOptions appends builder options used for every build.
func WithBuildOptions(opts ...build.Option) Option {
	return func(s *Site) {
		s.buildOpts = append(s.buildOpts, opts...)
	}
}

// WithRenderer sets the renderer configuration.
func WithRenderer(config render.RendererConfig) Option {
	return func(s *Site) {
		s.renderConfig = config
	}
}

// WithPage sets the page template. Body and Title are filled per spec;
// an empty template title falls back to the spec name.
func WithPage(page render.PageData) Option {
	return func(s *Site) {
		s.page = page
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// Site renders the spec files of one directory.
type Site struct {
	dir          string
	handlers     specfile.Handlers
	buildOpts    []build.Option
	renderConfig render.RendererConfig
	page         render.PageData
	logger       *slog.Logger
}

// New creates a Site for the spec files in dir.
func New(dir string, opts ...Option) *Site {
	s := &Site{
		dir:      dir,
		handlers: make(specfile.Handlers),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the spec directory.
func (s *Site) Dir() string { return s.dir }

// RendererConfig returns the renderer configuration.
func (s *Site) RendererConfig() render.RendererConfig { return s.renderConfig }

// Specs returns the sorted names of the spec files in the directory.
// A name present with several extensions is listed once.
func (s *Site) Specs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := specName(e.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the file holding the named spec.
func (s *Site) Path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", domerrors.New("E140").WithDetailf("invalid spec name %q", name)
	}
	for _, ext := range Extensions {
		p := filepath.Join(s.dir, name+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", domerrors.New("E140").WithDetailf("no spec named %q in %s", name, s.dir)
}

// Load decodes the named spec.
func (s *Site) Load(name string) (*specfile.Document, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return specfile.ParseFile(path, s.decodeOptions()...)
}

// Parse decodes a spec document from memory.
func (s *Site) Parse(data []byte) (*specfile.Document, error) {
	return specfile.Parse(data, s.decodeOptions()...)
}

func (s *Site) decodeOptions() []specfile.Option {
	return []specfile.Option{
		specfile.WithHandlers(s.handlers),
		specfile.WithHandlerFallback(func(name string) dom.Listener {
			return func(*dom.Event) {
				s.logger.Debug("unbound handler invoked", "handler", name)
			}
		}),
	}
}

// Build builds doc on a fresh document. A root that no parent entry
// attached is appended to the body.
func (s *Site) Build(ctx context.Context, doc *specfile.Document) (*dom.Document, build.Result, error) {
	page := dom.NewDocument()
	res, err := build.New(page, s.buildOpts...).BuildContext(ctx, doc.Tag, doc.Spec)
	if err != nil {
		return nil, nil, err
	}
	if root := res.Root(); root.ParentNode() == nil {
		page.Body().AppendChild(root)
	}
	return page, res, nil
}

// Page builds the named spec and returns the page to render.
func (s *Site) Page(ctx context.Context, name string) (render.PageData, error) {
	doc, err := s.Load(name)
	if err != nil {
		return render.PageData{}, err
	}
	built, _, err := s.Build(ctx, doc)
	if err != nil {
		return render.PageData{}, err
	}

	page := s.page
	page.Body = built.Body()
	if page.Title == "" {
		page.Title = name
	}
	return page, nil
}

// RenderPage writes the named spec as a complete HTML document.
func (s *Site) RenderPage(ctx context.Context, w io.Writer, name string) error {
	page, err := s.Page(ctx, name)
	if err != nil {
		return err
	}
	return render.NewRenderer(s.renderConfig).RenderPage(w, page)
}

// RenderFragment builds doc and writes only the built element.
func (s *Site) RenderFragment(ctx context.Context, w io.Writer, doc *specfile.Document) error {
	_, res, err := s.Build(ctx, doc)
	if err != nil {
		return err
	}
	return render.NewRenderer(s.renderConfig).RenderToWriter(w, res.Root())
}

// Rendered is one rendered page.
type Rendered struct {
	Name string
	HTML []byte
}

// RenderAll renders the named specs, or every spec when names is empty.
// Rendering stops at the first failure.
func (s *Site) RenderAll(ctx context.Context, names ...string) ([]Rendered, error) {
	if len(names) == 0 {
		var err error
		if names, err = s.Specs(); err != nil {
			return nil, err
		}
	}

	out := make([]Rendered, 0, len(names))
	for _, name := range names {
		var buf bytes.Buffer
		if err := s.RenderPage(ctx, &buf, name); err != nil {
			return out, err
		}
		out = append(out, Rendered{Name: name, HTML: buf.Bytes()})
		s.logger.Debug("rendered spec", "name", name, "bytes", buf.Len())
	}
	return out, nil
}

func specName(file string) (string, bool) {
	if strings.HasPrefix(file, ".") {
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(file))
	for _, known := range Extensions {
		if ext == known {
			return strings.TrimSuffix(file, filepath.Ext(file)), true
		}
	}
	return "", false
}
