package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/dom"
	"github.com/vango-dev/domkit/pkg/render"
)

const htmlContentType = "text/html; charset=utf-8"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := s.site.Specs()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := dom.NewDocument()
	items := make([]build.ChildSpec, 0, len(names))
	for _, name := range names {
		link := build.Child("a", build.Spec{
			build.Href("/render/" + url.PathEscape(name)),
			build.InnerHTML(html.EscapeString(name)),
		})
		items = append(items, build.Child("li", build.Spec{build.Children(link)}))
	}
	b := build.New(doc)
	if _, err := b.Build("h1", build.Spec{build.ParentNode(doc.Body()), build.InnerHTML("Specs")}); err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := b.Build("ul", build.Spec{build.ParentNode(doc.Body()), build.ID("specs"), build.Children(items...)}); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	render.NewRenderer(s.site.RendererConfig()).RenderPage(w, s.page(render.PageData{
		Title: "domkit specs",
		Body:  doc.Body(),
	}))
}

func (s *Server) handleSpecs(w http.ResponseWriter, r *http.Request) {
	names, err := s.site.Specs()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

func (s *Server) handleRenderPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.site.Page(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	sr := render.NewStreamingRenderer(w, s.site.RendererConfig())
	if err := sr.RenderPage(s.page(page)); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

func (s *Server) handleRenderFragment(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.site.Parse(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.site.RenderFragment(r.Context(), &buf, doc); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.Write(buf.Bytes())
}

// page adds the live reload channel when it is enabled.
func (s *Server) page(p render.PageData) render.PageData {
	if s.config.LiveReload {
		p.LiveReload = LiveReloadPath
	}
	return p
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Info("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	http.Error(w, err.Error(), status)
}

// statusFor maps coded errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	var de *domerrors.DomError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Code {
	case "E140":
		return http.StatusNotFound
	case "E110", "E111", "E112":
		return http.StatusBadRequest
	case "E101", "E102", "E103", "E104", "E105":
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
