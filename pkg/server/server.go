package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/domkit/pkg/build"
	"github.com/vango-dev/domkit/pkg/site"
	"github.com/vango-dev/domkit/pkg/telemetry"
)

// LiveReloadPath is the websocket route pages connect to.
const LiveReloadPath = "/livereload"

// Server serves rendered specs for preview.
type Server struct {
	config   Config
	site     *site.Site
	router   chi.Router
	hub      *ReloadHub
	requests *prometheus.CounterVec
	logger   *slog.Logger
}

// New creates a Server for the specs in dir. Build metrics, tracing and
// diagnostic logging are added to the site's build options.
func New(dir string, config Config, opts ...site.Option) *Server {
	config.applyDefaults()

	collector := telemetry.NewCollector(telemetry.WithRegistry(config.Registry))
	opts = append(opts,
		site.WithLogger(config.Logger),
		site.WithBuildOptions(
			build.WithMiddleware(collector.Middleware(), telemetry.Tracing()),
			build.WithReporter(collector.Reporter(build.NewLogReporter(config.Logger))),
		),
	)

	s := &Server{
		config: config,
		site:   site.New(dir, opts...),
		hub:    NewReloadHub(),
		logger: config.Logger,
		requests: promauto.With(config.Registry).NewCounterVec(prometheus.CounterOpts{
			Namespace: "domkit",
			Name:      "http_requests_total",
			Help:      "Total number of preview server requests",
		}, []string{"route", "code"}),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleIndex)
	r.Get("/specs", s.handleSpecs)
	r.Get("/render/{name}", s.handleRenderPage)
	r.Post("/render", s.handleRenderFragment)

	if p := s.config.MetricsPath; p != "" && p != "-" {
		r.Method(http.MethodGet, p, promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}
	if s.config.LiveReload {
		r.Get(LiveReloadPath, s.hub.ServeHTTP)
	}
	return r
}

// instrument logs each request and counts it by route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Site returns the site being served.
func (s *Server) Site() *site.Site {
	return s.site
}

// Hub returns the live reload hub.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Run serves until ctx is done, then shuts down gracefully. With live
// reload enabled the spec directory is polled in the background.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.LiveReload {
		go s.watch(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address, "specs", s.site.Dir())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	s.hub.Close()
	shutdownCtx, done := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer done()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown error", "error", err)
		return err
	}
	s.logger.Info("server shutdown complete")
	return nil
}

func (s *Server) watch(ctx context.Context) {
	w := NewWatcher(s.site.Dir(), s.config.PollInterval, isSpecFile)
	_ = w.Run(ctx, func(paths []string) {
		s.logger.Info("specs changed", "files", paths, "clients", s.hub.ClientCount())
		s.hub.Broadcast()
	})
}

func isSpecFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	lower := strings.ToLower(name)
	for _, ext := range site.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
