package preview

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/render"
)

// PageFunc produces the document to serve. It is called per request
// so edits picked up by the watcher are reflected on reload.
type PageFunc func() *dom.Node

// Server is the development preview server.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	page    PageFunc
	reload  *ReloadServer
	watcher *Watcher
	metrics *Metrics

	httpServer *http.Server
}

// Options configures the preview server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives request and lifecycle logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Page produces the document to serve. Defaults to the showcase
	// page.
	Page PageFunc
}

// NewServer creates a preview server.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	page := opts.Page
	if page == nil {
		title := cfg.Preview.Title
		page = func() *dom.Node { return ShowcasePage(title) }
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		page:   page,
		reload: NewReloadServer(),
	}
	if cfg.Preview.Metrics {
		s.metrics = NewMetrics(nil)
	}
	s.watcher = NewWatcher(cfg.Preview.Watch, 0, s.onFileChange)
	return s
}

// Start begins serving and blocks until the context is cancelled or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.watcher.Start()
	defer s.watcher.Stop()

	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("preview server listening",
		"addr", s.cfg.Addr(),
		"metrics", s.cfg.Preview.Metrics,
		"watched", len(s.cfg.Preview.Watch))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// routes builds the chi router.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/ws", s.reload.HandleWebSocket)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// handlePage renders the page function's document.
func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	renderer := render.New(render.Config{
		Pretty: s.cfg.Render.Pretty,
		Indent: s.cfg.Render.Indent,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<!DOCTYPE html>\n"))
	if err := renderer.RenderToWriter(w, s.page()); err != nil {
		s.logger.Error("render failed", "err", err)
		return
	}

	elapsed := time.Since(start)
	s.metrics.ObserveRender(elapsed)
	s.logger.Debug("page rendered", "path", req.URL.Path, "elapsed", elapsed)
}

// onFileChange notifies connected browsers of a change.
func (s *Server) onFileChange(path string) {
	s.logger.Info("change detected", "file", path, "clients", s.reload.ClientCount())
	s.reload.NotifyReload(path)
	s.metrics.ObserveReload()
}
