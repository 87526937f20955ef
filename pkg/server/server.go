// Package server serves the dashboard page and runs the controller's load
// flows on behalf of the browser.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/dashboard"
	"github.com/raykavin/folioview/pkg/logger"
	"github.com/raykavin/folioview/pkg/plot"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

const shutdownTimeout = 5 * time.Second

// Server renders the dashboard document and exposes the load flows over HTTP
type Server struct {
	port          int
	debug         bool
	settings      core.Settings
	layout        dashboard.Layout
	doc           *dashboard.Document
	surface       *plot.Surface
	controller    *dashboard.Controller
	indexHTML     *template.Template
	scriptContent string
	log           logger.Logger
}

// Option defines a function type for configuring a Server instance
type Option func(*Server)

// WithPort sets the HTTP server port
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithDebug enables debug mode (disables minification)
func WithDebug() Option {
	return func(s *Server) {
		s.debug = true
	}
}

// WithSettings sets the default frequency and the chart settings
func WithSettings(settings core.Settings) Option {
	return func(s *Server) {
		s.settings = settings
	}
}

// WithLayout overrides the element ids of the page
func WithLayout(layout dashboard.Layout) Option {
	return func(s *Server) {
		s.layout = layout
	}
}

// New creates a server loading its data from fetcher.
func New(fetcher dashboard.Fetcher, log logger.Logger, options ...Option) (*Server, error) {
	s := &Server{
		port:     8080,
		settings: core.DefaultSettings(),
		layout:   dashboard.DefaultLayout(),
		doc:      dashboard.NewDocument(),
		log:      log,
	}

	for _, option := range options {
		option(s)
	}

	s.layout.Declare(s.doc)
	page, err := dashboard.Resolve(s.doc, s.layout)
	if err != nil {
		return nil, err
	}

	s.surface, err = plot.NewSurface()
	if err != nil {
		return nil, err
	}

	s.controller = dashboard.NewController(page, fetcher, s.surface, log,
		dashboard.WithChartSettings(s.settings.Chart))

	s.indexHTML, err = template.ParseFS(staticFiles, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	script, err := staticFiles.ReadFile("assets/dashboard.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard.js: %w", err)
	}

	transpiled := api.Transform(string(script), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2017,
		MinifySyntax:      !s.debug,
		MinifyIdentifiers: !s.debug,
		MinifyWhitespace:  !s.debug,
	})

	if len(transpiled.Errors) > 0 {
		return nil, fmt.Errorf("dashboard script failed with: %v", transpiled.Errors)
	}

	s.scriptContent = string(transpiled.Code)

	return s, nil
}

// Controller returns the controller driving the page.
func (s *Server) Controller() *dashboard.Controller {
	return s.controller
}

// Handler returns the routes of the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/assets/dashboard.js", s.handleScript)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/evolution", s.handleEvolution)
	mux.HandleFunc("/api/benchmarks", s.handleBenchmarks)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/", s.handleIndex)

	return mux
}

// Start serves the dashboard until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Dashboard available at http://localhost:%d", s.port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close destroys every chart and releases the surface.
func (s *Server) Close() error {
	return errors.Join(s.controller.Close(), s.surface.Close())
}
