// Package folioview serves the portfolio dashboard and prints the benchmark
// comparison in the terminal.
package folioview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/raykavin/folioview/pkg/api"
	"github.com/raykavin/folioview/pkg/config"
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger"
	"github.com/raykavin/folioview/pkg/server"
	"github.com/raykavin/folioview/pkg/table"
	"github.com/schollz/progressbar/v3"
)

// DefaultLog is the default logger instance
var DefaultLog logger.Logger

// Folioview wires the backend client, the dashboard server and the terminal
// comparison together
type Folioview struct {
	config   *config.AppConfig
	client   *api.Client
	logger   logger.Logger
	progress io.Writer
	level    *logger.Level

	httpClient *http.Client
}

// New creates an instance from the loaded configuration
func New(cfg *config.AppConfig, options ...Option) *Folioview {
	f := &Folioview{
		config:   cfg,
		logger:   DefaultLog,
		progress: os.Stderr,
	}

	for _, option := range options {
		option(f)
	}

	if f.level != nil {
		f.logger.SetLevel(*f.level)
	}

	var clientOptions []api.Option
	if f.httpClient != nil {
		clientOptions = append(clientOptions, api.WithHTTPClient(f.httpClient))
	}
	f.client = api.New(cfg.API.BaseURL, f.logger, clientOptions...)

	return f
}

// Client returns the backend client.
func (f *Folioview) Client() *api.Client {
	return f.client
}

// WaitBackend blocks until the backend answers or api.wait_timeout
// elapses, showing a spinner meanwhile. A zero timeout skips the wait.
func (f *Folioview) WaitBackend(ctx context.Context) error {
	timeout := f.config.API.WaitTimeout
	if timeout == 0 {
		return nil
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(f.progress),
		progressbar.OptionSetDescription("waiting for "+f.config.API.BaseURL),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer func() {
		if err := bar.Finish(); err != nil {
			f.logger.Warnf("finish progressbar fail: %v", err)
		}
	}()

	return f.client.WaitReady(ctx, timeout, func(attempt int, wait time.Duration) {
		bar.Describe(fmt.Sprintf("waiting for %s (attempt %d, next in %s)", f.config.API.BaseURL, attempt, wait))
		if err := bar.Add(1); err != nil {
			f.logger.Warnf("update progressbar fail: %v", err)
		}
	})
}

// Serve waits for the backend, preloads both flows and serves the
// dashboard until ctx is done.
func (f *Folioview) Serve(ctx context.Context) error {
	if err := f.WaitBackend(ctx); err != nil {
		return err
	}

	options := []server.Option{
		server.WithPort(f.config.Server.Port),
		server.WithSettings(f.config.Charts),
	}
	if f.config.Server.Debug {
		options = append(options, server.WithDebug())
	}

	srv, err := server.New(f.client, f.logger, options...)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			f.logger.WithError(err).Warn("failed to release charts")
		}
	}()

	if err := srv.Controller().Mount(ctx, f.config.Charts.Frequency); err != nil {
		f.logger.WithError(err).Warn("initial load failed, the page shows the error")
	}

	return srv.Start(ctx)
}

// Compare fetches the benchmark comparison and writes the yearly table
func (f *Folioview) Compare(ctx context.Context, w io.Writer) error {
	cmp, err := f.client.Benchmarks(ctx)
	if err != nil {
		return err
	}
	if cmp.AnnualReturns == nil {
		return fmt.Errorf("%w: no annual returns", core.ErrDecode)
	}

	table.Text(w, cmp.AnnualReturns)
	return nil
}
