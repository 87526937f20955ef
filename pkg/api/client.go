// Package api fetches evolution and benchmark data from the portfolio backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger"
)

const (
	EvolutionPath  = "/portfolio/api/evolution"
	BenchmarksPath = "/portfolio/api/benchmarks"
)

// Client talks to the backend API
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// Option defines a function type for configuring a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the backend rooted at baseURL
func New(baseURL string, log logger.Logger, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     log,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Evolution fetches the evolution series sampled at the given frequency.
// A payload carrying an error field is returned as *core.APIError.
func (c *Client) Evolution(ctx context.Context, frequency core.Frequency) (core.Evolution, error) {
	var evo core.Evolution
	query := url.Values{"frequency": {frequency.String()}}

	status, err := c.get(ctx, EvolutionPath, query, &evo)
	if err != nil {
		return evo, err
	}
	if err := evo.Err(); err != nil {
		return evo, err
	}
	return evo, statusError(EvolutionPath, status)
}

// Benchmarks fetches the rebased benchmark series and the yearly comparison.
func (c *Client) Benchmarks(ctx context.Context) (core.BenchmarkComparison, error) {
	var cmp core.BenchmarkComparison

	status, err := c.get(ctx, BenchmarksPath, nil, &cmp)
	if err != nil {
		return cmp, err
	}
	if err := cmp.Err(); err != nil {
		return cmp, err
	}
	return cmp, statusError(BenchmarksPath, status)
}

// get performs a GET and decodes the JSON body into data. The body is
// decoded whatever the status, so the backend's error field survives a
// non-2xx response.
func (c *Client) get(ctx context.Context, path string, query url.Values, data any) (int, error) {
	addr := c.baseURL + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: GET %s: %w", core.ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: reading %s: %w", core.ErrNetwork, path, err)
	}

	c.log.WithFields(map[string]any{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("backend request")

	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		if resp.StatusCode >= http.StatusMultipleChoices {
			return resp.StatusCode, statusError(path, resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("%w: %s: %w", core.ErrDecode, path, err)
	}

	return resp.StatusCode, nil
}

func statusError(path string, status int) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	return fmt.Errorf("%w: GET %s: %d %s", core.ErrNetwork, path, status, http.StatusText(status))
}

// setupBackoff creates the backoff used while waiting for the backend
func setupBackoff() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    200 * time.Millisecond,
		Max:    5 * time.Second,
		Factor: 2,
	}
}

// WaitReady polls the backend root until it answers with a non-5xx status
// or timeout elapses. onAttempt, when set, is called before every retry.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration, onAttempt func(attempt int, wait time.Duration)) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	b := setupBackoff()
	for {
		err := c.ping(ctx)
		if err == nil {
			return nil
		}

		wait := b.Duration()
		attempt := int(b.Attempt())
		if onAttempt != nil {
			onAttempt(attempt, wait)
		}
		c.log.WithError(err).Debugf("backend not ready, retrying in %s", wait)

		select {
		case <-ctx.Done():
			return fmt.Errorf("backend %s not ready: %w", c.baseURL, err)
		case <-time.After(wait):
		}
	}
}

func (c *Client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
