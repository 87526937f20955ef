package folioview

import (
	"io"
	"net/http"

	"github.com/raykavin/folioview/pkg/logger"
)

// Option is a functional option for configuring a Folioview instance
type Option func(*Folioview)

// WithLogger replaces DefaultLog
func WithLogger(log logger.Logger) Option {
	return func(f *Folioview) {
		f.logger = log
	}
}

// WithLogLevel sets the log level once every option has been applied,
// so it reaches the logger chosen by WithLogger whatever the order. The
// zerolog adapter applies levels globally.
func WithLogLevel(level logger.Level) Option {
	return func(f *Folioview) {
		f.level = &level
	}
}

// WithHTTPClient sets the client used to reach the backend
func WithHTTPClient(client *http.Client) Option {
	return func(f *Folioview) {
		f.httpClient = client
	}
}

// WithProgressOutput sets where the wait spinner is drawn, os.Stderr by default
func WithProgressOutput(w io.Writer) Option {
	return func(f *Folioview) {
		f.progress = w
	}
}
