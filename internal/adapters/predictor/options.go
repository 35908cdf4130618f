package predictor

import (
	"net/http"
	"strings"

	"github.com/okian/footrisk/pkg/logger"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the prediction service base URL. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u := strings.TrimRight(strings.TrimSpace(baseURL), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets the underlying HTTP client. Timeouts are whatever it carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHeaders adds headers sent with every request. They override Content-Type.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers.Set(k, v)
		}
	}
}
