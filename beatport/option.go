package beatport

import (
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://api.beatport.com/v4"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "beatport-mcp/1.0"
)

// Option configures a Client
type Option func(c *Client)

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout sets the per request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTransport sets the base round tripper wrapped by the bearer transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base = transport
	}
}
