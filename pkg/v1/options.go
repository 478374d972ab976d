package v1

import "net/http"

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL     string
	sessionPath string
	httpClient  *http.Client
}

// WithBaseURL overrides the API base URL resolution.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithSessionPath sets the file the session token is persisted in.
func WithSessionPath(path string) Option {
	return func(c *clientConfig) {
		c.sessionPath = path
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}
