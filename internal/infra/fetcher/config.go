// Package fetcher downloads article pages for content extraction.
package fetcher

import (
	"fmt"
	"time"
)

// BrowserUserAgent is the default User-Agent for article-page requests.
// News sites routinely answer bot identities with a consent wall or an
// outright 403, so page fetches present a plain desktop browser. Feed
// polling identifies as a bot instead.
const BrowserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/100 Safari/537.36"

// Config holds the configuration for article-page fetching.
//
// Security settings:
//   - MaxBodySize: prevents memory exhaustion from oversized responses
//   - MaxRedirects: prevents infinite redirect loops
//   - DenyPrivateIPs: re-validates redirect targets against private ranges
//   - Timeout: prevents resource starvation from slow servers
type Config struct {
	// UserAgent is sent with every page request.
	// Default: BrowserUserAgent
	UserAgent string

	// Timeout is the maximum duration of a single page fetch, covering
	// redirects and the body read.
	// Default: 15s
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Responses exceeding this limit are rejected during reading, not
	// based on the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether redirect targets resolving to
	// private, loopback, or link-local addresses are rejected. The
	// initial URL is validated at discovery time, before it reaches the
	// fetcher; this setting closes the redirect hole that validation
	// cannot see.
	// Default: true
	DenyPrivateIPs bool
}

// DefaultConfig returns the default page-fetch configuration.
func DefaultConfig() Config {
	return Config{
		UserAgent:      BrowserUserAgent,
		Timeout:        15 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// Validate checks if the configuration values are valid and safe.
//
// Validation rules:
//   - UserAgent: non-empty
//   - Timeout: > 0
//   - MaxBodySize: 1KB-100MB
//   - MaxRedirects: 0-10
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	return nil
}
