package recnet

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default endpoints and limits
const (
	DefaultAPIBaseURL      = "https://api.rec.net/api/players"
	DefaultSiteBaseURL     = "https://rec.net"
	DefaultPrimaryTimeout  = 15 * time.Second
	DefaultFallbackTimeout = 20 * time.Second

	// maxBodyBytes caps how much of either response is read
	maxBodyBytes = 4 << 20
)

// Header values sent to rec.net. The user page rejects requests that do not
// look like they come from a browser.
const (
	BrowserUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"
	BrowserAccept         = "text/html,application/json;q=0.9,*/*;q=0.8"
	BrowserAcceptLanguage = "en-US,en;q=0.9,ar;q=0.8"
	BrowserReferer        = "https://rec.net/"
)

// Errors returned by Resolve. Anything else is a transport failure.
var (
	ErrEmptyUsername = errors.New("username is empty")
	ErrMalformedBody = errors.New("malformed response body")
)

// Config holds the resolver endpoints and timeouts
type Config struct {
	APIBaseURL      string
	SiteBaseURL     string
	PrimaryTimeout  time.Duration
	FallbackTimeout time.Duration

	// Transport overrides the per-request transport. When nil every
	// resolution clones http.DefaultTransport and closes it afterwards.
	Transport http.RoundTripper
}

// withDefaults fills zero values with the package defaults
func (c Config) withDefaults() Config {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.SiteBaseURL == "" {
		c.SiteBaseURL = DefaultSiteBaseURL
	}
	if c.PrimaryTimeout <= 0 {
		c.PrimaryTimeout = DefaultPrimaryTimeout
	}
	if c.FallbackTimeout <= 0 {
		c.FallbackTimeout = DefaultFallbackTimeout
	}
	c.APIBaseURL = strings.TrimSuffix(c.APIBaseURL, "/")
	c.SiteBaseURL = strings.TrimSuffix(c.SiteBaseURL, "/")
	return c
}

// ProfileURL returns the primary API URL for username
func (c Config) ProfileURL(username string) string {
	return c.withDefaults().APIBaseURL + "/profiles/v1/" + url.PathEscape(username)
}

// UserPageURL returns the public user page URL for username
func (c Config) UserPageURL(username string) string {
	return c.withDefaults().SiteBaseURL + "/user/" + url.PathEscape(username)
}

// session is an HTTP client that lives for exactly one resolution
type session struct {
	client  *http.Client
	release func()
}

func (c Config) openSession() *session {
	if c.Transport != nil {
		return &session{
			client:  &http.Client{Transport: c.Transport},
			release: func() {},
		}
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	return &session{
		client:  &http.Client{Transport: t},
		release: t.CloseIdleConnections,
	}
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", BrowserUserAgent)
	req.Header.Set("Accept", BrowserAccept)
	req.Header.Set("Accept-Language", BrowserAcceptLanguage)
	req.Header.Set("Referer", BrowserReferer)
}
