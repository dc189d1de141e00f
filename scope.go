package sitekb

import (
	"net/url"
	"strings"
)

// DefaultIgnorePatterns lists URL substrings excluded from crawling:
// auth and edit paths, CDN cache-busting markers, query strings, fragments,
// and non-document file extensions.
func DefaultIgnorePatterns() []string {
	return []string{
		"/login", "/signup", "/edit", "cdn-cgi", "?", "#", ".pdf", ".zip", ".jpg", ".png",
	}
}

// Scope decides whether a candidate URL is in scope for a crawl run.
// A URL is in scope when its host exactly matches the base host (no
// subdomain generalization) and it contains none of the ignore substrings.
// The zero value admits nothing; construct with NewScope.
type Scope struct {
	host   string
	ignore []string
}

// NewScope builds a Scope from the run's base URL. The ignore list is
// matched as plain substrings against the full candidate URL. A nil ignore
// list means DefaultIgnorePatterns.
func NewScope(baseURL string, ignore []string) (*Scope, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "base URL %q has no host", baseURL)
	}
	if ignore == nil {
		ignore = DefaultIgnorePatterns()
	}
	return &Scope{host: u.Host, ignore: ignore}, nil
}

// Host returns the base host the scope is bound to.
func (s *Scope) Host() string {
	return s.host
}

// Allow reports whether rawURL is in scope. Unparseable input is treated as
// out of scope, not as an error.
func (s *Scope) Allow(rawURL string) bool {
	for _, pattern := range s.ignore {
		if pattern != "" && strings.Contains(rawURL, pattern) {
			return false
		}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == s.host
}
