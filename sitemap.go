package sitekb

import "context"

// SitemapService discovers page URLs from a site's declared sitemap.
type SitemapService interface {
	// DiscoverURLs fetches sitemap.xml relative to baseURL and returns the
	// declared page URLs in site order. A missing, unreachable, or malformed
	// sitemap yields an empty list and a nil error: the caller falls back to
	// link-following discovery. Only context cancellation is returned as an
	// error.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
