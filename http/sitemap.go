package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitekb"
)

// Ensure SitemapService implements sitekb.SitemapService.
var _ sitekb.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from a site's sitemap.xml via HTTP.
//
// Discovery is strictly best-effort: a missing, unreachable, or malformed
// sitemap yields an empty list and a nil error so the caller can fall back
// to link-following. Only context cancellation is surfaced as an error.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches sitemap.xml resolved relative to baseURL and returns
// the declared page URLs in site order. Sitemap index files are followed
// recursively; each referenced sitemap is fetched at most once.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return []string{}, nil
	}
	sitemapURL := base.ResolveReference(&url.URL{Path: "sitemap.xml"})

	seen := make(map[string]bool)
	urls := s.processSitemap(ctx, sitemapURL.String(), seen)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if urls == nil {
		return []string{}, nil
	}
	return urls, nil
}

// processSitemap fetches and parses one sitemap document, handling both
// <urlset> and <sitemapindex> roots. Any failure contributes no URLs.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) []string {
	if ctx.Err() != nil || seen[sitemapURL] {
		return nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil
	}

	root := doc.Root()
	if root == nil {
		return nil
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			childURL := strings.TrimSpace(loc.Text())
			if childURL == "" {
				continue
			}
			all = append(all, s.processSitemap(ctx, childURL, seen)...)
		}
		return all
	}

	return parseURLSet(root)
}

// parseURLSet extracts URLs from a <urlset> element in declared order.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &sitekb.FetchError{URL: targetURL, Kind: sitekb.FetchErrHTTPStatus, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
