// Package crawl provides crawl orchestration: sitemap-first page discovery
// with a link-following fallback, bounded-concurrency fetching, content
// extraction, optional translation, and document assembly.
package crawl

import (
	"context"
	"encoding/hex"
	"net/url"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitekb"
	"golang.org/x/sync/errgroup"
)

// Defaults for crawler configuration.
const (
	// DefaultConcurrency is the number of concurrent fetch workers.
	DefaultConcurrency = 10

	// DefaultMaxPages caps the number of URLs fetched in one run. The
	// visited set alone cannot bound a site that mints unique in-scope URLs,
	// so the cap acts as a safety valve against runaway crawls.
	DefaultMaxPages = 1000

	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01

	// drainTimeout bounds how long the coordinator waits for in-flight
	// workers after the frontier is exhausted or the context is canceled.
	drainTimeout = 5 * time.Second
)

// Crawler orchestrates the crawling of a website into documents.
//
// All dependencies are injected; the Crawler itself holds only read-only
// configuration, so one instance may serve concurrent Crawl calls.
type Crawler struct {
	Sitemaps   sitekb.SitemapService
	Fetcher    sitekb.Fetcher
	Extractor  sitekb.Extractor
	Links      sitekb.LinkExtractor
	Translator sitekb.Translator    // optional; required when requests set TranslateTo
	Limiter    sitekb.DomainLimiter // optional outbound request cap

	// IgnorePatterns overrides sitekb.DefaultIgnorePatterns when non-nil.
	IgnorePatterns []string

	// Concurrency is the fetch worker count. Defaults to DefaultConcurrency.
	// Pin to 1 for a deterministic, reference-order crawl.
	Concurrency int

	// MaxPages caps fetches per run. Defaults to DefaultMaxPages.
	MaxPages int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position   int
	url        string
	content    string
	language   string
	discovered []string
	err        error
}

// Crawl executes a crawl request and returns the assembled documents in
// traversal order.
//
// Discovery prefers the site's sitemap: when sitemap discovery for the first
// seed's base yields URLs, they become the complete frontier and no
// link-following occurs. When it yields nothing, the seed list becomes the
// frontier and links are followed if the request asks for recursion.
//
// Individual page failures are reported through progress and skipped; they
// never abort the crawl. Zero documents is a valid outcome, not an error.
// Canceling the context stops new fetches promptly and returns the documents
// collected so far.
func (c *Crawler) Crawl(ctx context.Context, req sitekb.CrawlRequest, progress ProgressFunc) ([]*sitekb.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The first seed determines the crawl's base domain.
	scope, err := sitekb.NewScope(req.SeedURLs[0], c.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	urls, err := c.Sitemaps.DiscoverURLs(ctx, req.SeedURLs[0])
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	followLinks := false
	if len(urls) > 0 {
		// Sitemap is authoritative: it already names every page.
		for _, u := range urls {
			frontier.Push(u)
		}
	} else {
		for _, u := range req.SeedURLs {
			frontier.Push(u)
		}
		followLinks = req.Recursive
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: frontier.Len()})
	}

	docs := c.walk(ctx, frontier, scope, followLinks, req.TranslateTo, progress)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(docs), Total: len(docs)})
	}

	return docs, nil
}

// walk drains the frontier through a bounded worker pool.
//
// The coordinator owns the frontier: it pops URLs (applying scope filtering
// at dequeue time), dispatches them to workers, and folds results back in.
// Workers share no mutable state beyond the channels.
func (c *Crawler) walk(
	ctx context.Context,
	frontier *Frontier,
	scope *sitekb.Scope,
	followLinks bool,
	translateTo string,
	progress ProgressFunc,
) []*sitekb.Document {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	type task struct {
		position int
		url      string
	}

	workCh := make(chan task, concurrency)
	resultCh := make(chan crawlResult)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for t := range workCh {
				result := c.process(gctx, t.url, followLinks, translateTo)
				result.position = t.position
				select {
				case resultCh <- result:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	// Close the result channel once all workers have drained the work queue.
	go func() {
		_ = g.Wait()
		close(resultCh)
	}()

	// nextInScope pops until it finds a URL that passes the scope filter.
	// Discovered links are enqueued unfiltered, so filtering happens here,
	// at dequeue time.
	nextInScope := func() (string, bool) {
		for {
			u, ok := frontier.Pop()
			if !ok {
				return "", false
			}
			if !scope.Allow(u) {
				continue
			}
			return u, true
		}
	}

	var results []crawlResult
	completed := 0

	handleResult := func(result crawlResult) {
		completed++
		for _, link := range result.discovered {
			frontier.Push(link)
		}
		if result.err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					URL:       result.url,
					Error:     result.err,
				})
			}
			return
		}
		results = append(results, result)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				URL:       result.url,
			})
		}
	}

	// Coordinator loop.
	dispatched := 0
	pending := 0
	var next *task

	if u, ok := nextInScope(); ok {
		next = &task{position: 0, url: u}
	}

coordinatorLoop:
	for {
		if next == nil && pending == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if next != nil && dispatched < maxPages {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				dispatched++
				pending++
				next = nil
			case result := <-resultCh:
				pending--
				handleResult(result)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case result, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				handleResult(result)
			}
		}

		if next == nil && dispatched < maxPages {
			if u, ok := nextInScope(); ok {
				next = &task{position: dispatched, url: u}
			}
		}
	}

	// Stop workers and fold in whatever is still in flight.
	close(workCh)
	deadline := time.After(drainTimeout)
drainLoop:
	for pending > 0 {
		select {
		case result, ok := <-resultCh:
			if !ok {
				break drainLoop
			}
			pending--
			handleResult(result)
		case <-deadline:
			break drainLoop
		}
	}

	// Dispatch order is the traversal order; restore it across workers.
	sort.Slice(results, func(i, j int) bool { return results[i].position < results[j].position })

	docs := make([]*sitekb.Document, 0, len(results))
	for i, result := range results {
		docs = append(docs, &sitekb.Document{
			SourceURL:   result.url,
			Content:     result.content,
			ContentHash: ContentHash(result.content),
			Language:    result.language,
			Position:    i,
		})
	}
	return docs
}

// process fetches a URL once and derives everything from that single body:
// the extracted content and, when link-following is on, the outbound links.
func (c *Crawler) process(ctx context.Context, pageURL string, followLinks bool, translateTo string) crawlResult {
	result := crawlResult{url: pageURL}

	if c.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.err = err
		return result
	}

	// Harvest links before extraction so a failing extractor still
	// contributes discoveries. A link extraction failure just means this
	// page contributes no new links.
	if followLinks && c.Links != nil {
		if links, err := c.Links.ExtractLinks(html, pageURL); err == nil {
			result.discovered = links
		}
	}

	content, err := c.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	if translateTo != "" && c.Translator != nil {
		// Translation failures degrade to the original text, which keeps
		// its original (unknown) language.
		if translated, err := c.Translator.Translate(ctx, content, translateTo); err == nil {
			content = translated
			result.language = translateTo
		}
	}

	result.content = content
	return result
}

// ContentHash computes an xxHash digest of content as a hex string.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)
}
