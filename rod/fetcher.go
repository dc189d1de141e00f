// Package rod implements a sitekb.Fetcher that renders pages in headless
// Chrome, for sites whose content is assembled by JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitekb"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the maximum time allowed to render a single page.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements sitekb.Fetcher at compile time.
var _ sitekb.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mgr     *browserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page rendering timeout.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets the number of pages rendered before the underlying
// browser is replaced. Defaults to DefaultRecycleAfter.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.mgr.recycleAfter = n
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	mgr, err := newBrowserManager(DefaultRecycleAfter)
	if err != nil {
		return nil, err
	}

	f := &Fetcher{mgr: mgr, timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", sitekb.Errorf(sitekb.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.mgr.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", &sitekb.FetchError{URL: url, Kind: sitekb.FetchErrNetwork, Err: err}
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", &sitekb.FetchError{URL: url, Kind: sitekb.FetchErrNetwork, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return "", &sitekb.FetchError{URL: url, Kind: sitekb.FetchErrNetwork, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", &sitekb.FetchError{URL: url, Kind: sitekb.FetchErrNetwork, Err: err}
	}

	f.mgr.pageRendered()

	return html, nil
}

// Close releases browser resources. Safe to call multiple times.
func (f *Fetcher) Close() error {
	f.closed.Store(true)
	return f.mgr.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.mgr.launcherPID()
}
