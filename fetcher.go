package sitekb

import (
	"context"
	"fmt"
)

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch performs a single blocking retrieval and returns the response
	// body. A failed retrieval is reported as a *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetchErrorKind classifies a fetch failure.
type FetchErrorKind string

// Fetch failure kinds.
const (
	// FetchErrNetwork indicates a transport-level failure: DNS, connection,
	// timeout, or a context cancellation surfaced by the transport.
	FetchErrNetwork FetchErrorKind = "network"

	// FetchErrHTTPStatus indicates the server responded with a non-2xx status.
	FetchErrHTTPStatus FetchErrorKind = "http-status"
)

// FetchError describes a failed page retrieval.
type FetchError struct {
	URL        string
	Kind       FetchErrorKind
	StatusCode int   // set when Kind is FetchErrHTTPStatus
	Err        error // set when Kind is FetchErrNetwork
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Kind == FetchErrHTTPStatus {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}
