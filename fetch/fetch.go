// Package fetch retrieves page text over HTTP for the parsers.
//
// Fetch failures are always reported as *TransportError, never as parse errors, so callers can tell "the page could
// not be retrieved" apart from "the page did not have the expected shape".
package fetch

import (
	"context"
	"errors"
	"fmt"
)

// A Fetcher returns the full text of the page at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

var ErrTransport = errors.New("transport error")

// TransportError is returned for any failure to retrieve a page. StatusCode is set when the server answered with a
// non-success status, and is zero otherwise.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
