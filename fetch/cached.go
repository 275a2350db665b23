package fetch

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Page is a stored copy of a fetched page.
type Page struct {
	URL       string    `json:"url"`
	Body      string    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// A Store keeps fetched pages by URL. Get returns ok=false for pages it does not have.
type Store interface {
	Get(url string) (page Page, ok bool, err error)
	Put(page Page) error
}

// Cached serves pages from Store when it has a copy younger than MaxAge, and otherwise fetches them with Fetcher and
// stores the result. A zero MaxAge means stored pages never expire; Refresh ignores stored pages entirely but still
// stores what it fetches.
//
// The store is best-effort: its failures are logged, and the page is fetched or returned regardless.
type Cached struct {
	Fetcher Fetcher
	Store   Store
	MaxAge  time.Duration
	Refresh bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *Cached) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Lookup returns the stored copy of url, if there is one, regardless of its age.
func (c *Cached) Lookup(url string) (Page, bool) {
	page, ok, err := c.Store.Get(url)
	if err != nil {
		zap.S().Named("fetch").Warnw("page cache read failed", "url", url, "error", err)
		return Page{}, false
	}
	return page, ok
}

func (c *Cached) Fetch(ctx context.Context, url string) (string, error) {
	log := zap.S().Named("fetch")

	if !c.Refresh {
		if page, ok := c.Lookup(url); ok {
			if age := c.now().Sub(page.FetchedAt); c.MaxAge == 0 || age < c.MaxAge {
				log.Debugw("using cached page", "url", url, "age", age)
				return page.Body, nil
			}
			log.Debugw("cached page expired", "url", url)
		}
	}

	body, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := c.Store.Put(Page{URL: url, Body: body, FetchedAt: c.now()}); err != nil {
		log.Warnw("page cache write failed", "url", url, "error", err)
	}
	return body, nil
}
