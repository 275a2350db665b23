// Package ytmeta fetches YouTube watch and search pages and parses them into the values of the model package.
//
// The parsing itself lives in package parse and works on page text alone; a Client adds fetching, turns user input
// into requests through a ProviderRegistry, and remembers recent results.
package ytmeta

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	sync_ "github.com/alanbriolat/ytmeta/internal/sync"
	"github.com/alanbriolat/ytmeta/model"
	"github.com/alanbriolat/ytmeta/parse"
)

var (
	ErrNoFetcher   = errors.New("no fetcher configured")
	ErrEmptyQuery  = errors.New("empty search query")
	ErrUnknownKind = errors.New("unknown request kind")
)

// Result holds whatever a Request produced; exactly one of Video, Information or Search is set.
type Result struct {
	Request     *Request                `json:"request"`
	Video       *model.Video            `json:"video,omitempty"`
	Information *model.VideoInformation `json:"information,omitempty"`
	Search      *model.SearchResult     `json:"search,omitempty"`
}

// A Client is safe for concurrent use. Concurrent requests for the same URL share a single fetch.
type Client struct {
	config      Config
	pages       *sync_.Flights[string]
	videos      *lru.Cache[string, model.Video]
	information *lru.Cache[string, model.VideoInformation]
	searches    *lru.Cache[string, model.SearchResult]
}

func New(config Config) (*Client, error) {
	if config.Fetcher == nil {
		return nil, ErrNoFetcher
	}
	if config.ProviderRegistry == nil {
		config.ProviderRegistry = &DefaultProviderRegistry
	}
	c := &Client{config: config, pages: sync_.NewFlights[string]()}
	if config.CacheSize > 0 {
		var err error
		if c.videos, err = lru.New[string, model.Video](config.CacheSize); err != nil {
			return nil, err
		}
		if c.information, err = lru.New[string, model.VideoInformation](config.CacheSize); err != nil {
			return nil, err
		}
		if c.searches, err = lru.New[string, model.SearchResult](config.CacheSize); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Video fetches a watch page and parses its embedded JSON.
func (c *Client) Video(ctx context.Context, url string) (model.Video, error) {
	return fetchAndParse(ctx, c, c.videos, url, parse.Video)
}

// VideoInformation fetches a watch page and parses its meta tags.
func (c *Client) VideoInformation(ctx context.Context, url string) (model.VideoInformation, error) {
	return fetchAndParse(ctx, c, c.information, url, parse.VideoInformation)
}

// Search fetches the first page of results for query.
func (c *Client) Search(ctx context.Context, query string) (model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return model.SearchResult{}, ErrEmptyQuery
	}
	return fetchAndParse(ctx, c, c.searches, SearchURL(query), parse.Search)
}

// Lookup turns arbitrary input (a video URL, a bare video ID, search text, ...) into a request with the client's
// provider registry, and performs it.
func (c *Client) Lookup(ctx context.Context, input string) (*Result, error) {
	req, err := c.config.ProviderRegistry.Match(input)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Do performs a request.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	result := &Result{Request: req}
	switch req.Kind {
	case KindVideo:
		video, err := c.Video(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		result.Video = &video
	case KindVideoInformation:
		info, err := c.VideoInformation(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		result.Information = &info
	case KindSearch:
		search, err := fetchAndParse(ctx, c, c.searches, req.URL, parse.Search)
		if err != nil {
			return nil, err
		}
		result.Search = &search
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, req.Kind)
	}
	return result, nil
}

// fetchAndParse returns errors from the fetcher and the parser unchanged, so callers can tell them apart.
func fetchAndParse[T any](ctx context.Context, c *Client, cache *lru.Cache[string, T], url string, parser func(string) (T, error)) (T, error) {
	log := Logger(ctx).Sugar().With("url", url)
	if cache != nil {
		if v, ok := cache.Get(url); ok {
			log.Debug("using memoised result")
			return v, nil
		}
	}
	var zero T
	page, shared, err := c.pages.Do(ctx, url, func() (string, error) {
		return c.config.Fetcher.Fetch(ctx, url)
	})
	if err != nil {
		return zero, err
	}
	if shared {
		log.Debug("shared a concurrent fetch")
	}
	v, err := parser(page)
	if err != nil {
		log.Debugw("parse failed", "error", err)
		return zero, err
	}
	if cache != nil {
		cache.Add(url, v)
	}
	return v, nil
}
