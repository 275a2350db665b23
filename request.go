package ytmeta

import (
	"fmt"
	"net/url"

	"github.com/alanbriolat/ytmeta/model"
)

const (
	watchURLBase  = "https://www.youtube.com/watch?v="
	searchURLBase = "https://www.youtube.com/results?search_query="
)

// Kind says which parser a requested page goes through.
type Kind uint8

const (
	// KindVideo reads a watch page's embedded JSON into a model.Video.
	KindVideo Kind = iota + 1
	// KindVideoInformation reads a watch page's meta tags into a model.VideoInformation.
	KindVideoInformation
	// KindSearch reads a results page into a model.SearchResult.
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindVideoInformation:
		return "information"
	case KindSearch:
		return "search"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// A Request is a page to fetch and the way to parse it, as worked out from user input by a Provider.
type Request struct {
	// Provider is the name of the provider that matched, filled in by the registry.
	Provider string `json:"provider"`
	Kind     Kind   `json:"kind"`
	URL      string `json:"url"`
	// Query is the search text, for KindSearch.
	Query string `json:"query,omitempty"`
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s", r.Kind, r.URL)
}

// WatchURL returns the canonical watch page URL of a video.
func WatchURL(id model.VideoID) string {
	return watchURLBase + url.QueryEscape(id.String())
}

// SearchURL returns the results page URL for a query.
func SearchURL(query string) string {
	return searchURLBase + url.QueryEscape(query)
}
