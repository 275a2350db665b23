package search

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alanbriolat/ytmeta"
	"github.com/alanbriolat/ytmeta/provider/youtube"
)

// Match turns free text into a search, and also accepts the URL of a results page. Any other URL is rejected, so a
// mistyped link is reported instead of being searched for.
func Match(s string) (*ytmeta.Request, error) {
	query := strings.Join(strings.Fields(s), " ")
	if query == "" {
		return nil, ytmeta.ErrEmptyQuery
	}
	if parsedURL, err := url.Parse(query); err == nil && parsedURL.Scheme != "" && parsedURL.Host != "" {
		if !youtube.Hosts.Contains(parsedURL.Hostname()) || parsedURL.Path != "/results" {
			return nil, fmt.Errorf("not a search results URL: %s", query)
		}
		query = parsedURL.Query().Get("search_query")
		if strings.TrimSpace(query) == "" {
			return nil, ytmeta.ErrEmptyQuery
		}
	}
	return &ytmeta.Request{Kind: ytmeta.KindSearch, URL: ytmeta.SearchURL(query), Query: query}, nil
}

func New() ytmeta.Provider {
	return ytmeta.Provider{Name: "search", Match: Match}.WithPriority(ytmeta.PriorityLowest)
}

func init() {
	ytmeta.DefaultProviderRegistry.MustAdd(New())
}
