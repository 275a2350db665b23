package ytmeta_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	assert_ "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanbriolat/ytmeta"
	"github.com/alanbriolat/ytmeta/async"
	"github.com/alanbriolat/ytmeta/fetch"
	"github.com/alanbriolat/ytmeta/generic"
	"github.com/alanbriolat/ytmeta/model"
	"github.com/alanbriolat/ytmeta/parse"
	_ "github.com/alanbriolat/ytmeta/providers"
)

const (
	rickURL    = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	invalidURL = "https://www.youtube.com/watch?v=FFFFFFFFFFF"
)

// pageServer serves fixture pages by URL and counts fetches.
type pageServer struct {
	mu    sync.Mutex
	pages map[string]string
	calls map[string]int
}

func newPageServer(t *testing.T) *pageServer {
	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join("parse", "testdata", name))
		require.NoError(t, err)
		return string(b)
	}
	return &pageServer{
		pages: map[string]string{
			rickURL:                              read("watch_dQw4w9WgXcQ.html"),
			invalidURL:                           read("watch_invalid.html"),
			ytmeta.SearchURL("rick astley"):      read("search.html"),
			ytmeta.SearchURL("never gonna give"): read("search.html"),
		},
		calls: make(map[string]int),
	}
}

func (s *pageServer) Fetch(ctx context.Context, url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[url]++
	if page, ok := s.pages[url]; ok {
		return page, nil
	}
	return "", &fetch.TransportError{URL: url, StatusCode: 404}
}

func (s *pageServer) Calls(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}

func newClient(t *testing.T, server *pageServer, cacheSize int) *ytmeta.Client {
	config := ytmeta.DefaultConfig
	config.Fetcher = server
	config.CacheSize = cacheSize
	client, err := ytmeta.New(config)
	require.NoError(t, err)
	return client
}

func TestClient_Video(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 8)
	ctx := context.Background()

	video, err := client.Video(ctx, rickURL)
	require.NoError(t, err)
	assert.Equal("dQw4w9WgXcQ", video.ID.String())
	assert.Equal(212091*time.Millisecond, video.Length)
	assert.Equal("RickAstleyVEVO", video.Uploader.Name)

	again, err := client.Video(ctx, rickURL)
	assert.NoError(err)
	assert.Equal(video, again)
	assert.Equal(1, server.Calls(rickURL))

	// Each parse variant is memoised separately.
	info, err := client.VideoInformation(ctx, rickURL)
	assert.NoError(err)
	assert.Equal(generic.Some("https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"), info.Thumbnail)
	assert.Equal(2, server.Calls(rickURL))
}

func TestClient_NoCache(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 0)

	for range 3 {
		_, err := client.Video(context.Background(), rickURL)
		assert.NoError(err)
	}
	assert.Equal(3, server.Calls(rickURL))
}

func TestClient_Errors(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 8)
	ctx := context.Background()

	_, err := client.Video(ctx, "https://www.youtube.com/watch?v=unknown")
	assert.ErrorIs(err, fetch.ErrTransport)
	var perr *parse.ParseError
	assert.False(errors.As(err, &perr))

	_, err = client.Video(ctx, invalidURL)
	assert.ErrorIs(err, parse.ErrMissingElement)
	assert.False(errors.Is(err, fetch.ErrTransport))

	// Failures are not memoised.
	_, err = client.Video(ctx, invalidURL)
	assert.Error(err)
	assert.Equal(2, server.Calls(invalidURL))

	_, err = client.VideoInformation(ctx, invalidURL)
	assert.ErrorIs(err, parse.ErrMissingElement)

	_, err = client.Search(ctx, "  ")
	assert.ErrorIs(err, ytmeta.ErrEmptyQuery)

	_, err = client.Do(ctx, &ytmeta.Request{Kind: ytmeta.Kind(99), URL: rickURL})
	assert.ErrorIs(err, ytmeta.ErrUnknownKind)

	_, err = ytmeta.New(ytmeta.Config{})
	assert.ErrorIs(err, ytmeta.ErrNoFetcher)
}

func TestClient_Search(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 8)

	result, err := client.Search(context.Background(), "rick astley")
	require.NoError(t, err)
	assert.Len(result.Items, 2)
	assert.True(result.Items[0].IsVideo())
	assert.True(result.Items[1].IsPlaylist())
}

func TestClient_Lookup(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 8)
	ctx := context.Background()

	for _, input := range []string{"dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ", rickURL + "&t=42s"} {
		result, err := client.Lookup(ctx, input)
		if assert.NoError(err, input) {
			assert.Equal("youtube", result.Request.Provider)
			assert.Equal(ytmeta.KindVideo, result.Request.Kind)
			if assert.NotNil(result.Video) {
				assert.Equal("dQw4w9WgXcQ", result.Video.ID.String())
			}
			assert.Nil(result.Search)
		}
	}
	assert.Equal(1, server.Calls(rickURL))

	result, err := client.Lookup(ctx, "  rick   astley ")
	if assert.NoError(err) {
		assert.Equal("search", result.Request.Provider)
		assert.Equal("rick astley", result.Request.Query)
		if assert.NotNil(result.Search) {
			assert.Len(result.Search.Items, 2)
		}
	}

	req, err := ytmeta.DefaultProviderRegistry.MatchWith("youtube", "dQw4w9WgXcQ")
	require.NoError(t, err)
	req.Kind = ytmeta.KindVideoInformation
	result, err = client.Do(ctx, req)
	if assert.NoError(err) && assert.NotNil(result.Information) {
		assert.Equal("RickAstleyVEVO", result.Information.Uploader)
	}

	_, err = client.Lookup(ctx, "")
	assert.ErrorIs(err, ytmeta.ErrNoMatch)
}

func TestClient_Concurrent(t *testing.T) {
	assert := assert_.New(t)
	server := newPageServer(t)
	client := newClient(t, server, 8)

	inputs := []string{rickURL, "dQw4w9WgXcQ", "rick astley", "never gonna give", invalidURL}
	var results []<-chan generic.Result[*ytmeta.Result]
	for range 4 {
		for _, input := range inputs {
			results = append(results, async.RunResult(func() (*ytmeta.Result, error) {
				return client.Lookup(context.Background(), input)
			}))
		}
	}
	var failures int
	for _, r := range results {
		if (<-r).IsErr() {
			failures++
		}
	}
	assert.Equal(4, failures)
	assert.LessOrEqual(server.Calls(rickURL), 8)
}

func TestWatchURL(t *testing.T) {
	assert := assert_.New(t)

	id, err := model.NewVideoID("dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(rickURL, ytmeta.WatchURL(id))
	assert.Equal("https://www.youtube.com/results?search_query=rick+astley+%26+friends", ytmeta.SearchURL("rick astley & friends"))
}
