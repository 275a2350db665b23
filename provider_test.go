package ytmeta

import (
	"errors"
	"strings"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func fixedMatch(kind Kind, prefix string) MatchFunc {
	return func(s string) (*Request, error) {
		if !strings.HasPrefix(s, prefix) {
			return nil, errors.New("wrong prefix")
		}
		return &Request{Kind: kind, URL: s}, nil
	}
}

func TestProviderRegistry(t *testing.T) {
	assert := assert_.New(t)
	var r ProviderRegistry

	assert.ErrorIs(r.Add(Provider{Name: "nameless"}), ErrInvalidProvider)
	assert.ErrorIs(r.Add(Provider{Match: fixedMatch(KindVideo, "")}), ErrInvalidProvider)

	assert.NoError(r.Create("any", fixedMatch(KindSearch, "")))
	assert.NoError(r.Add(Provider{Name: "video", Match: fixedMatch(KindVideo, "v:")}))
	assert.ErrorIs(r.Create("video", fixedMatch(KindVideo, "")), ErrDuplicateProvider)
	assert.Panics(func() { r.MustCreate("video", fixedMatch(KindVideo, "")) })

	// Equal priorities keep registration order.
	assert.Equal([]string{"any", "video"}, r.List())
	req, err := r.Match("v:abc")
	assert.NoError(err)
	assert.Equal("any", req.Provider)

	assert.NoError(r.SetPriority("any", PriorityLowest))
	assert.Equal([]string{"video", "any"}, r.List())
	priority, err := r.GetPriority("any")
	assert.NoError(err)
	assert.Equal(PriorityLowest, priority)
	_, err = r.GetPriority("missing")
	assert.ErrorIs(err, ErrUnknownProvider)
	assert.ErrorIs(r.SetPriority("missing", 0), ErrUnknownProvider)

	req, err = r.Match("v:abc")
	assert.NoError(err)
	assert.Equal(&Request{Provider: "video", Kind: KindVideo, URL: "v:abc"}, req)

	req, err = r.Match("text")
	assert.NoError(err)
	assert.Equal("any", req.Provider)
	assert.Equal(KindSearch, req.Kind)

	req, err = r.MatchWith("video", "v:x")
	assert.NoError(err)
	assert.Equal("video", req.Provider)
	_, err = r.MatchWith("video", "text")
	assert.ErrorIs(err, ErrNoMatch)
	_, err = r.MatchWith("missing", "text")
	assert.ErrorIs(err, ErrUnknownProvider)
}

func TestProviderRegistry_NoMatch(t *testing.T) {
	assert := assert_.New(t)
	var r ProviderRegistry

	_, err := r.Match("anything")
	assert.ErrorIs(err, ErrNoMatch)

	r.MustAdd(Provider{Name: "a", Match: fixedMatch(KindVideo, "a:")})
	r.MustAdd(Provider{Name: "b", Match: fixedMatch(KindVideo, "b:")}.WithPriority(PriorityHighest))
	_, err = r.Match("c:")
	assert.ErrorIs(err, ErrNoMatch)
	// Every provider's reason is reported, in priority order.
	assert.Contains(err.Error(), "[b] wrong prefix")
	assert.Contains(err.Error(), "[a] wrong prefix")
	assert.Less(strings.Index(err.Error(), "[b]"), strings.Index(err.Error(), "[a]"))
}

func TestKind(t *testing.T) {
	assert := assert_.New(t)

	assert.Equal("video", KindVideo.String())
	assert.Equal("information", KindVideoInformation.String())
	assert.Equal("search", KindSearch.String())
	assert.Equal("Kind(0)", Kind(0).String())
	text, err := KindSearch.MarshalText()
	assert.NoError(err)
	assert.Equal("search", string(text))
	assert.Equal("search https://www.youtube.com/results?search_query=a", (&Request{Kind: KindSearch, URL: SearchURL("a")}).String())
}
