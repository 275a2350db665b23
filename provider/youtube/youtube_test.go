package youtube

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"

	"github.com/alanbriolat/ytmeta"
)

func TestMatch(t *testing.T) {
	assert := assert_.New(t)

	for _, input := range []string{
		"dQw4w9WgXcQ",
		" dQw4w9WgXcQ\n",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"http://youtube.com/watch?v=dQw4w9WgXcQ&list=PLFgquLnL59alCl_2TQvOiD5Vgm1hCaGSI",
		"https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
		"https://music.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
	} {
		req, err := Match(input)
		if assert.NoError(err, input) {
			assert.Equal(&ytmeta.Request{Kind: ytmeta.KindVideo, URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, req, input)
		}
	}
}

func TestMatch_Rejects(t *testing.T) {
	assert := assert_.New(t)

	for _, input := range []string{
		"",
		"rick astley",
		"never gonna give you up",
		"dQw4w9WgXc",
		"https://www.youtube.com/",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/results?search_query=rick+astley",
		"https://vimeo.com/watch?v=dQw4w9WgXcQ",
		"ftp://youtu.be/dQw4w9WgXcQ",
		"youtu.be/dQw4w9WgXcQ",
		"://",
	} {
		req, err := Match(input)
		assert.Error(err, input)
		assert.Nil(req, input)
	}
}

func TestRegistered(t *testing.T) {
	assert := assert_.New(t)

	assert.Contains(ytmeta.DefaultProviderRegistry.List(), "youtube")
	priority, err := ytmeta.DefaultProviderRegistry.GetPriority("youtube")
	assert.NoError(err)
	assert.Equal(ytmeta.PriorityDefault, priority)
}
