package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitly/go-simplejson"
	"github.com/stretchr/testify/require"

	"github.com/alanbriolat/ytmeta/model"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func jsonNode(t *testing.T, text string) Node {
	t.Helper()
	j, err := simplejson.NewJson([]byte(text))
	require.NoError(t, err)
	return Node{json: j}
}

// parseErrorTarget returns the Target of err, which must be a *ParseError.
func parseErrorTarget(t *testing.T, err error) string {
	t.Helper()
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "not a *ParseError: %v", err)
	return perr.Target
}

func mustVideoID(t *testing.T, s string) model.VideoID {
	t.Helper()
	id, err := model.NewVideoID(s)
	require.NoError(t, err)
	return id
}

func mustPlaylistID(t *testing.T, s string) model.PlaylistID {
	t.Helper()
	id, err := model.NewPlaylistID(s)
	require.NoError(t, err)
	return id
}

func mustChannel(t *testing.T, id, name string) model.Channel {
	t.Helper()
	channelID, err := model.NewChannelID(id)
	require.NoError(t, err)
	return model.Channel{ID: channelID, Name: name}
}
