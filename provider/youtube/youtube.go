package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/alanbriolat/ytmeta"
	"github.com/alanbriolat/ytmeta/generic"
	"github.com/alanbriolat/ytmeta/model"
)

var (
	protocols = generic.NewSet("http", "https")
	Hosts     = generic.NewSet(
		"youtube.com",
		"www.youtube.com",
		"m.youtube.com",
		"music.youtube.com",
		"youtu.be",
		"www.youtube-nocookie.com",
	)
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	errNoVideoID = errors.New("could not extract video ID")
)

// Match accepts a bare video ID, or a URL of one of these forms:
//
//	http(s)://(www|m|music).youtube.com/watch?v={VIDEO_ID}
//	http(s)://www.youtube.com/(v|embed|shorts|live)/{VIDEO_ID}
//	http(s)://youtu.be/{VIDEO_ID}
//
// and requests the video's canonical watch page.
func Match(s string) (*ytmeta.Request, error) {
	s = strings.TrimSpace(s)
	if videoIDPattern.MatchString(s) {
		return request(s)
	}
	if parsedURL, err := url.Parse(s); err != nil {
		return nil, err
	} else if !protocols.Contains(parsedURL.Scheme) {
		return nil, fmt.Errorf("unknown URL scheme %q", parsedURL.Scheme)
	} else if !Hosts.Contains(parsedURL.Hostname()) {
		return nil, fmt.Errorf("unrecognised hostname %q", parsedURL.Hostname())
	} else if videoID, err := youtube.ExtractVideoID(s); err != nil {
		return nil, fmt.Errorf("%w: %w", errNoVideoID, err)
	} else if !videoIDPattern.MatchString(videoID) {
		return nil, errNoVideoID
	} else {
		return request(videoID)
	}
}

func request(token string) (*ytmeta.Request, error) {
	id, err := model.NewVideoID(token)
	if err != nil {
		return nil, err
	}
	return &ytmeta.Request{Kind: ytmeta.KindVideo, URL: ytmeta.WatchURL(id)}, nil
}

func New() ytmeta.Provider {
	return ytmeta.Provider{Name: "youtube", Match: Match}
}

func init() {
	ytmeta.DefaultProviderRegistry.MustAdd(New())
}
