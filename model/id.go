package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID = errors.New("empty identifier")
)

// An id is the shared representation of every identifier type: a non-empty opaque token.
type id struct {
	token string
}

func newID(token string) (id, error) {
	if token == "" {
		return id{}, ErrEmptyID
	}
	return id{token: token}, nil
}

func (i id) String() string {
	return i.token
}

func (i id) IsZero() bool {
	return i.token == ""
}

func (i id) compare(other id) int {
	return strings.Compare(i.token, other.token)
}

func (i id) MarshalText() ([]byte, error) {
	return []byte(i.token), nil
}

func (i *id) unmarshalText(kind string, text []byte) error {
	parsed, err := newID(string(text))
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	*i = parsed
	return nil
}

// ChannelID identifies a channel (the /channel/ID form, not the legacy /user/ID form).
type ChannelID struct{ id }

func NewChannelID(token string) (ChannelID, error) {
	i, err := newID(token)
	return ChannelID{i}, err
}

// Compare orders channel IDs by their token.
func (c ChannelID) Compare(other ChannelID) int {
	return c.compare(other.id)
}

func (c ChannelID) URL() string {
	return "https://www.youtube.com/channel/" + c.token
}

func (c *ChannelID) UnmarshalText(text []byte) error {
	return c.unmarshalText("channel id", text)
}

// PlaylistID identifies a playlist. Playlists have no thumbnail of their own; they use their first video's.
type PlaylistID struct{ id }

func NewPlaylistID(token string) (PlaylistID, error) {
	i, err := newID(token)
	return PlaylistID{i}, err
}

func (p PlaylistID) Compare(other PlaylistID) int {
	return p.compare(other.id)
}

func (p PlaylistID) URL() string {
	return "https://www.youtube.com/playlist?list=" + p.token
}

func (p *PlaylistID) UnmarshalText(text []byte) error {
	return p.unmarshalText("playlist id", text)
}

// VideoID identifies a video.
type VideoID struct{ id }

func NewVideoID(token string) (VideoID, error) {
	i, err := newID(token)
	return VideoID{i}, err
}

func (v VideoID) Compare(other VideoID) int {
	return v.compare(other.id)
}

// URL returns the short share link for the video.
func (v VideoID) URL() string {
	return "https://youtu.be/" + v.token
}

// Thumbnail returns the URL of the video's thumbnail in the given format and resolution. Whether the image exists
// for Maxres and Standard depends on the video.
func (v VideoID) Thumbnail(format ImageFormat, res Resolution) string {
	switch format {
	case WebP:
		return fmt.Sprintf("%s/vi_webp/%s/%s.webp", thumbnailBaseURL, v.token, res)
	default:
		return fmt.Sprintf("%s/vi/%s/%s.jpg", thumbnailBaseURL, v.token, res)
	}
}

func (v *VideoID) UnmarshalText(text []byte) error {
	return v.unmarshalText("video id", text)
}
