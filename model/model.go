// Package model holds the typed results of parsing pages: identifiers and the entities built from them.
//
// Every entity is a plain value, built once by the parser and never mutated afterwards.
package model

import "time"

// MaxPartialTracks is the number of tracks a listing exposes for each playlist. The full track list needs a
// separate request which is not implemented.
const MaxPartialTracks = 2

// Channel is the uploader of a video or playlist.
type Channel struct {
	ID   ChannelID `json:"id"`
	Name string    `json:"name"`
}

// Video is a fully populated video; every field is always set.
type Video struct {
	ID       VideoID       `json:"id"`
	Length   time.Duration `json:"length"`
	Title    string        `json:"title"`
	Uploader Channel       `json:"uploader"`
}

// Partial strips the uploader, as playlist listings do.
func (v Video) Partial() PartialPlaylistVideo {
	return PartialPlaylistVideo{
		ID:     v.ID,
		Length: v.Length,
		Title:  v.Title,
	}
}

// PartialPlaylistVideo is a video as listed inside a playlist summary, without uploader.
type PartialPlaylistVideo struct {
	ID     VideoID       `json:"id"`
	Length time.Duration `json:"length"`
	Title  string        `json:"title"`
}

// Playlist is a complete playlist. Nothing in this module fetches one yet; it exists so that summaries can be
// derived from it consistently.
type Playlist struct {
	ID       PlaylistID `json:"id"`
	Tracks   []Video    `json:"tracks"`
	Title    string     `json:"title"`
	Uploader Channel    `json:"uploader"`
}

// Partial summarises the playlist the way search listings present it.
func (p Playlist) Partial() PartialPlaylist {
	n := min(len(p.Tracks), MaxPartialTracks)
	tracks := make([]PartialPlaylistVideo, 0, n)
	for _, track := range p.Tracks[:n] {
		tracks = append(tracks, track.Partial())
	}
	return PartialPlaylist{
		ID:          p.ID,
		Tracks:      tracks,
		TracksTotal: uint32(len(p.Tracks)),
		Title:       p.Title,
		Uploader:    p.Uploader,
	}
}

// PartialPlaylist is a playlist summary holding at most MaxPartialTracks tracks, and never more than TracksTotal.
type PartialPlaylist struct {
	ID          PlaylistID             `json:"id"`
	Tracks      []PartialPlaylistVideo `json:"tracks"`
	TracksTotal uint32                 `json:"tracks_total"`
	Title       string                 `json:"title"`
	Uploader    Channel                `json:"uploader"`
}
