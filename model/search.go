package model

import "iter"

// SearchItem is one entry of a search result: exactly one of Video or Playlist is set.
type SearchItem struct {
	Video    *Video           `json:"video,omitempty"`
	Playlist *PartialPlaylist `json:"playlist,omitempty"`
}

func VideoItem(v Video) SearchItem {
	return SearchItem{Video: &v}
}

func PlaylistItem(p PartialPlaylist) SearchItem {
	return SearchItem{Playlist: &p}
}

func (i SearchItem) IsVideo() bool {
	return i.Video != nil
}

func (i SearchItem) IsPlaylist() bool {
	return i.Playlist != nil
}

// Title returns the title of whichever item this is.
func (i SearchItem) Title() string {
	if i.Playlist != nil {
		return i.Playlist.Title
	}
	if i.Video != nil {
		return i.Video.Title
	}
	return ""
}

// Uploader returns the uploader of whichever item this is.
func (i SearchItem) Uploader() Channel {
	if i.Playlist != nil {
		return i.Playlist.Uploader
	}
	if i.Video != nil {
		return i.Video.Uploader
	}
	return Channel{}
}

// SearchResult holds search entries in page order.
type SearchResult struct {
	Items []SearchItem `json:"items"`
}

// Videos yields the video entries, in order.
func (r SearchResult) Videos() iter.Seq[Video] {
	return func(yield func(Video) bool) {
		for _, item := range r.Items {
			if item.Video != nil && !yield(*item.Video) {
				return
			}
		}
	}
}

// Playlists yields the playlist entries, in order.
func (r SearchResult) Playlists() iter.Seq[PartialPlaylist] {
	return func(yield func(PartialPlaylist) bool) {
		for _, item := range r.Items {
			if item.Playlist != nil && !yield(*item.Playlist) {
				return
			}
		}
	}
}
