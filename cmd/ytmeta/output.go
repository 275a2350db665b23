package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alanbriolat/ytmeta"
	"github.com/alanbriolat/ytmeta/model"
)

// printer writes results either as indented JSON or as a short text summary.
type printer struct {
	w    io.Writer
	json bool
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format, args...)
	return err
}

func formatLength(d time.Duration) string {
	return d.Round(time.Second).String()
}

func (p printer) video(v model.Video) error {
	if p.json {
		return p.encode(v)
	}
	return p.printf("%s  %s  %s\n    by %s (%s)\n", v.ID, formatLength(v.Length), v.Title, v.Uploader.Name, v.Uploader.ID)
}

func (p printer) information(info model.VideoInformation) error {
	if p.json {
		return p.encode(info)
	}
	return p.printf("%s  %s\n    by %s\n    %s\n    thumbnail: %s\n", info.ID, info.Title, info.Uploader, info.URL, info.Thumbnail)
}

func (p printer) search(result model.SearchResult) error {
	if p.json {
		return p.encode(result)
	}
	var b strings.Builder
	for _, item := range result.Items {
		switch {
		case item.IsVideo():
			v := item.Video
			fmt.Fprintf(&b, "video     %s  %s  %s  [%s]\n", v.ID, formatLength(v.Length), v.Title, v.Uploader.Name)
		case item.IsPlaylist():
			pl := item.Playlist
			fmt.Fprintf(&b, "playlist  %s  %d videos  %s  [%s]\n", pl.ID, pl.TracksTotal, pl.Title, pl.Uploader.Name)
			for _, track := range pl.Tracks {
				fmt.Fprintf(&b, "          - %s  %s  %s\n", track.ID, formatLength(track.Length), track.Title)
			}
		}
	}
	return p.printf("%s", b.String())
}

func (p printer) result(r *ytmeta.Result) error {
	if p.json {
		return p.encode(r)
	}
	if err := p.printf("# %s (%s)\n", r.Request, r.Request.Provider); err != nil {
		return err
	}
	switch {
	case r.Video != nil:
		return p.video(*r.Video)
	case r.Information != nil:
		return p.information(*r.Information)
	case r.Search != nil:
		return p.search(*r.Search)
	}
	return nil
}
