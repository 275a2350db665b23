package parse

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/alanbriolat/ytmeta/model"
)

const (
	searchItemsPath = "/contents/twoColumnSearchResultsRenderer/primaryContents/sectionListRenderer/contents/0/itemSectionRenderer/contents"

	videoRendererKey      = "videoRenderer"
	playlistRendererKey   = "playlistRenderer"
	shelfRendererKey      = "shelfRenderer"
	childVideoRendererKey = "childVideoRenderer"

	liveNowBadgeStyle   = "BADGE_STYLE_TYPE_LIVE_NOW"
	liveTimeStatusStyle = "LIVE"
)

func log() *zap.SugaredLogger {
	return zap.S().Named("parse")
}

// Search reads a results page's "ytInitialData" document into the videos and playlists it lists, in page order.
//
// Live streams are skipped, as are videos without a length (live streams whose badge is missing). Shelves and
// unknown entry kinds are ignored. Any other video or playlist entry missing a field fails the whole parse, since
// that means the page format has changed.
func Search(html string) (model.SearchResult, error) {
	data, err := InitialData(html)
	if err != nil {
		return model.SearchResult{}, err
	}
	entries, err := data.Array(searchItemsPath)
	if err != nil {
		return model.SearchResult{}, err
	}

	items := make([]model.SearchItem, 0, len(entries))
	for _, entry := range entries {
		if renderer, ok := entry.Has(videoRendererKey); ok {
			video, ok, err := searchVideo(renderer)
			if err != nil {
				return model.SearchResult{}, err
			} else if ok {
				items = append(items, model.VideoItem(video))
			}
		} else if renderer, ok := entry.Has(playlistRendererKey); ok {
			playlist, err := searchPlaylist(renderer)
			if err != nil {
				return model.SearchResult{}, err
			}
			items = append(items, model.PlaylistItem(playlist))
		} else if _, ok := entry.Has(shelfRendererKey); ok {
			log().Debugw("ignoring shelf", "path", entry.Path())
		} else {
			log().Debugw("ignoring unknown search entry", "path", entry.Path())
		}
	}
	return model.SearchResult{Items: items}, nil
}

// searchVideo returns ok=false for entries that are deliberately skipped rather than failed.
func searchVideo(renderer Node) (model.Video, bool, error) {
	id, err := videoID(renderer, "/videoId")
	if err != nil {
		return model.Video{}, false, err
	}
	if isLive(renderer) {
		log().Debugw("skipping live stream", "id", id.String())
		return model.Video{}, false, nil
	}
	lengthText, err := renderer.Text("/lengthText/simpleText")
	if err != nil {
		log().Debugw("skipping video without length, probably a live stream", "id", id.String())
		return model.Video{}, false, nil
	}
	length, err := ColonDuration(lengthText)
	if err != nil {
		return model.Video{}, false, err
	}
	title, err := renderer.Text("/title/runs/0/text")
	if err != nil {
		return model.Video{}, false, err
	}
	owner, err := renderer.Object("/ownerText/runs/0")
	if err != nil {
		return model.Video{}, false, err
	}
	uploader, err := channel(owner)
	if err != nil {
		return model.Video{}, false, err
	}
	return model.Video{ID: id, Length: length, Title: title, Uploader: uploader}, true, nil
}

// isLive looks for the "LIVE NOW" badge, or the "LIVE" marker that replaces the length on the thumbnail.
func isLive(renderer Node) bool {
	badges, _ := renderer.Array("/badges")
	for _, badge := range badges {
		if style, err := badge.Text("/metadataBadgeRenderer/style"); err == nil && style == liveNowBadgeStyle {
			return true
		}
	}
	overlays, _ := renderer.Array("/thumbnailOverlays")
	for _, overlay := range overlays {
		if style, err := overlay.Text("/thumbnailOverlayTimeStatusRenderer/style"); err == nil && style == liveTimeStatusStyle {
			return true
		}
	}
	return false
}

func searchPlaylist(renderer Node) (model.PartialPlaylist, error) {
	id, err := playlistID(renderer, "/playlistId")
	if err != nil {
		return model.PartialPlaylist{}, err
	}

	children, err := renderer.Array("/videos")
	if err != nil {
		return model.PartialPlaylist{}, err
	}
	tracks := make([]model.PartialPlaylistVideo, 0, len(children))
	for _, child := range children {
		track, err := playlistTrack(child)
		if err != nil {
			return model.PartialPlaylist{}, err
		}
		tracks = append(tracks, track)
	}

	countText, err := renderer.Text("/videoCountText/runs/0/text")
	if err != nil {
		return model.PartialPlaylist{}, err
	}
	total, err := strconv.ParseUint(countText, 10, 32)
	if err != nil {
		return model.PartialPlaylist{}, numericFormat(countText, err)
	}

	title, err := renderer.Text("/title/simpleText")
	if err != nil {
		return model.PartialPlaylist{}, err
	}
	owner, err := renderer.Object("/shortBylineText/runs/0")
	if err != nil {
		return model.PartialPlaylist{}, err
	}
	uploader, err := channel(owner)
	if err != nil {
		return model.PartialPlaylist{}, err
	}

	// Every listed track is validated above, but only as many as the summary can hold are kept.
	keep := min(len(tracks), model.MaxPartialTracks)
	if uint64(keep) > total {
		keep = int(total)
	}
	return model.PartialPlaylist{
		ID:          id,
		Tracks:      tracks[:keep],
		TracksTotal: uint32(total),
		Title:       title,
		Uploader:    uploader,
	}, nil
}

func playlistTrack(child Node) (model.PartialPlaylistVideo, error) {
	renderer, err := child.Object("/" + childVideoRendererKey)
	if err != nil {
		return model.PartialPlaylistVideo{}, err
	}
	id, err := videoID(renderer, "/videoId")
	if err != nil {
		return model.PartialPlaylistVideo{}, err
	}
	lengthText, err := renderer.Text("/lengthText/simpleText")
	if err != nil {
		return model.PartialPlaylistVideo{}, err
	}
	length, err := ColonDuration(lengthText)
	if err != nil {
		return model.PartialPlaylistVideo{}, err
	}
	title, err := renderer.Text("/title/simpleText")
	if err != nil {
		return model.PartialPlaylistVideo{}, err
	}
	return model.PartialPlaylistVideo{ID: id, Length: length, Title: title}, nil
}
