package parse

import (
	"github.com/alanbriolat/ytmeta/model"
)

const (
	currentVideoIDPath  = "/currentVideoEndpoint/watchEndpoint/videoId"
	approxDurationPath  = "/streamingData/formats/0/approxDurationMs"
	watchResultsPath    = "/contents/twoColumnWatchNextResults/results/results/contents"
	primaryTitlePath    = watchResultsPath + "/0/videoPrimaryInfoRenderer/title/runs/0/text"
	secondaryOwnerPath  = watchResultsPath + "/1/videoSecondaryInfoRenderer/owner/videoOwnerRenderer/title/runs/0"
	browseIDPath        = "/navigationEndpoint/browseEndpoint/browseId"
	textPath            = "/text"
	playabilityStatPath = "/playabilityStatus/status"
)

// Video reads a watch page's embedded "ytInitialData" and "ytInitialPlayerResponse" documents. Every field is
// required; the first one missing fails the parse.
func Video(html string) (model.Video, error) {
	data, err := InitialData(html)
	if err != nil {
		return model.Video{}, err
	}
	player, err := InitialPlayerResponse(html)
	if err != nil {
		return model.Video{}, err
	}

	id, err := videoID(data, currentVideoIDPath)
	if err != nil {
		return model.Video{}, err
	}

	approx, err := player.Text(approxDurationPath)
	if err != nil {
		return model.Video{}, err
	}
	length, err := MillisDuration(approx)
	if err != nil {
		return model.Video{}, err
	}

	title, err := data.Text(primaryTitlePath)
	if err != nil {
		return model.Video{}, err
	}

	owner, err := data.Object(secondaryOwnerPath)
	if err != nil {
		return model.Video{}, err
	}
	uploader, err := channel(owner)
	if err != nil {
		return model.Video{}, err
	}

	return model.Video{
		ID:       id,
		Length:   length,
		Title:    title,
		Uploader: uploader,
	}, nil
}

// PlayabilityStatus returns the player response's status ("OK", "ERROR", "LOGIN_REQUIRED", ...), which explains
// why a watch page carries no streaming data.
func PlayabilityStatus(html string) (string, error) {
	player, err := InitialPlayerResponse(html)
	if err != nil {
		return "", err
	}
	return player.Text(playabilityStatPath)
}

// channel reads a text run that links to a channel: {"text": name, "navigationEndpoint": {... browseId}}.
func channel(run Node) (model.Channel, error) {
	name, err := run.Text(textPath)
	if err != nil {
		return model.Channel{}, err
	}
	browseID, err := run.Text(browseIDPath)
	if err != nil {
		return model.Channel{}, err
	}
	id, err := model.NewChannelID(browseID)
	if err != nil {
		return model.Channel{}, missingElement(run.Path() + browseIDPath)
	}
	return model.Channel{ID: id, Name: name}, nil
}

func videoID(n Node, path string) (model.VideoID, error) {
	s, err := n.Text(path)
	if err != nil {
		return model.VideoID{}, err
	}
	id, err := model.NewVideoID(s)
	if err != nil {
		return model.VideoID{}, missingElement(n.Path() + path)
	}
	return id, nil
}

func playlistID(n Node, path string) (model.PlaylistID, error) {
	s, err := n.Text(path)
	if err != nil {
		return model.PlaylistID{}, err
	}
	id, err := model.NewPlaylistID(s)
	if err != nil {
		return model.PlaylistID{}, missingElement(n.Path() + path)
	}
	return id, nil
}
