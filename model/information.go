package model

import "github.com/alanbriolat/ytmeta/generic"

// VideoInformation is the lighter result read from a watch page's <meta>/<link> tags alone. Fields are kept as
// the page states them, since the markup does not always agree with the embedded data.
type VideoInformation struct {
	ID        string                 `json:"id"`
	URL       string                 `json:"url"`
	Title     string                 `json:"title"`
	Uploader  string                 `json:"uploader"`
	Thumbnail generic.Option[string] `json:"thumbnail"`
}
