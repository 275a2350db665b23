package parse

import (
	"github.com/alanbriolat/ytmeta/generic"
	"github.com/alanbriolat/ytmeta/model"
)

// VideoInformation reads a watch page's <meta> and <link> tags. Only the thumbnail may be absent; any other missing
// tag or attribute fails the whole parse.
func VideoInformation(html string) (model.VideoInformation, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return model.VideoInformation{}, err
	}

	var info model.VideoInformation
	if info.URL, err = doc.selectAttribute(canonicalURLSelector, "href"); err != nil {
		return model.VideoInformation{}, err
	}
	if info.Title, err = doc.selectAttribute(titleSelector, "content"); err != nil {
		return model.VideoInformation{}, err
	}
	if info.Uploader, err = doc.selectAttribute(uploaderSelector, "content"); err != nil {
		return model.VideoInformation{}, err
	}
	if info.ID, err = doc.selectAttribute(videoIDSelector, "content"); err != nil {
		return model.VideoInformation{}, err
	}
	if thumbnail, err := doc.selectAttribute(thumbnailSelector, "content"); err == nil {
		info.Thumbnail = generic.Some(thumbnail)
	}
	return info, nil
}
