package parse

import (
	"errors"

	"github.com/bitly/go-simplejson"
)

var errMarkerNotFound = errors.New("marker not found")

// extractBlob finds the first occurrence of the marker in the page and parses the JSON that follows it.
//
// The end of the blob is found by substring match, not by JSON structure, so a blob that itself contains the text
// ";</script>" is cut short and then fails to parse.
func extractBlob(html string, marker blobMarker) (Node, error) {
	m := marker.pattern.FindStringSubmatch(html)
	if m == nil {
		return Node{}, extractionFailure(marker.name, errMarkerNotFound)
	}
	doc, err := simplejson.NewJson([]byte(m[1]))
	if err != nil {
		return Node{}, extractionFailure(marker.name, err)
	}
	return Node{json: doc}, nil
}

// InitialData returns the page's "ytInitialData" document.
func InitialData(html string) (Node, error) {
	return extractBlob(html, initialData)
}

// InitialPlayerResponse returns the page's "ytInitialPlayerResponse" document.
func InitialPlayerResponse(html string) (Node, error) {
	return extractBlob(html, initialPlayerResponse)
}
