package parse

import (
	"regexp"

	"github.com/andybalholm/cascadia"
)

// All patterns are compiled once at package initialisation and only read afterwards, so they are shared freely
// between goroutines. A pattern that fails to compile is a bug and panics at startup.

// blobMarker locates one embedded JSON document: the first "var <name> = " up to the first ";</script>" after it.
type blobMarker struct {
	name    string
	pattern *regexp.Regexp
}

func mustBlobMarker(name string) blobMarker {
	return blobMarker{
		name:    name,
		pattern: regexp.MustCompile(`(?s)var ` + regexp.QuoteMeta(name) + ` = (.*?);</script>`),
	}
}

var (
	initialData           = mustBlobMarker("ytInitialData")
	initialPlayerResponse = mustBlobMarker("ytInitialPlayerResponse")
)

// selector is a compiled CSS selector that remembers its source text for error messages.
type selector struct {
	text string
	cascadia.Selector
}

func mustSelector(text string) selector {
	return selector{text: text, Selector: cascadia.MustCompile(text)}
}

var (
	canonicalURLSelector = mustSelector(`link[rel="canonical"]`)
	titleSelector        = mustSelector(`meta[property="og:title"]`)
	thumbnailSelector    = mustSelector(`meta[property="og:image"]`)
	uploaderSelector     = mustSelector(`link[itemprop="name"]`)
	videoIDSelector      = mustSelector(`meta[itemprop="videoId"]`)
)
