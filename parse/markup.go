package parse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// document wraps a parsed page for selector lookups.
type document struct {
	*goquery.Document
}

func parseDocument(html string) (document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return document{}, extractionFailure("html", err)
	}
	return document{doc}, nil
}

// selectOne returns the first element matching sel.
func (d document) selectOne(sel selector) (*goquery.Selection, error) {
	found := d.FindMatcher(sel).First()
	if found.Length() == 0 {
		return nil, missingElement(sel.text)
	}
	return found, nil
}

// selectAttribute reads an attribute from the first element matching sel.
func (d document) selectAttribute(sel selector, attribute string) (string, error) {
	element, err := d.selectOne(sel)
	if err != nil {
		return "", err
	}
	value, ok := element.Attr(attribute)
	if !ok {
		return "", missingAttribute(attribute)
	}
	return value, nil
}
