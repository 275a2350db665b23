// Package parse turns the HTML of watch and search pages into model values.
//
// Pages carry their data either as <meta>/<link> tags or as large JSON documents assigned to variables inside
// <script> tags. Every function here is pure: it takes the page text and returns a result or a *ParseError, and is
// safe to call concurrently.
package parse

import (
	"errors"
	"fmt"
)

// Each ParseError has one of these as its Kind, so errors.Is(err, ErrMissingElement) etc. identify the failure.
var (
	// ErrMissingElement means a JSON path or markup selector led nowhere, or to a value of the wrong type.
	ErrMissingElement = errors.New("missing element")
	// ErrMissingAttribute means a selected markup element lacks the attribute being read.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrExtraction means an embedded JSON blob could not be found or was not valid JSON.
	ErrExtraction = errors.New("embedded json extraction failed")
	// ErrNumericFormat means a duration or count was not in the expected numeric form.
	ErrNumericFormat = errors.New("invalid numeric format")
)

// A ParseError reports why a page could not be turned into a result. Target names what was being looked for: the
// full JSON path, the CSS selector, the attribute name, the blob marker or the offending text.
type ParseError struct {
	Kind   error
	Target string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Target, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Target)
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingElement(target string) error {
	return &ParseError{Kind: ErrMissingElement, Target: target}
}

func missingAttribute(name string) error {
	return &ParseError{Kind: ErrMissingAttribute, Target: name}
}

func extractionFailure(marker string, err error) error {
	return &ParseError{Kind: ErrExtraction, Target: marker, Err: err}
}

func numericFormat(text string, err error) error {
	return &ParseError{Kind: ErrNumericFormat, Target: fmt.Sprintf("%q", text), Err: err}
}
