// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared between the fetch layer,
// the record encoders, and the rendering pipeline.
package types

import "strings"

// AbstractUnavailable is the sentinel stored in PaperRecord.Abstract when the
// source carries no abstract. Renderers omit the abstract section for it.
const AbstractUnavailable = "No abstract available."

// PaperRecord is one journal article as returned by the metadata API, reduced
// to the fields the digest displays. Title and Abstract may still contain
// markup and HTML entities; the renderer cleans them.
type PaperRecord struct {
	// Title is the raw article title.
	Title string `json:"title" yaml:"title"`

	// URL links to the article landing page (usually a DOI resolver URL).
	URL string `json:"url" yaml:"url"`

	// PublicationDate is already formatted as YYYY, YYYY-MM or YYYY-MM-DD.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Abstract is the raw abstract text or AbstractUnavailable.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// HasAbstract reports whether the record carries a displayable abstract.
func (p PaperRecord) HasAbstract() bool {
	a := strings.TrimSpace(p.Abstract)
	return a != "" && a != AbstractUnavailable
}
