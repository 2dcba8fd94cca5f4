// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"fmt"
	"strings"

	"github.com/pdiddy/journal-digest/pkg/types"
)

// untitled stands in for works that carry no title at all.
const untitled = "(untitled)"

// Crossref API JSON structures.
type worksResponse struct {
	Status  string       `json:"status"`
	Message worksMessage `json:"message"`
}

type worksMessage struct {
	TotalResults int    `json:"total-results"`
	Items        []work `json:"items"`
}

type work struct {
	DOI             string   `json:"DOI"`
	URL             string   `json:"URL"`
	Title           []string `json:"title"`
	Abstract        string   `json:"abstract"`
	Published       dateInfo `json:"published"`
	PublishedOnline dateInfo `json:"published-online"`
	PublishedPrint  dateInfo `json:"published-print"`
	Issued          dateInfo `json:"issued"`
	Created         dateInfo `json:"created"`
}

// dateInfo holds Crossref date-parts, e.g. [[2024, 3, 15]] or [[2024]].
// A null part decodes as zero.
type dateInfo struct {
	DateParts [][]int `json:"date-parts"`
}

func (w work) record() types.PaperRecord {
	r := types.PaperRecord{
		Title:           untitled,
		URL:             w.URL,
		PublicationDate: w.publicationDate(),
		Abstract:        types.AbstractUnavailable,
	}
	for _, t := range w.Title {
		if t = strings.TrimSpace(t); t != "" {
			r.Title = t
			break
		}
	}
	if r.URL == "" && w.DOI != "" {
		r.URL = "https://doi.org/" + w.DOI
	}
	if a := strings.TrimSpace(w.Abstract); a != "" {
		r.Abstract = a
	}
	return r
}

// publicationDate picks the first usable date, preferring the overall
// publication date over the online and print ones.
func (w work) publicationDate() string {
	for _, d := range []dateInfo{w.Published, w.PublishedOnline, w.PublishedPrint, w.Issued, w.Created} {
		if s := d.format(); s != "" {
			return s
		}
	}
	return ""
}

// format renders the date at the granularity Crossref provides: YYYY,
// YYYY-MM or YYYY-MM-DD.
func (d dateInfo) format() string {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return ""
	}
	parts := d.DateParts[0]
	if parts[0] <= 0 {
		return ""
	}

	s := fmt.Sprintf("%04d", parts[0])
	for _, p := range parts[1:min(len(parts), 3)] {
		if p <= 0 {
			break
		}
		s += fmt.Sprintf("-%02d", p)
	}
	return s
}
