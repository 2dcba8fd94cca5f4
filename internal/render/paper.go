// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/pdiddy/journal-digest/pkg/types"
)

// frameChrome is the number of columns a content line spends on "│ " and " │".
const frameChrome = 4

// FormatPaper renders one record as a framed block of lines, each exactly
// opts.Width columns wide unless a single word overflows the frame.
func FormatPaper(p types.PaperRecord, opts types.DisplayOptions) []string {
	palette := NewPalette(opts.Color)
	inner := opts.Width - frameChrome

	lines := []string{palette.Date.Sprint(p.PublicationDate), ""}

	lines = append(lines, palette.Label.Sprint("Title:"))
	lines = append(lines, Wrap(Clean(p.Title), opts.Indent, inner)...)

	lines = append(lines, "", palette.Label.Sprint("URL:"))
	lines = append(lines, Wrap(p.URL, opts.Indent, inner)...)

	if !opts.TitleOnly && p.HasAbstract() {
		lines = append(lines, "", palette.Label.Sprint("Abstract:"))
		lines = append(lines, Wrap(Segment(Clean(p.Abstract)), opts.Indent, inner)...)
	}

	return Frame(lines, opts.Width)
}
