// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns paper records into fixed-width framed text blocks.
//
// The pipeline is a chain of pure string transformations: Clean strips
// markup and decodes entities, Segment inserts section labels into
// abstracts, Wrap fills lines to a visible column budget, and Frame draws
// the box. FormatPaper composes them for a single record.
package render

import (
	"regexp"
	"strings"
)

var (
	// Small caps are emphasis only; the content stays.
	scpTag = regexp.MustCompile(`</?(?:[a-z]+:)?scp>`)
	subTag = regexp.MustCompile(`<(?:[a-z]+:)?sub>([^<]*)</(?:[a-z]+:)?sub>`)
	supTag = regexp.MustCompile(`<(?:[a-z]+:)?sup>([^<]*)</(?:[a-z]+:)?sup>`)
	anyTag = regexp.MustCompile(`<[^>]+>`)
)

// entityReplacer decodes the fixed entity set in one pass, so text produced
// by a replacement is never decoded again.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&apos;", "'",
	"&minus;", "-",
	"&hyphen;", "-",
	"&ndash;", "-",
	"&#8208;", "-",
	"&#8209;", "-",
	"&#8210;", "-",
	"&#8211;", "-",
	"&mdash;", "—",
	"&#8212;", "—",
)

// Clean removes markup from a title or abstract as delivered by the API and
// decodes HTML entities. Tags are handled before entities. Unknown tags are
// dropped and unknown entities are left as they are.
func Clean(raw string) string {
	s := scpTag.ReplaceAllString(raw, "")
	s = subTag.ReplaceAllString(s, "_$1")
	s = supTag.ReplaceAllString(s, "^$1")
	s = anyTag.ReplaceAllString(s, "")
	return entityReplacer.Replace(s)
}
