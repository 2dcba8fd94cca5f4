// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// sectionHeadings are matched literally anywhere in the abstract, including
// inside longer words. Real abstracts arrive with headings glued to the
// running text ("PurposeTo assess..."), so a stricter match misses them.
var sectionHeadings = []struct {
	word string
	sep  string
}{
	{"Purpose", "\n"},
	{"Methods", "\n\n"},
	{"Results", "\n\n"},
	{"Conclusion", "\n\n"},
}

// headingPatterns absorb a colon and blanks right after the heading so
// "Purpose: x" does not come out as "[Purpose]: : x".
var headingPatterns = func() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(sectionHeadings))
	for i, h := range sectionHeadings {
		pats[i] = regexp.MustCompile(h.word + `:?[ \t]*`)
	}
	return pats
}()

// Segment inserts bracketed section labels into a cleaned abstract so that
// structured abstracts render as separate paragraphs. Purpose starts on a
// new line; Methods, Results and Conclusion are preceded by a blank line.
func Segment(cleaned string) string {
	s := cleaned
	if strings.HasPrefix(s, "Abstract") {
		s = strings.TrimLeft(strings.TrimPrefix(s, "Abstract"), " \t\n")
	}
	for i, h := range sectionHeadings {
		s = headingPatterns[i].ReplaceAllLiteralString(s, h.sep+"["+h.word+"]: ")
	}
	if strings.HasPrefix(s, "\n[Purpose]") {
		s = s[1:]
	}
	return s
}
