// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*[mK]")

// widthCond ignores the locale so ambiguous-width runes such as the em dash
// always count as one column.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// StripANSI removes color and erase-line escape sequences from s.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal columns s occupies, treating
// ANSI color sequences as zero-width. Every width decision in this package
// goes through it.
func VisibleWidth(s string) int {
	return widthCond.StringWidth(StripANSI(s))
}
