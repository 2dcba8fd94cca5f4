// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// Wrap greedily fills words into lines of at most maxWidth visible columns,
// prefix included. Each newline-separated line of text is wrapped on its
// own; an empty input line becomes one empty output line, without prefix.
// A word wider than the budget is put on a line by itself and not split.
func Wrap(text, prefix string, maxWidth int) []string {
	budget := maxWidth - VisibleWidth(prefix)

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		currentWidth := VisibleWidth(current)
		for _, word := range words[1:] {
			w := VisibleWidth(word)
			if currentWidth+1+w <= budget {
				current += " " + word
				currentWidth += 1 + w
				continue
			}
			out = append(out, prefix+current)
			current, currentWidth = word, w
		}
		out = append(out, prefix+current)
	}
	return out
}
