// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// Box-drawing glyphs used by Frame.
const (
	cornerTopLeft     = "┌"
	cornerTopRight    = "┐"
	cornerBottomLeft  = "└"
	cornerBottomRight = "┘"
	edgeHorizontal    = "─"
	edgeVertical      = "│"
)

// Frame draws a box of the given visible width around pre-wrapped lines.
// Content lines are written as "│ " + line + padding + " │". Color codes in
// a line are emitted unchanged but do not count toward its width. A line
// wider than width-4 gets no padding and pushes its right border out.
func Frame(lines []string, width int) []string {
	fill := max(0, width-2)
	out := make([]string, 0, len(lines)+2)

	out = append(out, cornerTopLeft+strings.Repeat(edgeHorizontal, fill)+cornerTopRight)
	for _, line := range lines {
		if line == "" {
			out = append(out, edgeVertical+strings.Repeat(" ", fill)+edgeVertical)
			continue
		}
		padding := max(0, width-4-VisibleWidth(line))
		out = append(out, edgeVertical+" "+line+strings.Repeat(" ", padding)+" "+edgeVertical)
	}
	out = append(out, cornerBottomLeft+strings.Repeat(edgeHorizontal, fill)+cornerBottomRight)
	return out
}
