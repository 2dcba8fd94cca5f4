// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/fatih/color"

// Palette colors the date and section labels of a rendered paper. Each
// color is enabled or disabled on the instance, so a palette never depends
// on the process-wide color.NoColor switch.
type Palette struct {
	Date  *color.Color
	Label *color.Color
}

// NewPalette returns the default palette, with escape codes only when
// enabled is true.
func NewPalette(enabled bool) Palette {
	p := Palette{
		Date:  color.New(color.FgYellow),
		Label: color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.Date, p.Label} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
