// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultDisplayWidth is the fixed frame width in terminal columns.
const DefaultDisplayWidth = 100

// DisplayOptions controls how papers are rendered. It is built once per run
// and passed down explicitly; nothing in the renderer reads global state.
type DisplayOptions struct {
	// TitleOnly suppresses the abstract section.
	TitleOnly bool `json:"title_only" yaml:"title_only"`

	// Width is the visible width of every framed line, borders included.
	Width int `json:"width" yaml:"width"`

	// Indent is prepended to every wrapped content line.
	Indent string `json:"indent" yaml:"indent"`

	// Color enables ANSI colors for the date and section labels. In the
	// config file display.color also accepts auto, always or never.
	Color bool `json:"color" yaml:"color"`
}

// DefaultDisplayOptions returns the options used when nothing is configured.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		Width: DefaultDisplayWidth,
		Color: true,
	}
}

// HTTPConfig holds shared HTTP settings for the fetch layer.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CrossrefConfig selects which journal is queried and how many works come back.
type CrossrefConfig struct {
	HTTPConfig `yaml:",inline"`

	// ISSN identifies the journal (e.g. "1522-2594").
	ISSN string `json:"issn" yaml:"issn"`

	// Rows is the number of works requested in the single API call.
	Rows int `json:"rows" yaml:"rows"`

	// Mailto is the contact address sent for Crossref's polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`
}

// Config groups everything one run of the digest needs.
type Config struct {
	Crossref CrossrefConfig `json:"crossref" yaml:"crossref"`
	Display  DisplayOptions `json:"display" yaml:"display"`
}
