// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records encodes fetched paper records as JSON or YAML and reads
// saved record files back, so a digest can be re-rendered without a network
// round trip.
package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/journal-digest/pkg/types"
)

// Format selects how records are written to stdout.
type Format string

const (
	FormatFrame Format = "frame"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value. The empty string means frame.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatFrame:
		return FormatFrame, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use frame, json or yaml", s)
	}
}

// Encode writes papers to w as JSON or YAML. Frame output belongs to the
// render package and is rejected here.
func Encode(w io.Writer, papers []types.PaperRecord, format Format) error {
	if papers == nil {
		papers = []types.PaperRecord{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(papers); err != nil {
			return fmt.Errorf("marshaling records: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("records cannot be encoded as %q", format)
	}
}

// ReadFile loads a list of records saved by Encode. Files ending in .json
// are parsed as JSON; everything else is parsed as YAML.
func ReadFile(path string) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	var papers []types.PaperRecord
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &papers)
	} else {
		err = yaml.Unmarshal(data, &papers)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing records file %s: %w", path, err)
	}

	for i := range papers {
		if !papers[i].HasAbstract() {
			papers[i].Abstract = types.AbstractUnavailable
		}
	}
	return papers, nil
}
