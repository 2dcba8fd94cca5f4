// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/journal-digest/pkg/types"
)

// RenderAll formats every paper concurrently. Blocks are returned in the
// order of papers, whatever order the goroutines finish in.
func RenderAll(papers []types.PaperRecord, opts types.DisplayOptions) [][]string {
	blocks := make([][]string, len(papers))

	var wg sync.WaitGroup
	for i, p := range papers {
		wg.Add(1)
		go func(i int, p types.PaperRecord) {
			defer wg.Done()
			blocks[i] = FormatPaper(p, opts)
		}(i, p)
	}
	wg.Wait()

	return blocks
}

// Print writes the blocks to w with one blank line between consecutive blocks.
func Print(w io.Writer, blocks [][]string) error {
	for i, block := range blocks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing separator before paper %d: %w", i+1, err)
			}
		}
		for _, line := range block {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing paper %d: %w", i+1, err)
			}
		}
	}
	return nil
}
