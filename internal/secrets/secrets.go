// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads values that should stay out of committed config
// files from a directory of plain-text files. Each file is one value: the
// filename is the key and the trimmed contents are the value.
package secrets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Dir is where the CLI looks for secret files.
const Dir = ".secrets/"

// CrossrefMailto is the key holding the contact address sent to Crossref.
const CrossrefMailto = "crossref-mailto"

// Secrets maps key names to values.
type Secrets map[string]string

// Get returns explicit when it is non-empty, otherwise the stored value for
// key, otherwise "".
func (s Secrets) Get(key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s[key]
}

// Load reads every secret file in dir. A missing directory yields an empty
// set. Dotfiles, subdirectories and blank files are skipped; unreadable
// files are logged and skipped.
func Load(dir string, logger *slog.Logger) (Secrets, error) {
	s := Secrets{}
	entries, err := os.ReadDir(dir)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !isSecretFile(entry) {
			continue
		}
		if err := s.add(dir, entry.Name()); err != nil && logger != nil {
			logger.Warn("could not read secret", "name", entry.Name(), "err", err)
		}
	}
	return s, nil
}

// add stores the trimmed contents of dir/name under name unless blank.
func (s Secrets) add(dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if value := strings.TrimSpace(string(data)); value != "" {
		s[name] = value
	}
	return nil
}

func isSecretFile(entry fs.DirEntry) bool {
	return !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".")
}
