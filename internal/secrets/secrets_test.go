// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, CrossrefMailto, "  lab@example.org \n")
				writeFile(t, dir, "other-key", "value")
				return dir
			},
			want: Secrets{CrossrefMailto: "lab@example.org", "other-key": "value"},
		},
		{
			name: "missing directory is empty",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips blank files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, CrossrefMailto, "lab@example.org")
				writeFile(t, dir, "empty", "")
				writeFile(t, dir, "blank", " \n\t ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "x")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Secrets{CrossrefMailto: "lab@example.org"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, filepath.Dir(path), "file", "x")

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secrets directory")
}

func TestLoadUnreadableFileIsLogged(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")
	bad := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(bad, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })

	var logs bytes.Buffer
	got, err := Load(dir, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	assert.Equal(t, Secrets{"good-key": "value123"}, got)
	assert.Contains(t, logs.String(), "bad-key")
}

func TestGet(t *testing.T) {
	s := Secrets{CrossrefMailto: "stored@example.org"}

	assert.Equal(t, "flag@example.org", s.Get(CrossrefMailto, "flag@example.org"))
	assert.Equal(t, "stored@example.org", s.Get(CrossrefMailto, ""))
	assert.Equal(t, "", s.Get("absent", ""))
	assert.Equal(t, "", Secrets(nil).Get(CrossrefMailto, ""))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAddKeepsExistingOnBlankFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CrossrefMailto, "\n")
	s := Secrets{CrossrefMailto: "kept@example.org"}

	require.NoError(t, s.add(dir, CrossrefMailto))
	assert.Equal(t, "kept@example.org", s[CrossrefMailto])
	assert.Error(t, s.add(dir, "missing"))
}
