package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[build]
max_size = 120
bundle = false
target = "recode"
`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 120, s.MaxSize)
	require.False(t, s.Bundle)
	require.Equal(t, TargetRecode, s.Target)
	require.Equal(t, "fire", s.Source)
	require.Equal(t, RankNone, s.Rank)
	require.True(t, s.EmitsKindling())
}

func TestLoadEmptyIsDefault(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "")
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), s)
	require.False(t, s.EmitsKindling())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[build]\nmax_sise = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown keys: build.max_sise")
}

func TestLoadValidates(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[build]\nmax_size = 0\ntarget = \"ftp\"\nrank = \"king\"\n")
	_, err := Load(path)
	var inv *InvalidError
	require.True(t, errors.As(err, &inv))
	require.Equal(t, path, inv.Path)
	require.Len(t, inv.Problems, 3)
}

func TestLoadBadSyntax(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[build\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse TOML")
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "fire", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, FileName), path)

	_, ok, err = Find(t.TempDir())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEncodeRoundTrip(t *testing.T) {
	want := Default()
	want.MaxSize = 77
	data, err := Encode(want)
	require.NoError(t, err)

	path := writeManifest(t, t.TempDir(), string(data))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
