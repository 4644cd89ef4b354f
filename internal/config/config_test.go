package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tbx/pkg/domain"
)

func TestWithArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		needsTier bool
		wantOK    bool
		encoding  string
		tier      string
		files     []string
	}{
		{"tier and file", []string{"tx", "a.txt"}, true, true, "utf-8", "tx", []string{"a.txt"}},
		{"encoding option", []string{"encoding=latin-1", "tx", "a.txt", "b.txt"}, true, true, "latin-1", "tx", []string{"a.txt", "b.txt"}},
		{"encoding taken as tier", []string{"encoding=latin-1", "a.txt"}, true, true, "utf-8", "encoding=latin-1", []string{"a.txt"}},
		{"missing file", []string{"tx"}, true, false, "", "", nil},
		{"nothing", nil, true, false, "", "", nil},
		{"files only", []string{"a.txt", "b.txt"}, false, true, "utf-8", "", []string{"a.txt", "b.txt"}},
		{"files with encoding", []string{"encoding=cp1252", "a.txt"}, false, true, "cp1252", "", []string{"a.txt"}},
		{"lone encoding is a file", []string{"encoding=cp1252"}, false, true, "utf-8", "", []string{"encoding=cp1252"}},
		{"no files", nil, false, false, "", "", nil},
		{"encoding with space is a tier", []string{"encoding=a b", "tx", "a.txt"}, true, true, "utf-8", "encoding=a b", []string{"tx", "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := Default().WithArgs(tt.args, tt.needsTier)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.encoding, cfg.Encoding)
			assert.Equal(t, tt.tier, cfg.Tier)
			assert.Equal(t, tt.files, cfg.Files)
		})
	}
}

func TestWithArgs_DoesNotAliasInput(t *testing.T) {
	args := []string{"tx", "a.txt"}
	cfg, ok := Default().WithArgs(args, true)
	require.True(t, ok)

	args[1] = "changed"
	assert.Equal(t, []string{"a.txt"}, cfg.Files)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("encoding: latin-1\nformat: table\nquiet: true\n"), 0o644))

	cfg, err := Load(path, true, Default())
	require.NoError(t, err)

	assert.Equal(t, "latin-1", cfg.Encoding)
	assert.Equal(t, "table", cfg.Format)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "auto", cfg.Color)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(path, false, Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true, Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("encodng: utf-8\n"), 0o644))

	_, err := Load(path, true, Default())
	assert.ErrorContains(t, err, "encodng")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed\n"), 0o644))

	_, err := Load(path, true, Default())
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Color = "sometimes"
	assert.ErrorContains(t, cfg.Validate(), "color")

	cfg = Default()
	cfg.Encoding = "klingon"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrUnknownEncoding)
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.db"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cfg := Default()
	cfg.Files = []string{filepath.Join(dir, "*.txt"), filepath.Join(dir, "missing-*.sfm"), "plain.txt"}

	got, err := cfg.ExpandGlobs()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), "plain.txt"}, got.Files)
}
