package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(file, []byte("\\_sh v3.0\n\\tx a b a\n\\ge x\n"), 0o644))

	t.Run("usage without files", func(t *testing.T) {
		out, errOut, err := execute(t, "types", "tx")
		require.NoError(t, err)
		assert.Equal(t, "Please provide the name of the Toolbox tier and the name(s) of the file(s) to be searched!\n", out)
		assert.Empty(t, errOut)
	})

	t.Run("usage without arguments", func(t *testing.T) {
		out, _, err := execute(t, "markers")
		require.NoError(t, err)
		assert.Equal(t, "Please provide the name(s) of the file(s) to be searched for Toolbox markers!\n", out)
	})

	t.Run("types", func(t *testing.T) {
		out, errOut, err := execute(t, "types", "encoding=utf8", "tx", file)
		require.NoError(t, err)
		assert.Equal(t, "3 tokens found in tier tx\n2 distinct types in tier tx\nType/token ratio: 0.6667\n\nType\tFrequency\na\t2\nb\t1\n", out)
		assert.Equal(t, "Processing file: "+file+"\n", errOut)
	})

	t.Run("missing file", func(t *testing.T) {
		out, _, err := execute(t, "markers", filepath.Join(dir, "nope.txt"))
		require.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("version", func(t *testing.T) {
		out, _, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "tbx version ")
	})
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tbx.yaml"), []byte("encoding: latin-1\nformat: json\n"), 0o644))

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "latin-1", cfg.Encoding)
	assert.Equal(t, "json", cfg.Format)
}
