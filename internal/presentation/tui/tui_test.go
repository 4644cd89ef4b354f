package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, ColorAuto, false)

	p.File("a.txt")
	p.File("b.txt")

	assert.Equal(t, "Processing file: a.txt\nProcessing file: b.txt\n", buf.String())
}

func TestProgress_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, ColorNever, true)

	p.File("a.txt")
	assert.Empty(t, buf.String())

	p.Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestProgress_Always(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, ColorAlways, false)

	p.File("a.txt")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "a.txt")
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer("notty")
	require.NoError(t, err)

	out, err := render("| Type | Frequency |\n| --- | --- |\n| cat | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "cat")
	assert.Contains(t, out, "Frequency")
}
