package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{"the cat sat", []string{"the", "cat", "sat"}},
		{"  the \t cat  ", []string{"the", "cat"}},
		{"one", []string{"one"}},
		{"", []string{}},
		{"   ", []string{}},
		{"a\u3000b", []string{"a", "b"}},
		{"a\x1fb\x1e", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := Words(tt.content)
		assert.Equal(t, tt.want, got, "content %q", tt.content)
		for _, w := range got {
			assert.NotEmpty(t, w)
		}
	}
}

func TestWords_MatchesSplittingTheFullLine(t *testing.T) {
	// Splitting the whole marker line and dropping the first field gives the same tokens.
	line := `\tx   the   cat sat  `
	ml, ok := Classify(line)
	assert.True(t, ok)
	assert.Equal(t, Words(line)[1:], Words(ml.Content))
}

func TestValue(t *testing.T) {
	assert.Equal(t, "black cat", Value("  black cat "))
	assert.Equal(t, "cat", Value("cat"))
	assert.Equal(t, "black cat", Value("\x1cblack cat\x1d"))
}

func TestCharacters(t *testing.T) {
	assert.Equal(t, []string{`\`, "t", "x", " ", "é", "\n"}, Characters("\\tx é\n"))
	assert.Empty(t, Characters(""))
}

func TestMode(t *testing.T) {
	assert.Equal(t, "words", ModeWords.String())
	assert.Equal(t, "values", ModeValues.String())
	assert.Equal(t, "characters", ModeCharacters.String())
	assert.Equal(t, "mode(9)", Mode(9).String())

	assert.True(t, ModeWords.UsesTier())
	assert.True(t, ModeValues.UsesTier())
	assert.False(t, ModeCharacters.UsesTier())

	assert.Equal(t, []string{"a", "b"}, ModeWords.Units("a b"))
	assert.Equal(t, []string{"a b"}, ModeValues.Units(" a b "))
	assert.Equal(t, []string{"a", " ", "b"}, ModeCharacters.Units("a b"))
}
