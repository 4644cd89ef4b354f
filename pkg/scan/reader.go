package scan

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Reader yields the lines of a decoded text stream.
// Each line keeps its terminator; the last line may have none.
type Reader struct {
	br    *bufio.Reader
	err   error
	count int
}

// NewReader wraps r. The stream must already be decoded to UTF-8.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Lines returns a single-use sequence over the remaining lines.
// Iteration stops at end of stream or on the first read error, see Err.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.err == nil {
			line, err := r.br.ReadString('\n')
			if err != nil {
				if !errors.Is(err, io.EOF) {
					r.err = err
					return
				}
				r.err = io.EOF
			}
			if line == "" {
				return
			}
			r.count++
			if !yield(line) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error met while reading.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}

// Count returns the number of lines yielded so far.
func (r *Reader) Count() int {
	return r.count
}

// Tier yields the content of every line in lines whose marker is exactly tier.
func Tier(lines iter.Seq[string], tier string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			ml, ok := Classify(line)
			if !ok || !ml.Is(tier) {
				continue
			}
			if !yield(ml.Content) {
				return
			}
		}
	}
}

// Markers yields the marker of every marker line in lines, content ignored.
func Markers(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if ml, ok := Classify(line); ok {
				if !yield(ml.Marker) {
					return
				}
			}
		}
	}
}
