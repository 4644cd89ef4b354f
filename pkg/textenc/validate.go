package textenc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Problem is a line that could not be decoded.
type Problem struct {
	File string
	Line int
	Raw  []byte
}

// String formats the problem as the validator prints it.
// Raw is Go-quoted, so no byte is lost.
func (p Problem) String() string {
	return fmt.Sprintf("There was a decoding problem in file %s line %d : %q", p.File, p.Line, p.Raw)
}

// Validate decodes every line of r under enc and calls report for each line that fails.
// Lines are split after '\n' and numbered from 1. A failing line never stops the scan;
// only a read error does. It returns the number of lines read.
func Validate(name string, r io.Reader, enc Encoding, report func(Problem)) (int, error) {
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineNo++
			if _, decErr := enc.Decode(raw); decErr != nil {
				report(Problem{File: name, Line: lineNo, Raw: raw})
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lineNo, nil
			}
			return lineNo, fmt.Errorf("read line %d: %w", lineNo+1, err)
		}
	}
}
