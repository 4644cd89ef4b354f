/*
Package scan implements the line grammar of Toolbox files.

A marker line is a backslash, a run of non-whitespace characters (the marker), at
least one whitespace character and the rest of the line (the content). Lines that
do not follow this grammar are not errors; they are skipped by every consumer.

# Components

  - Classify: Recognises a marker line and splits it into marker and content.
  - Reader: Iterates the lines of a decoded stream, keeping line terminators.
  - Tier: Filters a line sequence down to the contents of one tier.
  - Words, Value, Characters: The three tokenization policies selected by Mode.

# Usage

	r := scan.NewReader(decoded)
	for content := range scan.Tier(r.Lines(), "tx") {
		for _, w := range scan.Words(content) {
			table.Observe(w)
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
*/
package scan
