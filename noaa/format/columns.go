package format

import "strings"

// Column is a fixed-width field: Offset is the 0-based character position
// where the field starts, Length the number of characters it spans.
type Column struct {
	Name   string
	Offset int
	Length int
}

// Shift returns the same column moved n characters to the right.
// Used to address the repeating day slots of the daily format.
func (c Column) Shift(n int) Column {
	c.Offset += n
	return c
}

// Columns is a line split into characters, ready for positional slicing
type Columns []rune

func NewColumns(line string) Columns {
	return Columns([]rune(line))
}

// Slice returns the trimmed text found at the column position.
// Lines shorter than the column return whatever is left, possibly "".
func (cols Columns) Slice(c Column) string {
	start := min(c.Offset, len(cols))
	end := min(c.Offset+c.Length, len(cols))
	return strings.TrimSpace(string(cols[start:end]))
}

// Slice is the one-off version of Columns.Slice
func Slice(line string, c Column) string {
	return NewColumns(line).Slice(c)
}
