// Package pattern turns the flat bit-string supplied on the command
// line into the rectangular rows the simulation core consumes.
package pattern

import "cellula/pkg/core"

// Split chunks a flat bit string into rows of the given width. The last
// row may be shorter when the string length is not a multiple of width.
// A non-positive width yields the whole string as a single row.
func Split(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}
	rows := make([]string, 0, (len(s)+width-1)/width)
	for start := 0; start < len(s); start += width {
		end := start + width
		if end > len(s) {
			end = len(s)
		}
		rows = append(rows, s[start:end])
	}
	return rows
}

// CenterOrigin returns the seeding origin that centers a pattern of the
// given dimensions on the grid origin.
func CenterOrigin(width, rows int) core.Point {
	return core.Pt(-width/2, -rows/2)
}
