// Package format renders generated passwords to a writer, either one per
// line or as a column-major grid.
package format

import (
	"fmt"
	"io"
)

// Columns is the fixed grid width. Batches of Columns or fewer passwords
// are printed one per line even when column mode is on.
const Columns = 5

// Print writes passwords to w. With columns enabled and more than Columns
// entries, the batch is laid out column-major: each column is filled
// top-to-bottom before the next starts, and each column is left-justified
// to the width of its longest entry.
func Print(w io.Writer, passwords []string, columns bool) {
	if !columns || len(passwords) <= Columns {
		for _, pw := range passwords {
			fmt.Fprintln(w, pw)
		}
		return
	}

	rows := (len(passwords) + Columns - 1) / Columns
	grid := make([][]string, rows)
	for i, pw := range passwords {
		grid[i%rows] = append(grid[i%rows], pw)
	}

	widths := make([]int, Columns)
	for _, row := range grid {
		for col, entry := range row {
			if len(entry) > widths[col] {
				widths[col] = len(entry)
			}
		}
	}

	for _, row := range grid {
		for col, entry := range row {
			if col > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%-*s", widths[col], entry)
		}
		fmt.Fprintln(w)
	}
}
