// Package menutree flattens the division forest into the column
// oriented, headerless CSV pasted into the locations tab of the
// patient data entry spreadsheet.
package menutree

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/healthgeo/gazetteer-tools/divisions"
)

// Columns builds one column per parent division: the root followed by
// every division at the non-leaf levels, in rank order. A column
// starts with the division's "/"-joined path (empty for the root) and
// continues with the division's children in sorted order. Columns
// whose children sit at the leaf level gain a trailing "(other)" entry
// when the data does not already provide one, so every dropdown offers
// a catch-all choice.
func Columns(f *divisions.Forest, levels []divisions.Level, sortedLists [][]divisions.ID, key divisions.SortKey) [][]string {
	parents := make([][]divisions.ID, 0, len(sortedLists))
	parents = append(parents, []divisions.ID{divisions.Root})
	parents = append(parents, sortedLists[:len(sortedLists)-1]...)

	var columns [][]string
	for _, list := range parents {
		for _, id := range list {
			node := f.Node(id)
			column := []string{strings.Join(node.Path, "/")}
			for _, childID := range divisions.SortByPath(f, node.Children, key) {
				column = append(column, f.Node(childID).Name)
			}
			if len(node.Path) == len(levels)-1 && !slices.Contains(column[1:], "(other)") {
				column = append(column, "(other)")
			}
			columns = append(columns, column)
		}
	}
	return columns
}

// Transpose turns columns into rows, padding shorter columns with
// empty cells so the result is rectangular
func Transpose(columns [][]string) [][]string {
	if len(columns) == 0 {
		return nil
	}

	height := 0
	for _, column := range columns {
		if len(column) > height {
			height = len(column)
		}
	}

	rows := make([][]string, height)
	for i := range rows {
		row := make([]string, len(columns))
		for j, column := range columns {
			if i < len(column) {
				row[j] = column[i]
			}
		}
		rows[i] = row
	}
	return rows
}

// WriteCSV writes the transposed columns as headerless CSV rows
func WriteCSV(w io.Writer, columns [][]string) error {
	writer := csv.NewWriter(w)
	for _, row := range Transpose(columns) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write menu tree row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write menu tree: %w", err)
	}
	return nil
}
