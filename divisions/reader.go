package divisions

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/healthgeo/gazetteer-tools/logging"
)

// ReadDivisions parses CSV input with a header row and builds the
// division forest for the given level schema. For each row it descends
// the schema in order, normalizing the value of each level's column:
// an existing same-named child is reused at non-leaf levels, the leaf
// level always creates a new division, and a blank value ends the
// row's descent without error. Returns the forest plus one ID list per
// level in first-encountered order.
func ReadDivisions(r io.Reader, levels []Level) (*Forest, [][]ID, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}

	var source io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		// Field exports are often Latin-1 encoded
		logging.Debug("Input is not valid UTF-8, decoding as ISO 8859-1")
		source = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	csvReader := csv.NewReader(source)

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	// A repeated header name keeps its rightmost column
	for i, name := range header {
		columnIndex[name] = i
	}

	var missing []string
	for _, level := range levels {
		if _, ok := columnIndex[level.Column]; !ok {
			missing = append(missing, level.Column)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing column(s) %s in header", strings.Join(missing, ", "))
	}

	forest := New()
	lists := make([][]ID, len(levels))
	rowsRead := 0
	truncatedRows := 0

	for {
		row, readErr := csvReader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", readErr)
		}
		rowsRead++

		record := make(Record, len(columnIndex))
		for name, i := range columnIndex {
			record[name] = row[i]
		}

		parent := Root
		for levelIndex, level := range levels {
			name := NormalizeName(record.Get(level.Column))
			if name == "" {
				// A blank value ends this row's descent
				truncatedRows++
				break
			}

			child, found := ID(0), false
			if levelIndex < len(levels)-1 {
				// Leaf rows never merge, duplicates stay distinct
				child, found = forest.FindChild(parent, name)
			}
			if !found {
				child = forest.AddChild(parent, name, record)
				lists[levelIndex] = append(lists[levelIndex], child)
			}
			parent = child
		}
	}

	logArgs := []any{"rows", rowsRead, "truncatedRows", truncatedRows}
	for i, level := range levels {
		logArgs = append(logArgs, level.Name, len(lists[i]))
	}
	logging.Info("Division tree built", logArgs...)

	return forest, lists, nil
}
