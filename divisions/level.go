package divisions

import (
	"fmt"
	"strings"
)

// Level describes one tier of the administrative hierarchy: a display
// name, a short code used in page numbers, and the source CSV column.
type Level struct {
	Name   string
	Abbr   string
	Column string
}

// ParseLevelSpec parses a single "abbr/name/column" specification
func ParseLevelSpec(spec string) (Level, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return Level{}, fmt.Errorf("invalid level spec %q: expected abbr/name/column", spec)
	}
	for _, part := range parts {
		if part == "" {
			return Level{}, fmt.Errorf("invalid level spec %q: empty part", spec)
		}
	}
	return Level{Abbr: parts[0], Name: parts[1], Column: parts[2]}, nil
}

// ParseLevelSpecs parses command line level specifications in order,
// stopping at the first malformed one
func ParseLevelSpecs(specs []string) ([]Level, error) {
	levels := make([]Level, 0, len(specs))
	for _, spec := range specs {
		level, err := ParseLevelSpec(spec)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
