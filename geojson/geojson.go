// Package geojson backfills the "name" property map dashboards expect
// on every feature of a feature collection, using the best available
// alternative naming property.
package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/healthgeo/gazetteer-tools/logging"
)

// nameKeys lists the fallback properties from coarsest to finest, in
// two naming conventions per admin level, ending with the generic
// name spellings. The search runs in reverse so the most specific
// naming wins: name over Name over NAME over admin5Name and so on
// down to ADM0_NAME.
var nameKeys = buildNameKeys()

func buildNameKeys() []string {
	keys := make([]string, 0, 15)
	for i := 0; i <= 5; i++ {
		keys = append(keys, fmt.Sprintf("ADM%d_NAME", i), fmt.Sprintf("admin%dName", i))
	}
	return append(keys, "NAME", "Name", "name")
}

// truthy reports whether a decoded JSON value counts as a usable name
// source: null, false, zero, empty strings, arrays and objects are all
// falsy.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// Stats summarizes one backfill run
type Stats struct {
	Features     int
	Filled       int
	AlreadyNamed int
	Unnamed      int
}

// AddNames walks the collection's features and fills a missing or
// falsy "name" property from the highest-priority truthy fallback
// key. Features without a non-empty properties object are left
// untouched. The document is modified in place.
func AddNames(doc any) (Stats, error) {
	var stats Stats

	root, ok := doc.(map[string]any)
	if !ok {
		return stats, fmt.Errorf("input is not a JSON object")
	}
	features, ok := root["features"].([]any)
	if !ok {
		return stats, fmt.Errorf("input has no features array")
	}

	for _, entry := range features {
		stats.Features++

		feature, ok := entry.(map[string]any)
		if !ok {
			stats.Unnamed++
			continue
		}
		props, ok := feature["properties"].(map[string]any)
		if !ok || len(props) == 0 {
			stats.Unnamed++
			continue
		}
		if truthy(props["name"]) {
			stats.AlreadyNamed++
			continue
		}

		filled := false
		for i := len(nameKeys) - 1; i >= 0; i-- {
			if value := props[nameKeys[i]]; truthy(value) {
				props["name"] = value
				filled = true
				break
			}
		}
		if filled {
			stats.Filled++
		} else {
			stats.Unnamed++
		}
	}

	return stats, nil
}

// Process reads a feature collection, backfills names and writes the
// result pretty-printed with two-space indentation and sorted keys so
// successive runs diff cleanly. The output is rendered fully in memory
// first, so a failed run leaves no output file.
func Process(inPath, outPath string) (Stats, error) {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return Stats{}, fmt.Errorf("failed to parse %s: %w", inPath, err)
	}

	stats, err := AddNames(doc)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", inPath, err)
	}

	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return stats, fmt.Errorf("failed to serialize %s: %w", outPath, err)
	}

	if err := os.WriteFile(outPath, out.Bytes(), 0644); err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logging.Info("Feature names backfilled",
		"input", inPath,
		"output", outPath,
		"features", stats.Features,
		"filled", stats.Filled,
		"alreadyNamed", stats.AlreadyNamed,
		"unnamed", stats.Unnamed,
	)

	return stats, nil
}
