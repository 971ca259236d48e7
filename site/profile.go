// Package site carries the customizations for the shipped deployment:
// the default level schema, the catch-all-last sort order, and the
// rich village row formatting used on section pages.
package site

import (
	"strings"
	"unicode/utf8"

	"github.com/healthgeo/gazetteer-tools/divisions"
	"github.com/healthgeo/gazetteer-tools/gazetteer"
)

// Profile bundles the site-specific customization points the commands
// inject into the generic pipeline
type Profile struct {
	Title        string
	Levels       []divisions.Level
	SortKey      divisions.SortKey
	FormatLeaf   gazetteer.LeafFormatter
	LeafHeadings []string
}

// Default returns the shipped profile: the four-level District /
// Chiefdom / Section / Village schema, catch-all entries sorted last,
// and villages rendered as rich table rows. Title is left for the
// caller to fill from configuration.
func Default() Profile {
	return Profile{
		Levels: []divisions.Level{
			{Name: "District", Abbr: "D", Column: "loc_adm1"},
			{Name: "Chiefdom", Abbr: "C", Column: "loc_adm2"},
			{Name: "Section", Abbr: "S", Column: "loc_adm3"},
			{Name: "Village", Abbr: "V", Column: "VILLAGE_NAME"},
		},
		SortKey:    CatchAllLast,
		FormatLeaf: FormatVillageRow,
		LeafHeadings: []string{
			"Village name",
			"Other names",
			"Village chief",
			"Meaning of village name",
		},
	}
}

// catchAllSentinel compares greater than any ordinary division name
const catchAllSentinel = "~"

// CatchAllLast is the shipped sort key. Path elements equal to the
// catch-all names "OTHER" or "(other)" map to a sentinel that sorts
// after every ordinary name; all other elements compare naturally.
func CatchAllLast(path []string) []string {
	key := make([]string, len(path))
	for i, part := range path {
		if part == "OTHER" || part == "(other)" {
			key[i] = catchAllSentinel
		} else {
			key[i] = part
		}
	}
	return key
}

// maxOtherNameLength caps alternate and historical names so the
// listing columns keep their single-line layout
const maxOtherNameLength = 24

// fitLength truncates text to at most maxLength runes, replacing the
// tail with an ellipsis
func fitLength(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) > maxLength {
		return string(runes[:maxLength-3]) + "..."
	}
	return text
}

// FormatVillageRow derives the printed table row for one village from
// its source record. The village name and meaning come through as-is;
// alternate and historical names are length-fitted, with the
// historical one marked "(old)"; the chief's name drops a leading
// "Chief" honorific and wraps after the second word when the full
// name runs long. Missing optional columns produce empty cells.
func FormatVillageRow(row divisions.Record) gazetteer.LeafRow {
	leaf := gazetteer.LeafRow{
		Name:    row.Get("VILLAGE_NAME"),
		Meaning: row.Get("VILLAGE_NAME_MEANING"),
	}

	if alt := strings.TrimSpace(row.Get("ALT_VILLAGE_NAME")); alt != "" {
		leaf.OtherNames = append(leaf.OtherNames, fitLength(alt, maxOtherNameLength))
	}
	if hist := strings.TrimSpace(row.Get("HISTORICAL_NAME")); hist != "" {
		leaf.OtherNames = append(leaf.OtherNames, fitLength(hist, maxOtherNameLength)+" (old)")
	}

	chiefWords := strings.Fields(row.Get("CHIEF_NAME"))
	if len(chiefWords) > 0 && chiefWords[0] == "Chief" {
		chiefWords = chiefWords[1:]
	}
	switch {
	case len(chiefWords) > 2 && utf8.RuneCountInString(strings.Join(chiefWords, " ")) > 20:
		leaf.ChiefLines = []string{
			strings.Join(chiefWords[:2], " "),
			strings.Join(chiefWords[2:], " "),
		}
	case len(chiefWords) > 0:
		leaf.ChiefLines = []string{strings.Join(chiefWords, " ")}
	}

	return leaf
}
