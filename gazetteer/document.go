// Package gazetteer turns a sorted division forest into a paginated,
// print-ready HTML document: a cover page with a table of contents
// followed by one page per non-leaf division listing its children.
package gazetteer

import (
	"fmt"
	"os"

	"github.com/healthgeo/gazetteer-tools/divisions"
)

// Document is the fully assembled gazetteer, ready for serialization
type Document struct {
	Title        string
	SourceName   string
	Version      string
	LeafHeadings []string
	Contents     []ContentLine
	Pages        []Page
}

// ContentLine is one cover-page entry giving a level's page range
type ContentLine struct {
	LevelName string
	Abbr      string
	Count     int
}

// Page describes one division's printed page. Code is the level
// abbreviation joined with the division's rank, e.g. "C12".
type Page struct {
	Code         string
	Ancestors    []Ancestor
	LevelName    string
	DivisionName string
	Listing      Listing
}

// Ancestor names one level of a page's ancestor chain
type Ancestor struct {
	LevelName string
	Name      string
}

// Listing holds a page's children. Rich listings carry formatted leaf
// rows rendered as a table; plain listings carry generic items.
type Listing struct {
	Rich  bool
	Items []Item
	Rows  []LeafRow
}

// Item is a generic child entry: name plus the child's own page code
type Item struct {
	Name string
	Code string
}

// LeafRow is one formatted leaf entry in a rich listing
type LeafRow struct {
	Name       string
	OtherNames []string
	ChiefLines []string
	Meaning    string
}

// LeafFormatter derives a rich row from a leaf division's source
// record. A nil formatter makes leaf children render as generic items.
type LeafFormatter func(row divisions.Record) LeafRow

// SourceVersion formats the modification time of the source file as
// the document version string, in UTC
func SourceVersion(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat source file: %w", err)
	}
	return info.ModTime().UTC().Format("2006-01-02 15:04:05 MST"), nil
}
