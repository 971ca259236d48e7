package gazetteer

import (
	"fmt"

	"github.com/healthgeo/gazetteer-tools/divisions"
)

// Input bundles everything BuildDocument needs: the populated forest
// with its sorted per-level lists and ranks, the source metadata shown
// on the cover, and the site customizations.
type Input struct {
	Title        string
	SourceName   string
	Version      string
	Levels       []divisions.Level
	Forest       *divisions.Forest
	Sorted       [][]divisions.ID
	Ranks        divisions.Ranks
	SortKey      divisions.SortKey
	FormatLeaf   LeafFormatter
	LeafHeadings []string
}

// BuildDocument assembles the document model. One page is produced per
// division at every non-leaf level, in level order then rank order,
// each listing the division's children sorted with the site sort key.
// Children at the leaf level render as rich rows when a leaf formatter
// is configured.
func BuildDocument(in Input) *Document {
	doc := &Document{
		Title:        in.Title,
		SourceName:   in.SourceName,
		Version:      in.Version,
		LeafHeadings: in.LeafHeadings,
	}

	for i, level := range in.Levels[:len(in.Levels)-1] {
		doc.Contents = append(doc.Contents, ContentLine{
			LevelName: level.Name,
			Abbr:      level.Abbr,
			Count:     len(in.Sorted[i]),
		})
	}

	for i := 0; i < len(in.Levels)-1; i++ {
		level := in.Levels[i]
		childLevel := in.Levels[i+1]
		childIsLeaf := i+1 == len(in.Levels)-1

		for _, id := range in.Sorted[i] {
			node := in.Forest.Node(id)

			page := Page{
				Code:         fmt.Sprintf("%s%d", level.Abbr, in.Ranks[id]),
				LevelName:    level.Name,
				DivisionName: node.Name,
			}
			for depth, ancestorName := range node.Path[:len(node.Path)-1] {
				page.Ancestors = append(page.Ancestors, Ancestor{
					LevelName: in.Levels[depth].Name,
					Name:      ancestorName,
				})
			}

			children := divisions.SortByPath(in.Forest, node.Children, in.SortKey)
			if childIsLeaf && in.FormatLeaf != nil {
				page.Listing.Rich = true
				for _, childID := range children {
					page.Listing.Rows = append(page.Listing.Rows,
						in.FormatLeaf(in.Forest.Node(childID).Row))
				}
			} else {
				for _, childID := range children {
					page.Listing.Items = append(page.Listing.Items, Item{
						Name: in.Forest.Node(childID).Name,
						Code: fmt.Sprintf("%s%d", childLevel.Abbr, in.Ranks[childID]),
					})
				}
			}

			doc.Pages = append(doc.Pages, page)
		}
	}

	return doc
}
