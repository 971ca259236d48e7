package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/healthgeo/gazetteer-tools/config"
	"github.com/healthgeo/gazetteer-tools/divisions"
	"github.com/healthgeo/gazetteer-tools/gazetteer"
	"github.com/healthgeo/gazetteer-tools/logging"
	"github.com/healthgeo/gazetteer-tools/menutree"
	"github.com/healthgeo/gazetteer-tools/site"
)

type runOptions struct {
	inputPath    string
	htmlPath     string
	menuTreePath string
	levelSpecs   []string
	list         bool
}

// runGazetteer executes the full pipeline: read and normalize the
// divisions CSV, sort and number every division, then write the HTML
// gazetteer and the menu-tree CSV. Level specs are validated before
// any file is touched, and both outputs are rendered in memory so a
// failed run leaves no output file behind.
func runGazetteer(opts runOptions) error {
	profile := site.Default()
	if len(opts.levelSpecs) > 0 {
		levels, err := divisions.ParseLevelSpecs(opts.levelSpecs)
		if err != nil {
			return err
		}
		profile.Levels = levels
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg)
	profile.Title = cfg.DocumentTitle

	input, err := os.Open(opts.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", opts.inputPath, err)
	}
	defer input.Close()

	forest, lists, err := divisions.ReadDivisions(input, profile.Levels)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.inputPath, err)
	}

	sorted, ranks := divisions.Number(forest, lists, profile.SortKey)

	sourceVersion, err := gazetteer.SourceVersion(opts.inputPath)
	if err != nil {
		return err
	}

	doc := gazetteer.BuildDocument(gazetteer.Input{
		Title:        profile.Title,
		SourceName:   filepath.Base(opts.inputPath),
		Version:      sourceVersion,
		Levels:       profile.Levels,
		Forest:       forest,
		Sorted:       sorted,
		Ranks:        ranks,
		SortKey:      profile.SortKey,
		FormatLeaf:   profile.FormatLeaf,
		LeafHeadings: profile.LeafHeadings,
	})

	var html bytes.Buffer
	if err := gazetteer.WriteHTML(&html, doc); err != nil {
		return err
	}

	columns := menutree.Columns(forest, profile.Levels, sorted, profile.SortKey)
	var menuCSV bytes.Buffer
	if err := menutree.WriteCSV(&menuCSV, columns); err != nil {
		return err
	}

	if err := os.WriteFile(opts.htmlPath, html.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.htmlPath, err)
	}
	if err := os.WriteFile(opts.menuTreePath, menuCSV.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.menuTreePath, err)
	}

	logging.Info("Gazetteer generated",
		"source", opts.inputPath,
		"pages", len(doc.Pages),
		"gazetteer", opts.htmlPath,
		"menuTree", opts.menuTreePath,
	)

	if opts.list {
		writeListing(os.Stdout, forest, profile.Levels, sorted, ranks)
	}

	return nil
}

// writeListing prints one block per level: a blank line, the level
// name, then the level's divisions as "<abbr><rank>. <name>" lines in
// sorted order.
func writeListing(w io.Writer, f *divisions.Forest, levels []divisions.Level, sorted [][]divisions.ID, ranks divisions.Ranks) {
	for i, level := range levels {
		fmt.Fprintln(w)
		fmt.Fprintln(w, level.Name)
		for _, id := range sorted[i] {
			fmt.Fprintf(w, "%s%d. %s\n", level.Abbr, ranks[id], f.Node(id).Name)
		}
	}
}
