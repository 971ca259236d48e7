package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

const longHelp = `Generate a print-ready gazetteer and a data-entry menu tree from a
CSV export of administrative divisions.

Arguments:
  <divisions.csv>   source CSV with one row per finest-level division
  <gazetteer.html>  HTML gazetteer output file, paginated for printing
  <menutree.csv>    CSV menu-tree output file for spreadsheet dropdowns

Each optional level-spec is abbreviation/name/column and the full list
replaces the built-in four-level schema, for example:

  gazetteer divisions.csv gazetteer.html locations.csv \
    D/District/loc_adm1 C/Chiefdom/loc_adm2 S/Section/loc_adm3 V/Village/VILLAGE_NAME

Levels are ordered coarsest to finest. The last level is the leaf
level: its divisions get no pages of their own and are listed on their
parent's pages instead.`

func main() {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:     "gazetteer <divisions.csv> <gazetteer.html> <menutree.csv> [level-spec ...]",
		Short:   "Generate a gazetteer document and location menu tree from a divisions CSV",
		Long:    longHelp,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if len(args) < 3 {
				return fmt.Errorf("expected <divisions.csv> <gazetteer.html> <menutree.csv>, got %d argument(s)", len(args))
			}
			opts.inputPath = args[0]
			opts.htmlPath = args[1]
			opts.menuTreePath = args[2]
			opts.levelSpecs = args[3:]
			return runGazetteer(opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.list, "list", false, "Print the numbered division listing to stdout after generation")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
