package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthgeo/gazetteer-tools/config"
	"github.com/healthgeo/gazetteer-tools/geojson"
	"github.com/healthgeo/gazetteer-tools/logging"
)

var version = "1.0.0"

const longHelp = `Fill the "name" property of every feature in a GeoJSON feature
collection that lacks one, copying the best available alternative:
the "name", "Name" and "NAME" spellings first, then the finest
admin-level name present (admin5Name/ADM5_NAME down to
admin0Name/ADM0_NAME). Features that already carry a name are left
untouched.

The output is rewritten with two-space indentation and sorted keys so
successive runs produce stable diffs.`

func main() {
	rootCmd := &cobra.Command{
		Use:     "geojson-names <input.json> <output.json>",
		Short:   "Fill missing feature names in a GeoJSON feature collection",
		Long:    longHelp,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if len(args) != 2 {
				return fmt.Errorf("expected <input.json> <output.json>, got %d argument(s)", len(args))
			}
			return runBackfill(args[0], args[1])
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBackfill(inPath, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg)

	_, err = geojson.Process(inPath, outPath)
	return err
}
