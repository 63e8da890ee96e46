package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"picflow/internal/config"
	"picflow/internal/importer"
	"picflow/internal/logging"
	"picflow/internal/manifest"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var recursive bool
	var libraryFlag string

	cmd := &cobra.Command{
		Use:   "import <folder>...",
		Short: "Import media files from the given folders into the library",
		Long: `Import scans each folder for media files, resolves a capture date per file
(VID_YYYYMMDD filename pattern for video, EXIF DateTimeOriginal for images),
and moves them into <library>/<year>/<month>/<day>/. Byte-identical files are
imported once per run; name collisions with different content gain a -N
suffix. Files whose date cannot be resolved stay where they are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if libraryFlag != "" {
				expanded, err := config.ExpandPath(libraryFlag)
				if err != nil {
					return fmt.Errorf("resolve library path: %w", err)
				}
				cfg.Paths.LibraryDir = expanded
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Import.Recursive
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			var store *manifest.Store
			if cfg.Manifest.Enabled {
				store, err = manifest.Open(cfg.Manifest.Path)
				if err != nil {
					return fmt.Errorf("open manifest: %w", err)
				}
				defer store.Close()
			}

			sources := make([]string, 0, len(args))
			for _, arg := range args {
				expanded, err := config.ExpandPath(arg)
				if err != nil {
					return fmt.Errorf("resolve source path: %w", err)
				}
				sources = append(sources, expanded)
			}

			imp := importer.New(cfg, store, logger)
			stats, err := imp.Run(cmd.Context(), importer.Options{
				Sources:   sources,
				Recursive: recursive,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderStats(stats))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories of each folder")
	cmd.Flags().StringVarP(&libraryFlag, "library", "l", "", "Library root (overrides paths.library_dir)")
	return cmd
}

func renderStats(stats importer.Stats) string {
	rows := [][]string{
		{"Scanned", strconv.Itoa(stats.Scanned)},
		{"Unique", strconv.Itoa(stats.Unique)},
		{"Moved", strconv.Itoa(stats.Moved)},
		{"Renamed", strconv.Itoa(stats.Renamed)},
		{"Duplicates skipped", strconv.Itoa(stats.Duplicates)},
		{"Identical skipped", strconv.Itoa(stats.Identical)},
		{"No capture date", strconv.Itoa(stats.NoDate)},
		{"Failures", strconv.Itoa(stats.Failures)},
	}
	return renderTable(
		[]string{"Result", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}
