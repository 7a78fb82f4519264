package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/DrCognito/StaticAnalysisSite/internal/cache"
	"github.com/DrCognito/StaticAnalysisSite/internal/export"
	"github.com/DrCognito/StaticAnalysisSite/internal/logging"
)

func (a *app) newFreezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Export every page as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, _ := cmd.Flags().GetBool("reset-manifest")
			return a.freeze(cmd.Context(), cmd.OutOrStdout(), reset)
		},
	}

	cmd.Flags().StringP("out", "o", "", "output directory")
	cmd.Flags().Bool("incremental", false, "skip pages unchanged since the last export")
	cmd.Flags().Bool("copy-plots", true, "copy plot images into the export")
	cmd.Flags().Bool("reset-manifest", false, "forget recorded page hashes so every page is rewritten")
	_ = a.v.BindPFlag("export.output_dir", cmd.Flags().Lookup("out"))
	_ = a.v.BindPFlag("export.incremental", cmd.Flags().Lookup("incremental"))
	_ = a.v.BindPFlag("export.copy_plots", cmd.Flags().Lookup("copy-plots"))

	return cmd
}

func (a *app) freeze(ctx context.Context, w io.Writer, reset bool) error {
	site, err := a.openServer(true)
	if err != nil {
		return err
	}

	var manifest *cache.Manifest
	if a.cfg.Export.Incremental || reset {
		cfg := cache.DefaultConfig()
		cfg.BadgerPath = a.cfg.Export.ManifestPath
		c, err := cache.New(cfg)
		if err != nil {
			return fmt.Errorf("open export manifest: %w", err)
		}
		defer func() {
			m := c.GetMetrics()
			logging.Debug("Export manifest closed",
				"hits", m.Hits, "misses", m.Misses, "sets", m.Sets, "deletes", m.Deletes,
				"size_bytes", m.Size)
			c.Close()
		}()
		manifest = cache.NewManifest(c)
		if reset {
			if err := manifest.Reset(ctx); err != nil {
				return fmt.Errorf("reset export manifest: %w", err)
			}
			logging.Info("Export manifest reset", logging.File(a.cfg.Export.ManifestPath))
		}
	}

	freezer := export.New(site, afero.NewOsFs(), export.Options{
		OutputDir:        a.cfg.Export.OutputDir,
		CopyPlots:        a.cfg.Export.CopyPlots,
		MetadataFilename: a.cfg.MetadataFilename,
	}, manifest)

	stats, err := freezer.Freeze(ctx)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(w, "Export failed")
		return err
	}

	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(w, "Exported %d pages to %s\n", stats.Pages, a.cfg.Export.OutputDir)
	fmt.Fprintf(w, "  written: %d\n", stats.Written)
	if stats.Skipped > 0 {
		color.New(color.FgYellow).Fprintf(w, "  unchanged: %d\n", stats.Skipped)
	}
	if stats.Removed > 0 {
		color.New(color.FgYellow).Fprintf(w, "  removed: %d\n", stats.Removed)
	}
	fmt.Fprintf(w, "  assets: %d, plots: %d (%s)\n", stats.Assets, stats.Plots, stats.Duration.Round(time.Millisecond))
	return nil
}
