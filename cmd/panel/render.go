package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/observability"
	"github.com/grindlemire/go-panel/render"
)

func newRenderCmd(defaults *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [path...]",
		Short: "Write a PNG or HTML snapshot of each document",
		Long: `Write a PNG or HTML snapshot of each document.

Each page.panel becomes page.png (or page.html) next to it, or in --dir.
With --dir - a single document is written to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			files, err := collectFiles(args)
			if err != nil {
				return err
			}

			if cfg.Render.Dir == "-" {
				if len(files) != 1 {
					return fmt.Errorf("--dir - needs exactly one document, got %d", len(files))
				}
				docs, err := loadAll(cmd.Context(), files, cfg, nil)
				if err != nil {
					return err
				}
				return renderTo(cmd.OutOrStdout(), docs[0], cfg.Render)
			}

			if cfg.Render.Dir != "" {
				if err := os.MkdirAll(cfg.Render.Dir, 0o755); err != nil {
					return err
				}
			}
			docs, err := loadAll(cmd.Context(), files, cfg, func(d *document) error {
				_, err := writeSnapshot(d, cfg.Render)
				return err
			})
			if err != nil {
				return err
			}
			for _, d := range docs {
				fmt.Fprintln(cmd.OutOrStdout(), outputPath(d.file, cfg.Render.Dir, cfg.Render.Format))
			}
			return nil
		},
	}
	addRenderFlags(cmd, defaults)
	return cmd
}

func addRenderFlags(cmd *cobra.Command, defaults *config.Config) {
	f := cmd.Flags()
	f.StringP("format", "f", defaults.Render.Format, "snapshot format: png or html")
	f.StringP("dir", "d", defaults.Render.Dir, "output directory (default next to each input)")
	f.Float64("scale", defaults.Render.Scale, "png scale factor")
	f.Bool("labels", defaults.Render.Labels, "label boxes in png output")
	f.Bool("clip", defaults.Render.Clip, "clip overflowing boxes to their slot")
}

// writeSnapshot renders d to its output file and returns the path. The
// snapshot is rendered in memory first so a failure leaves no partial file.
func writeSnapshot(d *document, rc config.RenderConfig) (string, error) {
	var buf bytes.Buffer
	if err := renderTo(&buf, d, rc); err != nil {
		return "", err
	}
	path := outputPath(d.file, rc.Dir, rc.Format)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	observability.GetLogger().Info("wrote snapshot", zap.String("file", d.file), zap.String("path", path))
	return path, nil
}

func renderTo(w io.Writer, d *document, rc config.RenderConfig) error {
	switch rc.Format {
	case "png":
		return render.WritePNG(w, d.Tree, render.PNGOptions{
			Scale:      rc.Scale,
			Background: rc.Background,
			Palette:    rc.Palette,
			Stroke:     rc.Stroke,
			LineWidth:  rc.LineWidth,
			Labels:     rc.Labels,
			NoClip:     !rc.Clip,
		})
	case "html":
		return render.WriteHTML(w, d.Tree, render.HTMLOptions{
			Title: filepath.Base(d.file),
			Clip:  rc.Clip,
		})
	}
	return fmt.Errorf("unknown render format %q", rc.Format)
}
