package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-panel"
	"github.com/grindlemire/go-panel/internal/config"
)

func newLayoutCmd(defaults *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [path...]",
		Short: "Lay out documents and print every node's bounds",
		Long: `Lay out documents and print every node's bounds.

Bounds are absolute, in the coordinate space of the document's root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			files, err := collectFiles(args)
			if err != nil {
				return err
			}
			docs, err := loadAll(cmd.Context(), files, cfg, nil)
			if err != nil {
				return err
			}
			reports := make([]fileReport, len(docs))
			for i, d := range docs {
				reports[i] = reportOf(d)
			}
			return writeReports(cmd.OutOrStdout(), cfg.Output.Format, reports)
		},
	}
	cmd.Flags().StringP("output", "o", defaults.Output.Format, "output format: text, json or yaml")
	return cmd
}

type fileReport struct {
	File  string       `json:"file" yaml:"file"`
	Nodes []nodeReport `json:"nodes" yaml:"nodes"`
}

type nodeReport struct {
	Depth   int        `json:"depth" yaml:"depth"`
	Kind    string     `json:"kind" yaml:"kind"`
	Tag     string     `json:"tag,omitempty" yaml:"tag,omitempty"`
	Desired sizeReport `json:"desired" yaml:"desired"`
	Bounds  rectReport `json:"bounds" yaml:"bounds"`
}

type sizeReport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type rectReport struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func reportOf(d *document) fileReport {
	r := fileReport{File: d.file}
	d.Tree.Walk(func(n *panel.Node, depth int) bool {
		b := d.Tree.AbsoluteBounds(n)
		desired := n.DesiredSize()
		r.Nodes = append(r.Nodes, nodeReport{
			Depth:   depth,
			Kind:    n.Kind(),
			Tag:     n.Tag(),
			Desired: sizeReport{Width: desired.Width, Height: desired.Height},
			Bounds:  rectReport{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
		})
		return true
	})
	return r
}

func writeReports(w io.Writer, format string, reports []fileReport) error {
	switch format {
	case "json":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, r := range reports {
			if _, err := fmt.Fprintln(w, r.File); err != nil {
				return err
			}
			for _, n := range r.Nodes {
				label := n.Kind
				if n.Tag != "" {
					label += " " + n.Tag
				}
				b := panel.NewRect(n.Bounds.X, n.Bounds.Y, n.Bounds.Width, n.Bounds.Height)
				if _, err := fmt.Fprintf(w, "%s%s %v\n", strings.Repeat("    ", n.Depth+1), label, b); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
