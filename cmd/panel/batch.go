package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-panel"
	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/observability"
	"github.com/grindlemire/go-panel/markup"
)

// document is a parsed and laid out input file.
type document struct {
	file string
	*markup.Document
}

// loadDocument parses file and lays it out in the viewport.
func loadDocument(file string, vp config.ViewportConfig) (*document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := markup.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	w, h := vp.Extent()
	if err := doc.Tree.UpdateLayout(panel.NewSize(w, h)); err != nil {
		return nil, fmt.Errorf("%s: layout: %w", file, err)
	}
	observability.GetLogger().Debug("laid out",
		zap.String("file", file),
		zap.Int("nodes", doc.Tree.Len()),
		zap.Stringer("bounds", doc.Root.Bounds()),
	)
	return &document{file: file, Document: doc}, nil
}

// loadAll loads every file with at most cfg.Concurrency at once and calls
// each, if not nil, on every document from the goroutine that loaded it.
// The documents come back in file order. The first failure cancels the rest.
func loadAll(ctx context.Context, files []string, cfg *config.Config, each func(*document) error) ([]*document, error) {
	docs := make([]*document, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := loadDocument(file, cfg.Viewport)
			if err != nil {
				return err
			}
			if each != nil {
				if err := each(doc); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
