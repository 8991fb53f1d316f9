package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/grindlemire/go-panel/internal/config"
	"github.com/grindlemire/go-panel/internal/observability"
)

func newWatchCmd(defaults *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Re-render documents whenever they change",
		Long: `Re-render documents whenever they change.

Every document is rendered once at start and again after each write. Renders
are throttled to one per --interval; errors are logged and watching goes on.
Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			files, err := collectFiles(args)
			if err != nil {
				return err
			}
			switch cfg.Render.Dir {
			case "-":
				return fmt.Errorf("watch cannot write to stdout")
			case "":
			default:
				if err := os.MkdirAll(cfg.Render.Dir, 0o755); err != nil {
					return err
				}
			}
			limiter := rate.NewLimiter(rate.Every(cfg.Watch.Interval), cfg.Watch.Burst)
			return watch(cmd.Context(), files, cfg, limiter, cmd.OutOrStdout())
		},
	}
	addRenderFlags(cmd, defaults)
	cmd.Flags().Duration("interval", defaults.Watch.Interval, "minimum time between renders")
	return cmd
}

// watch renders files and then re-renders each one it sees written until
// ctx is done. The containing directories are watched rather than the files
// so editors that save by renaming are picked up.
func watch(ctx context.Context, files []string, cfg *config.Config, limiter *rate.Limiter, out io.Writer) error {
	log := observability.GetLogger()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	wanted := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		wanted[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	rebuild := func(file string) {
		doc, err := loadDocument(file, cfg.Viewport)
		if err == nil {
			var path string
			if path, err = writeSnapshot(doc, cfg.Render); err == nil {
				fmt.Fprintln(out, path)
				return
			}
		}
		log.Error("render failed", zap.String("file", file), zap.Error(err))
	}

	for _, f := range files {
		rebuild(f)
	}
	log.Info("watching", zap.Int("files", len(files)), zap.Int("dirs", len(dirs)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !wanted[filepath.Clean(ev.Name)] {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			rebuild(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
