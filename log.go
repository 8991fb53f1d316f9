package panel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Log categories attached to every diagnostic record as the "category"
// attribute.
const (
	CategoryLayout     = "layout"
	CategoryCache      = "cache"
	CategoryInvalidate = "invalidate"
	CategoryTree       = "tree"
)

// nopHandler discards everything. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var (
	loggerPtr atomic.Pointer[slog.Logger]
	logDepth  atomic.Int32

	mutedMu sync.RWMutex
	muted   = map[string]bool{}
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used for layout diagnostics. By default
// panel produces no output. Pass nil to silence it again.
//
// Records are written at [slog.LevelDebug] and carry a "category" and a
// "depth" attribute; message text is indented by depth so nested
// Measure/Arrange calls read as a tree:
//
//	panel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostic logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// MuteCategories suppresses records of the given categories. Calling it with
// no arguments unmutes everything.
func MuteCategories(categories ...string) {
	mutedMu.Lock()
	defer mutedMu.Unlock()
	muted = make(map[string]bool, len(categories))
	for _, c := range categories {
		muted[c] = true
	}
}

func logEnabled(category string) bool {
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		return false
	}
	mutedMu.RLock()
	defer mutedMu.RUnlock()
	return !muted[category]
}

func logf(category, format string, args ...any) {
	if !logEnabled(category) {
		return
	}
	depth := int(logDepth.Load())
	msg := strings.Repeat("    ", depth) + fmt.Sprintf(format, args...)
	Logger().Debug(msg, slog.String("category", category), slog.Int("depth", depth))
}

// logScope is an open, indented section of the log.
type logScope struct {
	category string
	braces   bool
	active   bool
}

// beginScope writes the formatted enter line (if format is non-empty) and
// indents every following record until end is called. With braces the
// section is wrapped in "{" and "}". Nothing is formatted while the category
// is disabled.
func beginScope(category string, braces bool, format string, args ...any) logScope {
	if !logEnabled(category) {
		return logScope{}
	}
	if format != "" {
		logf(category, format, args...)
	}
	if braces {
		logf(category, "{")
	}
	logDepth.Add(1)
	return logScope{category: category, braces: braces, active: true}
}

// end closes the scope, writing the formatted exit line after the closing
// brace if given.
func (s logScope) end(format string, args ...any) {
	if !s.active {
		return
	}
	logDepth.Add(-1)
	switch {
	case s.braces && format != "":
		logf(s.category, "} "+format, args...)
	case s.braces:
		logf(s.category, "}")
	case format != "":
		logf(s.category, format, args...)
	}
}
