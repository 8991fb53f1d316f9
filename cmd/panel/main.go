// Command panel lays out and renders panel markup documents.
//
// Usage:
//
//	panel layout [path...]    Print every node's bounds
//	panel render [path...]    Write a PNG or HTML snapshot per document
//	panel dump [path...]      Print the laid out tree
//	panel watch [path...]     Re-render documents whenever they change
//	panel version             Print version information
//
// Paths may be files, directories, or "dir/..." for a recursive search of
// .panel files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-panel/internal/observability"
)

// Version is set at build time with
// -ldflags "-X main.Version=x.y.z".
var Version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	observability.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
