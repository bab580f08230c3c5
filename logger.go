package claudesdk

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger whose output is discarded. It is what Query
// falls back to when no WithLogger option is given, keeping the SDK silent
// by default.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
