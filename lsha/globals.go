package internal

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	DefaultAppName = "lsha"

	// CompletionSentinel is printed as the last line of every successful run so callers can
	// tell a complete report from a truncated one.
	CompletionSentinel = DefaultAppName + ":EOF"

	// DefaultChunkSize is the read size used when streaming files through a hash.
	DefaultChunkSize = 64 * 1024

	// Default log settings
	DefaultLogLevel      = slog.LevelInfo
	DefaultLogTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)

// NewLogger returns a tint backed slog logger writing to w. Colours are only enabled when w is
// a terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: DefaultLogTimeFormat,
		NoColor:    noColor,
	}))
}
