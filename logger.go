package tk

import (
	"log/slog"

	"github.com/gogpu/tk/internal/logx"
)

// SetLogger sets the logger used by the whole module (the tk, render,
// and theme packages). Pass nil to disable logging, which is the
// default.
//
// Example:
//
//	tk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the current module logger. It never returns nil; with
// logging disabled a no-op logger is returned.
func Logger() *slog.Logger {
	return logx.Logger()
}
