package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// logLevel maps a --log-level value, already restricted by kong's enum, to a
// slog level. Unset means info.
func logLevel(name string) slog.Level {
	if l, ok := logLevels[name]; ok {
		return l
	}
	return slog.LevelInfo
}

// newLogger logs to w, which is stderr in production since stdout carries
// the forecast document. Colour is only used on a terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	})
	return slog.New(h).With("app", appName)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
