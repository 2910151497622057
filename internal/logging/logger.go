// Package logging defines the structured, context-aware logger used by the
// academy client. Two backends are provided: log/slog and go.uber.org/zap.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "course created", "id", course.ID, "title", course.Title)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds a Logger writing to w. Unknown formats fall back to text,
// unknown levels to info.
func New(format, level string, w io.Writer) Logger {
	switch strings.ToLower(format) {
	case FormatZap:
		return NewZapLogger(newZap(level, w))
	case FormatJSON:
		return NewSlogLogger(newSlog(level, w, true))
	default:
		return NewSlogLogger(newSlog(level, w, false))
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(newSlog("error", io.Discard, false))
}
