package gotext

import (
	"log/slog"

	"github.com/gogpu/glyphtrace"
)

// Option configures a Font during Parse or Load.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger overrides the package logger for one font.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return glyphtrace.Logger()
}
