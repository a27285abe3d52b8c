package logger

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger factory.
type Option func(*settings)

// WithLevel sets the minimum level. Default is slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithJSON switches output to JSON, the format expected by log shippers
// in production. Default is human-readable text.
func WithJSON() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithOutput redirects log output. Default is os.Stderr.
// Use io.Discard to silence the logger entirely.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithApp attaches the application name to every record.
func WithApp(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.attrs = append(s.attrs, slog.String("app", name))
		}
	}
}

// New builds an slog.Logger from the given options.
func New(opts ...Option) *slog.Logger {
	s := settings{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}

	ho := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	if s.json {
		handler = slog.NewJSONHandler(s.output, ho)
	} else {
		handler = slog.NewTextHandler(s.output, ho)
	}
	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}

	return slog.New(handler)
}
