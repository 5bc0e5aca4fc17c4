package signals

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// Option configures a Signal at construction.
type Option func(*config)

type config struct {
	name   string
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	c := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithName labels the Signal in log records and error messages.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger receiving debug traces of connections and of
// skipped expired slots. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger == nil {
			return
		}
		c.logger = logger
	}
}

func (c *config) tracing() bool {
	return c.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (c *config) trace(msg string, id Identifier) {
	if !c.tracing() {
		return
	}
	c.logger.Debug(msg, slog.String("signal", c.name), slog.String("id", id.String()))
}

// wrapf adds context to err, prefixed with the Signal name when it has one.
func (c *config) wrapf(err error, format string, args ...any) error {
	if c.name == "" {
		return errors.Wrapf(err, format, args...)
	}
	return errors.Wrapf(err, "%s: "+format, append([]any{c.name}, args...)...)
}
