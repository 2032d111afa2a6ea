package saorom

import (
	"io"
	"os"
	"time"
)

// Config holds the writer configuration.
type Config struct {
	// Output receives human-readable progress lines.
	Output io.Writer

	// Logger traces individual transactions (optional).
	Logger Logger

	// Progress is called on every state change (optional).
	Progress ProgressCallback

	// PageDelay is the pause after each chunk write. The EEPROM ignores the
	// bus while it commits a page. [24C128|tWC]
	PageDelay time.Duration

	// RetryDelay is the pause after a failed write and verify cycle.
	RetryDelay time.Duration
}

const (
	DefaultPageDelay  = 100 * time.Millisecond
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultTries      = 3
)

func defaultConfig() Config {
	return Config{
		Output:     os.Stdout,
		Logger:     nopLogger{},
		PageDelay:  DefaultPageDelay,
		RetryDelay: DefaultRetryDelay,
	}
}

// Option is a functional option for configuring the Writer.
type Option func(*Config)

// WithOutput redirects the progress lines ("ROM validated!", ...).
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.Output = w
		}
	}
}

// WithLogger sets a logger for per-transaction tracing.
//
// Example:
//
//	w := saorom.NewWriter(dev, saorom.WithLogger(myLogger))
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithProgress sets a callback invoked on every state change.
func WithProgress(cb ProgressCallback) Option {
	return func(c *Config) {
		c.Progress = cb
	}
}

// WithPageDelay sets the pause after each chunk write. Negative values are
// ignored.
func WithPageDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PageDelay = d
		}
	}
}

// WithRetryDelay sets the pause between failed attempts. Negative values
// are ignored.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.RetryDelay = d
		}
	}
}

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
