package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logging configuration
type Config struct {
	// Level is the minimum log level
	Level slog.Level

	// Format is the output format (text or json)
	Format string

	// Output is the output writer
	Output io.Writer

	// UseCustomFormat uses the compact "HH:MM:SS LEVEL message" text format
	UseCustomFormat bool
}

// DefaultConfig returns the default logging configuration. Command output
// goes to stdout, so logs stay on stderr and only warnings show by default.
func DefaultConfig() *Config {
	return &Config{
		Level:           slog.LevelWarn,
		Format:          "text",
		Output:          os.Stderr,
		UseCustomFormat: true,
	}
}

// Initialize initializes the global logger with the given configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var logger *slog.Logger
	switch cfg.Format {
	case "json":
		logger = slog.New(slog.NewJSONHandler(output, opts))
	default:
		if cfg.UseCustomFormat {
			logger = slog.New(NewCustomTextHandler(output, opts))
		} else {
			logger = slog.New(slog.NewTextHandler(output, opts))
		}
	}

	SetGlobalLogger(logger)
}

// ParseLevel parses a string log level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// CustomTextHandler formats records as "HH:MM:SS LEVEL  message attrs"
type CustomTextHandler struct {
	slog.Handler
	writer io.Writer
	attrs  []slog.Attr
}

// NewCustomTextHandler creates a compact text handler
func NewCustomTextHandler(w io.Writer, opts *slog.HandlerOptions) *CustomTextHandler {
	return &CustomTextHandler{
		Handler: slog.NewTextHandler(w, opts),
		writer:  w,
	}
}

// WithAttrs keeps attributes added through Logger.With
func (h *CustomTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomTextHandler{
		Handler: h.Handler.WithAttrs(attrs),
		writer:  h.writer,
		attrs:   merged,
	}
}

// Handle formats the record and writes it
func (h *CustomTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s ", r.Time.Format("15:04:05"))
	fmt.Fprintf(&buf, "%-5s  ", r.Level.String())
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&buf, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s=%v", a.Key, a.Value)
		return true
	})

	buf.WriteByte('\n')

	_, err := h.writer.Write(buf.Bytes())
	return err
}
