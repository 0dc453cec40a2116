// Package iclog wraps log/slog with a single-line handler, grounded on the
// S370-style LogHandler wrapper: one mutex-guarded writer, a plain
// "timestamp level message attrs..." line, and an optional debug gate that
// additionally fans Debug-level records out to stderr.
package iclog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that formats records as a single space-joined
// line and writes them to out, additionally echoing Debug-level records to
// stderr when debug is set.
type Handler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
	debug bool
}

// New builds a Handler writing to out at the given minimum level. debug, if
// true, additionally echoes Debug-level records to stderr; records of other
// levels, and all records when debug is false, go to out only.
func New(out io.Writer, level slog.Level, debug bool) *Handler {
	return &Handler{
		out:   out,
		inner: slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})
	line := []byte(strings.Join(parts, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(line)
	}
	if h.debug && r.Level <= slog.LevelDebug {
		_, err = os.Stderr.Write(line)
	}
	return err
}

// NewLogger builds a ready-to-use *slog.Logger writing to out.
func NewLogger(out io.Writer, level slog.Level, debug bool) *slog.Logger {
	return slog.New(New(out, level, debug))
}
