package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/thoreinstein/skillset/internal/errors"
)

// NewJSONHandler returns a JSON handler that masks secrets the same way the
// text handler does. Package URLs may carry access tokens, and JSON output
// usually ends up in files or CI logs.
func NewJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	o := slog.HandlerOptions{}
	if opts != nil {
		o = *opts
	}
	next := o.ReplaceAttr
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if next != nil {
			a = next(groups, a)
		}
		return redactAttr(groups, a)
	}
	return slog.NewJSONHandler(w, &o)
}

func redactAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.MessageKey:
			return a
		case slog.LevelKey:
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl < slog.LevelDebug {
				return slog.String(slog.LevelKey, "TRACE")
			}
			return a
		}
	}
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	return slog.Any(a.Key, redact(a.Key, a.Value.Any()))
}

// OpenFileSink opens path for appending JSON log records readable only by
// the owner. The caller closes the returned file when the command ends.
func OpenFileSink(path string, level slog.Leveler) (slog.Handler, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", path)
	}
	return NewJSONHandler(f, &slog.HandlerOptions{Level: level}), f, nil
}

// Tee sends each record to every handler that accepts its level, so the
// terminal and the --log-file sink can use different thresholds. Nil
// handlers are dropped; a single handler is returned as is.
func Tee(handlers ...slog.Handler) slog.Handler {
	var hs tee
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}
	switch len(hs) {
	case 0:
		return slog.NewTextHandler(io.Discard, nil)
	case 1:
		return hs[0]
	}
	return hs
}

type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle gives every handler its own copy of the record and reports all
// write failures together.
func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t tee) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t tee) each(fn func(slog.Handler) slog.Handler) tee {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = fn(h)
	}
	return out
}
