package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key used for tag filtering

// filteringHandler wraps a base slog.Handler and drops records by tag or package.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
	tag  string // tag attached through WithAttrs, if any
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg := sourcePackage(r); pkg != "" {
		if !allowed(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
			return nil
		}
	}

	tag := h.tag
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if tag == "" {
		// Untagged records are dropped only when an explicit tag allow-list exists.
		if h.cfg.enabledTagsSet != nil {
			return nil
		}
	} else if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &filteringHandler{base: h.base.WithAttrs(attrs), cfg: h.cfg, tag: h.tag}
	for _, a := range attrs {
		if a.Key == tagKey {
			next.tag = strings.ToLower(a.Value.String())
		}
	}
	return next
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{base: h.base.WithGroup(name), cfg: h.cfg, tag: h.tag}
}

// sourcePackage returns the lower-cased directory name of the record's caller.
func sourcePackage(r slog.Record) string {
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
}
