package zw

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"zwatch/internal"
)

// Reloader consumes batches from a Source and starts one build per
// distinct changed exercise file.
type Reloader struct {
	source  Source
	builder Builder
	ext     string
	errOut  io.Writer
}

func NewReloader(source Source, builder Builder, ext string) *Reloader {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Reloader{
		source:  source,
		builder: builder,
		ext:     ext,
		errOut:  os.Stderr,
	}
}

// SetErrorOutput sets where watcher error reports are written.
func (r *Reloader) SetErrorOutput(w io.Writer) {
	r.errOut = w
}

// Run blocks until the source's channel is closed, returning nil, or until
// a file can't be resolved to a target or a build can't be started.
func (r *Reloader) Run() error {
	update := r.source.Watch()
	for b := range update {
		if err := r.handle(b); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reloader) handle(b Batch) error {
	if len(b.Errs) > 0 {
		r.report(b.Errs)
		return nil
	}
	paths := Distinct(b, r.ext)
	slog.Debug("batch", slog.Int("changes", len(b.Changes)), slog.Int("accepted", len(paths)))
	for _, p := range paths {
		if err := r.rebuild(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reloader) rebuild(path string) error {
	t, err := ResolveTarget(path)
	if err != nil {
		return err
	}
	slog.Info("rebuild", slog.Int("exercise", t.Exercise), slog.String("path", path))
	return r.builder.Build(t)
}

func (r *Reloader) report(errs []error) {
	_, _ = fmt.Fprintln(r.errOut, strings.Join(internal.Messages(errs), "\n"))
	slog.Warn("watcher errors", slog.Int("count", len(errs)))
}
