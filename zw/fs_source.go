package zw

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// NewFsSource watches dir, without descending into subdirectories, and
// delivers everything seen once no event has arrived for debounce.
func NewFsSource(dir string, debounce time.Duration) (Source, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mark(ErrWatcherInit, err, "create fs watcher")
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, mark(ErrWatcherInit, err, "watch %s", dir)
	}
	source := &fsSource{
		watcher:  watcher,
		debounce: debounce,
		update:   make(chan Batch, 1),
		done:     make(chan struct{}),
	}
	go source.loop()
	return source, nil
}

type fsSource struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	update   chan Batch
	done     chan struct{}
	once     sync.Once
}

func (f *fsSource) Close() {
	f.once.Do(func() {
		close(f.done)
		_ = f.watcher.Close()
	})
}

func (f *fsSource) Watch() <-chan Batch {
	return f.update
}

func (f *fsSource) loop() {
	defer close(f.update)
	var (
		wait    <-chan time.Time
		watcher = f.watcher
		timer   = time.NewTimer(f.debounce)
		changes []Change
		errs    []error
	)
	stopTimer(timer)
	defer timer.Stop()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			changes = append(changes, Change{Path: event.Name, Op: toOp(event)})
			wait = restart(timer, f.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			errs = append(errs, err)
			wait = restart(timer, f.debounce)
		case <-wait:
			slog.Debug("fsSource flush", slog.Int("changes", len(changes)), slog.Int("errs", len(errs)))
			if len(changes) > 0 && !f.send(Batch{Changes: changes}) {
				return
			}
			if len(errs) > 0 && !f.send(Batch{Errs: errs}) {
				return
			}
			changes = make([]Change, 0, 8)
			errs = nil
			wait = nil
		case <-f.done:
			return
		}
	}
}

func (f *fsSource) send(b Batch) bool {
	select {
	case f.update <- b:
		return true
	case <-f.done:
		return false
	}
}

// restart rearms t for d and returns its channel.
func restart(t *time.Timer, d time.Duration) <-chan time.Time {
	stopTimer(t)
	t.Reset(d)
	return t.C
}

// stopTimer stops t and drains a value that already fired but was not read.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func toOp(event fsnotify.Event) Op {
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		return OpChanged
	}
	return OpOther
}
