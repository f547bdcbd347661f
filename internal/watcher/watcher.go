// Package watcher signals filesystem changes under a root so the
// combined artifact can be regenerated. fsnotify events are coalesced
// within a debounce window into a single change notification.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the event coalescing window used when none is
// configured.
const DefaultDebounce = 200 * time.Millisecond

// Change is one coalesced change notification.
type Change struct {
	// IgnoreRules reports that an ignore file changed during the burst;
	// the caller should drop any cached parsed rules before rebuilding.
	IgnoreRules bool
}

// Watcher watches a directory tree recursively.
type Watcher struct {
	fsw        *fsnotify.Watcher
	debounce   time.Duration
	ignoreName string
	skip       map[string]struct{}
	changes    chan Change
	errs       chan error

	mu            sync.Mutex
	timer         *time.Timer
	pendingIgnore bool
	stopped       bool
}

// New creates a watcher. A debounce of zero or less uses
// DefaultDebounce. ignoreName is the per-directory ignore file name;
// events touching such files mark the resulting Change. skipPaths lists
// absolute paths (the artifact and its lock file) whose events must not
// trigger a rebuild, or rebuilds would feed themselves.
func New(debounce time.Duration, ignoreName string, skipPaths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &Watcher{
		fsw:        fsw,
		debounce:   debounce,
		ignoreName: ignoreName,
		skip:       skip,
		changes:    make(chan Change, 1),
		errs:       make(chan error, 16),
	}, nil
}

// Start registers watches for root and every directory beneath it, then
// processes events until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve watch root: %w", err)
	}
	if err := w.addRecursive(absRoot); err != nil {
		return err
	}
	go w.run(ctx)
	return nil
}

// addRecursive adds watches for dir and all directories beneath it.
// Directories created later are picked up from their create events.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if addErr := w.fsw.Add(path); addErr != nil {
			slog.Warn("failed to watch directory",
				slog.String("dir", path),
				slog.String("error", addErr.Error()))
		}
		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if _, skip := w.skip[ev.Name]; skip {
		return
	}

	// Start watching directories as they appear.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(ev.Name); err != nil {
				slog.Warn("failed to watch new directory",
					slog.String("dir", ev.Name),
					slog.String("error", err.Error()))
			}
		}
	}

	w.mu.Lock()
	if w.ignoreName != "" && filepath.Base(ev.Name) == w.ignoreName {
		w.pendingIgnore = true
	}
	w.scheduleNotifyLocked()
	w.mu.Unlock()
}

// scheduleNotifyLocked (re)arms the debounce timer; a burst of events
// within the window produces one change signal. Callers hold w.mu.
func (w *Watcher) scheduleNotifyLocked() {
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	ch := Change{IgnoreRules: w.pendingIgnore}
	w.pendingIgnore = false
	w.mu.Unlock()

	select {
	case w.changes <- ch:
	default:
		// A change is already queued. Keep the ignore flag so the next
		// notification still invalidates cached rules.
		if ch.IgnoreRules {
			w.mu.Lock()
			w.pendingIgnore = true
			w.mu.Unlock()
		}
	}
}

// Changes delivers coalesced change notifications.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Errors surfaces non-fatal watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Stop stops the watcher and releases resources. Safe to call more than
// once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
