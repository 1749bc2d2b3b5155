// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// ChangeCallback is invoked after one of the watched env files changed.
type ChangeCallback func()

// Watcher monitors the env files of one mode and reports debounced changes.
type Watcher struct {
	dir      string
	names    map[string]struct{}
	callback ChangeCallback
	logger   *logger.Logger
	debounce time.Duration
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration. Default is 300ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher for the env files of mode inside dir.
func NewWatcher(dir, mode string, callback ChangeCallback, logger *logger.Logger, opts ...WatcherOption) *Watcher {
	names := make(map[string]struct{})
	for _, name := range Files(mode) {
		names[name] = struct{}{}
	}

	w := &Watcher{
		dir:      dir,
		names:    names,
		callback: callback,
		logger:   logger,
		debounce: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches dir and invokes the callback on debounced write, create,
// rename and remove events for the mode's env files. It blocks until ctx is
// cancelled, then returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch the directory to catch files that are created later and editors
	// that save by renaming.
	if err := fsw.Add(w.dir); err != nil {
		return err
	}

	changed := make(chan struct{}, 1)
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if _, watched := w.names[filepath.Base(event.Name)]; !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("env file changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case <-changed:
			w.callback()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("fsnotify error")
		}
	}
}
