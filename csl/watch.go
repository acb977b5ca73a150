package csl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often Watch checks the file when fsnotify is unavailable.
var pollInterval = 500 * time.Millisecond

// Watch follows a configuration file and sends every successfully reloaded
// Config to the returned channel. Files that fail to load are logged and
// skipped. The channel is closed when the context is cancelled.
// Uses fsnotify for efficient file watching with polling fallback.
func Watch(ctx context.Context, path string) <-chan Config {
	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("fsnotify unavailable, polling config file", "error", err)
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory so editors that replace the file are still seen.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			slog.Debug("cannot watch config directory, polling config file", "error", err)
			watchPolling(ctx, ch, path)
			return
		}

		watchWithWatcher(ctx, ch, watcher, path)
	}()

	return ch
}

// watchWithWatcher reloads the config on fsnotify events for its file.
func watchWithWatcher(ctx context.Context, ch chan<- Config, watcher *fsnotify.Watcher, path string) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(ctx, ch, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", slog.Any("error", err))
		}
	}
}

// watchPolling reloads the config whenever its modification time changes.
func watchPolling(ctx context.Context, ch chan<- Config, path string) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			reload(ctx, ch, path)
		}
	}
}

// reload loads the file and delivers it unless loading fails.
func reload(ctx context.Context, ch chan<- Config, path string) {
	cfg, err := LoadFile(path)
	if err != nil {
		slog.Warn("config reload failed, keeping previous settings",
			slog.String("path", path),
			slog.Any("error", err))
		return
	}

	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
