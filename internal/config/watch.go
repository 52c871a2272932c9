package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk. Parsing happens on
// the watcher goroutine; consumers pick up the newest valid config with Poll
// from whatever goroutine owns the scene.
type Watcher struct {
	path    string
	log     *slog.Logger
	fsw     *fsnotify.Watcher
	updates chan Config
	done    chan struct{}
}

// Watch starts watching path's directory so editors that replace the file
// (write to temp, rename) are picked up too.
func Watch(ctx context.Context, path string, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		log:     log,
		fsw:     fsw,
		updates: make(chan Config, 1),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload rejected", "path", w.path, "err", err)
				continue
			}
			w.log.Info("config reloaded", "path", w.path)
			w.publish(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher", "err", err)
		}
	}
}

// publish replaces any config the consumer has not picked up yet.
func (w *Watcher) publish(cfg Config) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}

// Poll returns the newest reloaded config, if any, without blocking.
func (w *Watcher) Poll() (Config, bool) {
	select {
	case cfg := <-w.updates:
		return cfg, true
	default:
		return Config{}, false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
