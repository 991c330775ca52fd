package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lixenwraith/neural-field/core"
)

// Overlay re-applies settings that do not come from the file, such as command-line flags
type Overlay func(cfg *Config)

// DefaultDebounce batches the write bursts editors produce on save
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads the config file on change and publishes the validated result
// It watches the parent directory so editors that replace the file on save are seen
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration

	overlay Overlay

	updates chan *Config
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for path, Start begins delivery
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		logger:   logger.With(zap.String("config", abs)),
		debounce: DefaultDebounce,
		updates:  make(chan *Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetOverlay installs fn to run over every reloaded config before validation
// Call before Start
func (w *Watcher) SetOverlay(fn Overlay) {
	w.mu.Lock()
	w.overlay = fn
	w.mu.Unlock()
}

// Updates delivers reloaded configs, only the latest pending one is kept
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching, non-blocking
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true

	core.Go(func() { w.run(ctx) })
	return nil
}

// Stop ends watching and waits for the loop to exit, safe to call more than once
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Debug("config watcher close", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}
			pending = time.Time{}
			w.reload()
		}
	}
}

// reload loads the file and replaces any undelivered update
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", zap.Error(err))
		return
	}

	w.mu.Lock()
	overlay := w.overlay
	w.mu.Unlock()
	if overlay != nil {
		overlay(cfg)
		if err := cfg.Validate(); err != nil {
			w.logger.Warn("config reload rejected", zap.Error(err))
			return
		}
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", zap.Int("zones", len(cfg.Zones)))
}
