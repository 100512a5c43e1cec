package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce is how long a burst of file changes must settle before a re-run.
const DefaultWatchDebounce = 1 * time.Second

// TargetWatcher re-runs a callback whenever contract files under a root change.
type TargetWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	ext      string
	debounce time.Duration
	ui       UICallback
	logger   *zap.Logger
}

// NewTargetWatcher starts watching root and every directory below it. The
// watch is active when NewTargetWatcher returns.
func NewTargetWatcher(root, ext string, debounce time.Duration, ui UICallback, logger *zap.Logger) (*TargetWatcher, error) {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to watch %s: not a directory", root)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	tw := &TargetWatcher{watcher: w, root: root, ext: ext, debounce: debounce, ui: ui, logger: logger}
	if err := tw.addTree(root); err != nil {
		_ = w.Close()
		return nil, err
	}
	return tw, nil
}

// Run calls fn after each settled burst of changes to matching files until
// ctx is cancelled. Errors from fn are reported and do not stop the watch.
func (tw *TargetWatcher) Run(ctx context.Context, fn func(context.Context) error) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-tw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := tw.addTree(event.Name); err != nil {
						tw.logger.Warn("watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !tw.relevant(event) {
				continue
			}
			tw.logger.Debug("change", zap.String("file", event.Name), zap.String("op", event.Op.String()))

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(tw.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if err := fn(ctx); err != nil {
				tw.ui.ShowError("Run Failed", err.Error())
			}

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return nil
			}
			tw.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the underlying watcher.
func (tw *TargetWatcher) Close() error {
	return tw.watcher.Close()
}

func (tw *TargetWatcher) relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, tw.ext) {
		return false
	}
	const ops = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	return event.Op&ops != 0
}

func (tw *TargetWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := tw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		return nil
	})
}
