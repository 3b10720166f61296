package lint

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReportFunc receives the result of every scan made by Watch.
type ReportFunc func(file string, findings []Finding, err error)

// Watch scans every path once, then rescans a file each time it is written or
// recreated, until ctx is cancelled. Parent directories are watched rather
// than the files themselves so that editors replacing a file on save are
// still noticed.
func (l *Linter) Watch(ctx context.Context, paths []string, report ReportFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		watched[abs] = path
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	for _, path := range paths {
		findings, err := l.ScanFile(path)
		report(path, findings, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, ok := watched[abs]
			if !ok {
				continue
			}
			l.logger.Debug("File changed", zap.String("file", path), zap.Stringer("op", event.Op))
			findings, err := l.ScanFile(path)
			report(path, findings, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
