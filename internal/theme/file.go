package theme

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/listenupapp/readconfig/internal/domain"
)

// FileSignal reads the theme from a small text file written by the UI shell.
// The file holds "dark" or "light". The signal keeps the last good value when
// the file is removed or holds anything else.
type FileSignal struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	dark    atomic.Bool
}

// NewFileSignal reads the initial theme from path and prepares a watcher on
// its parent directory, creating the directory if needed. A missing file
// means light until the file appears.
func NewFileSignal(path string, logger *slog.Logger) (*FileSignal, error) {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create theme dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory so atomic renames over the file are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	s := &FileSignal{
		path:    path,
		logger:  logger,
		watcher: watcher,
	}
	s.reload()
	return s, nil
}

// IsDark implements Provider.
func (s *FileSignal) IsDark() bool {
	return s.dark.Load()
}

// Start processes file events until ctx is cancelled or the watcher closes.
func (s *FileSignal) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.reload()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("theme file watcher error", "path", s.path, "error", err)
		}
	}
}

// Close stops watching.
func (s *FileSignal) Close() error {
	return s.watcher.Close()
}

// reload re-reads the file; unreadable or unknown content keeps the previous value.
func (s *FileSignal) reload() {
	data, err := os.ReadFile(s.path) //#nosec G304 -- path is operator config
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read theme file", "path", s.path, "error", err)
		}
		return
	}

	mode, err := domain.ParseThemeMode(strings.TrimSpace(string(data)))
	if err != nil {
		s.logger.Warn("ignoring theme file content", "path", s.path, "error", err)
		return
	}

	if prev := s.dark.Swap(mode.IsDark()); prev != mode.IsDark() {
		s.logger.Info("theme changed", "mode", mode)
	}
}
