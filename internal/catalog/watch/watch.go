package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vbonduro/amblitz/internal/catalog"
	"github.com/vbonduro/amblitz/internal/catalog/loader"
)

const defaultDebounce = 500 * time.Millisecond

// Holder hands out the catalog currently in service. Requests that already
// took a snapshot keep it across a swap.
type Holder struct {
	current atomic.Pointer[catalog.Catalog]
}

func NewHolder(c *catalog.Catalog) *Holder {
	h := &Holder{}
	h.current.Store(c)
	return h
}

func (h *Holder) Current() *catalog.Catalog {
	return h.current.Load()
}

func (h *Holder) Store(c *catalog.Catalog) {
	h.current.Store(c)
}

// Watcher reloads the catalog file into a Holder whenever it changes on disk.
type Watcher struct {
	path     string
	holder   *Holder
	logger   *slog.Logger
	debounce time.Duration
}

func NewWatcher(path string, holder *Holder, logger *slog.Logger) *Watcher {
	return &Watcher{
		path:     path,
		holder:   holder,
		logger:   logger,
		debounce: defaultDebounce,
	}
}

// Run watches the catalog file's directory until ctx is done. Editors often
// replace files instead of writing them in place, so the directory is
// watched rather than the file.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			w.logger.Error("failed to close file watcher", "error", err)
		}
	}()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch catalog directory: %w", err)
	}
	w.logger.Info("catalog watcher started", "path", w.path)

	name := filepath.Base(w.path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("catalog watcher stopped", "path", w.path)
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				w.logger.Debug("ignoring catalog event", "op", event.Op.String())
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "error", err)

		case <-pending:
			pending = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	c, err := loader.Load(ctx, &loader.FileSource{Path: w.path})
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous catalog", "path", w.path, "error", err)
		return
	}
	w.holder.Store(c)
	w.logger.Info("catalog reloaded", "path", w.path, "projects", c.Len())
}
