// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// OnResult is called after every completed (non-cached, non-error) Scan
// triggered while Run is active.
type OnResult func(*Result)

// Run watches every configured scan root for filesystem changes and
// triggers a debounced rescan after each settled burst of events. Wrapped
// in a closure that binds onResult, it has the shape of app.Runnable and
// composes with app.Run/RunAll: it blocks until ctx is cancelled or the underlying fsnotify.Watcher
// fails irrecoverably.
//
// Run performs one initial Scan before entering the event loop, and calls
// onResult (if non-nil) after every subsequent scan that neither errored
// nor was served from cache.
func (w *Watcher) Run(ctx context.Context, onResult OnResult) error {
	if _, err := w.Scan(ctx); err != nil && !errors.Is(err, ErrScanInProgress) {
		return fmt.Errorf("watch: initial scan: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating filesystem watcher: %w", err)
	}
	defer fsw.Close()

	for _, root := range w.cfg.scanRoots {
		if err := addRecursive(fsw, root, w.cfg.excludeGlobs); err != nil {
			w.cfg.logger.Warn("watch: failed to watch directory", "root", root, "error", err)
		}
	}

	var timer *time.Timer
	rescan := func() {
		res, err := w.Scan(ctx)
		switch {
		case errors.Is(err, ErrScanInProgress):
			w.cfg.logger.Debug("watch: rescan skipped, scan already in progress")
		case err != nil:
			w.cfg.logger.Error("watch: rescan failed", "error", err)
		case !res.Cached && onResult != nil:
			onResult(res)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !hasExtension(event.Name, w.cfg.extensions) || excluded(event.Name, w.cfg.excludeGlobs) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(w.cfg.debounce, rescan)
			} else {
				timer.Reset(w.cfg.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.cfg.logger.Error("watch: filesystem watcher error", "error", err)
		}
	}
}

// addRecursive adds root and every non-excluded subdirectory to fsw, since
// fsnotify only watches the directories it is explicitly given, never
// their descendants.
func addRecursive(fsw *fsnotify.Watcher, root string, excludeGlobs []string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if excluded(path, excludeGlobs) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
