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
	"sync"
	"sync/atomic"
	"time"

	"github.com/deep-rent/wireup/configgen"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/source"
	"github.com/deep-rent/wireup/validate"
)

// ErrScanInProgress is returned by Scan when another scan is already in
// flight on this Watcher.
var ErrScanInProgress = errors.New("watch: scan already in progress")

// Watcher owns a scan configuration and the state needed to short-circuit
// repeated scans of an unchanged source tree.
type Watcher struct {
	cfg       config
	ownedPool bool

	isTransforming atomic.Bool

	mu       sync.Mutex
	lastHash string
	lastAt   time.Time
	lastRes  *Result
}

// New creates a Watcher. WithScanRoots must be supplied for Scan to find
// anything.
func New(opts ...Option) *Watcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := &Watcher{cfg: cfg}
	if w.cfg.pool == nil {
		w.cfg.pool = source.NewPool(0)
		w.ownedPool = true
	}
	return w
}

// Close releases the tree-sitter parser pool, if this Watcher created its
// own (i.e. WithPool was not used).
func (w *Watcher) Close() {
	if w.ownedPool {
		w.cfg.pool.Close()
	}
}

// Scan runs one full pass over the configured scan roots: parse, classify,
// register, validate, and build a ConfigArtifact, optionally persisting it
// through a configured configgen.Generator.
//
// A Scan already in flight causes a concurrent call to return
// ErrScanInProgress immediately rather than queuing. A content hash
// unchanged within the configured cache window short-circuits to the
// previous Result without re-running any downstream stage.
func (w *Watcher) Scan(ctx context.Context) (*Result, error) {
	if !w.isTransforming.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer w.isTransforming.Store(false)

	files, err := collectFiles(w.cfg.scanRoots, w.cfg.excludeGlobs, w.cfg.extensions)
	if err != nil {
		return nil, fmt.Errorf("watch: collecting files: %w", err)
	}

	hash := configgen.ContentHash(w.cfg.scanRoots, files, "")

	w.mu.Lock()
	if w.lastRes != nil && hash == w.lastHash && time.Since(w.lastAt) < w.cfg.cacheWindow {
		cached := *w.lastRes
		cached.Cached = true
		w.mu.Unlock()
		w.cfg.logger.Debug("watch: serving cached scan result", "hash", hash)
		return &cached, nil
	}
	w.mu.Unlock()

	scanResult, err := resolver.Scan(ctx, w.cfg.pool, files, w.cfg.classifierOpts...)
	if err != nil {
		return nil, fmt.Errorf("watch: scan: %w", err)
	}
	for _, issue := range scanResult.Issues {
		w.cfg.logger.Warn("watch: parse issue", "file", issue.FilePath, "error", issue.Err)
	}

	r := resolver.New(w.cfg.resolverOpts...)
	r.Register(scanResult.Results)

	v := validate.New(w.cfg.validateOpts...)
	validation := v.Validate(r)
	for _, issue := range validation.Errors {
		w.cfg.logger.Error("watch: validation error", "category", issue.Category.String(), "message", issue.Message)
	}

	var classes []source.Class
	for _, res := range scanResult.Results {
		classes = append(classes, res.Class)
	}
	artifact := configgen.BuildArtifact(r, classes)

	if w.cfg.generator != nil {
		if _, err := w.cfg.generator.Generate(ctx, hash, artifact); err != nil {
			return nil, fmt.Errorf("watch: generating artifact: %w", err)
		}
	}

	res := &Result{Hash: hash, Artifact: artifact, Validation: validation, Resolver: r}

	w.mu.Lock()
	w.lastHash, w.lastAt, w.lastRes = hash, time.Now(), res
	w.mu.Unlock()

	return res, nil
}
