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
	"log/slog"
	"time"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/configgen"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/source"
	"github.com/deep-rent/wireup/validate"
)

// DefaultCacheWindow is how long an unchanged content hash is trusted
// before a rescan is forced even if nothing appears to have changed.
const DefaultCacheWindow = 5 * time.Second

// DefaultDebounce is how long Run waits after the last filesystem event in
// a burst before triggering a rescan.
const DefaultDebounce = 300 * time.Millisecond

// DefaultExtension is the file extension scanned when no extensions are
// configured.
const DefaultExtension = ".ts"

type config struct {
	scanRoots    []string
	excludeGlobs []string
	extensions   []string

	classifierOpts []classify.Option
	resolverOpts   []resolver.Option
	validateOpts   []validate.Option

	pool      *source.Pool
	generator *configgen.Generator

	cacheWindow time.Duration
	debounce    time.Duration
	logger      *slog.Logger
}

// Option configures a Watcher.
type Option func(*config)

func defaultConfig() config {
	return config{
		extensions:  []string{DefaultExtension},
		cacheWindow: DefaultCacheWindow,
		debounce:    DefaultDebounce,
		logger:      slog.Default(),
	}
}

// WithScanRoots sets the directories a Watcher scans. Required.
func WithScanRoots(roots ...string) Option {
	return func(cfg *config) { cfg.scanRoots = roots }
}

// WithExcludeGlobs sets filepath.Match-style patterns for paths to skip,
// such as "*.spec.ts" or "node_modules". A path is skipped if a pattern
// matches its base name or the whole walked path (scan root included), or if
// a pattern equals one of the path's directory names.
func WithExcludeGlobs(globs ...string) Option {
	return func(cfg *config) { cfg.excludeGlobs = globs }
}

// WithExtensions sets which file extensions are scanned. Defaults to
// [".ts"].
func WithExtensions(exts ...string) Option {
	return func(cfg *config) {
		if len(exts) > 0 {
			cfg.extensions = exts
		}
	}
}

// WithClassifyOptions forwards options to the classify.Classifier built for
// every scan.
func WithClassifyOptions(opts ...classify.Option) Option {
	return func(cfg *config) { cfg.classifierOpts = opts }
}

// WithResolverOptions forwards options to the resolver.Resolver built for
// every scan.
func WithResolverOptions(opts ...resolver.Option) Option {
	return func(cfg *config) { cfg.resolverOpts = opts }
}

// WithValidateOptions forwards options to the validate.Validator run after
// every scan.
func WithValidateOptions(opts ...validate.Option) Option {
	return func(cfg *config) { cfg.validateOpts = opts }
}

// WithPool supplies the tree-sitter parser pool to parse files with. If
// unset, a Watcher creates and owns its own source.Pool.
func WithPool(pool *source.Pool) Option {
	return func(cfg *config) { cfg.pool = pool }
}

// WithGenerator supplies a configgen.Generator to persist every built
// artifact to disk. If unset, Scan builds the ConfigArtifact in memory
// without writing it anywhere, useful for tests and for callers that
// persist artifacts themselves.
func WithGenerator(gen *configgen.Generator) Option {
	return func(cfg *config) { cfg.generator = gen }
}

// WithCacheWindow overrides DefaultCacheWindow.
func WithCacheWindow(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.cacheWindow = d
		}
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.debounce = d
		}
	}
}

// WithLogger provides a custom logger. A nil value is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.logger = log
		}
	}
}
