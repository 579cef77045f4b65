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

package configgen

import (
	"log/slog"

	"github.com/deep-rent/wireup/backoff"
	"github.com/deep-rent/wireup/clock"
)

// DefaultOutputDir is the directory artifacts are written under when no
// WithOutputDir option is given.
const DefaultOutputDir = ".wireup"

// DefaultRetention is how many content-hash directories are kept before
// the oldest ones are pruned.
const DefaultRetention = 5

// DefaultMaxWriteAttempts is how many times an artifact-directory write is
// retried before it is treated as fatal.
const DefaultMaxWriteAttempts = 3

type config struct {
	outputDir   string
	ext         string
	retention   int
	packageName string
	environment string

	enableFunctionalDI        bool
	enableInterfaceResolution bool

	clock            clock.Clock
	logger           *slog.Logger
	backoffStrategy  backoff.Strategy
	maxWriteAttempts int
}

// Option configures a Generator.
type Option func(*config)

// WithOutputDir sets the root directory artifacts are written under.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.outputDir = dir }
}

// WithRetention sets how many hash-named artifact directories survive
// pruning after a successful write. A value below 1 is treated as 1: the
// artifact just written is always kept.
func WithRetention(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.retention = n
	}
}

// WithPackageName sets the packageName recorded in .config-meta.json.
func WithPackageName(name string) Option {
	return func(c *config) { c.packageName = name }
}

// WithEnvironment sets the environment recorded in .config-meta.json.
func WithEnvironment(env string) Option {
	return func(c *config) { c.environment = env }
}

// WithFeatureToggles records which optional resolution strategies were
// active for this generation, mirrored verbatim into .config-meta.json.
func WithFeatureToggles(functionalDI, interfaceResolution bool) Option {
	return func(c *config) {
		c.enableFunctionalDI = functionalDI
		c.enableInterfaceResolution = interfaceResolution
	}
}

// WithClock overrides the clock used to timestamp .config-meta.json.
// Defaults to clock.SystemClock.
func WithClock(ck clock.Clock) Option {
	return func(c *config) {
		if ck != nil {
			c.clock = ck
		}
	}
}

// WithLogger provides a custom logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithBackoffStrategy overrides the retry strategy used between failed
// artifact-directory write attempts.
func WithBackoffStrategy(s backoff.Strategy) Option {
	return func(c *config) {
		if s != nil {
			c.backoffStrategy = s
		}
	}
}

// WithMaxWriteAttempts overrides DefaultMaxWriteAttempts.
func WithMaxWriteAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxWriteAttempts = n
		}
	}
}

func defaultConfig() config {
	return config{
		outputDir:        DefaultOutputDir,
		ext:              "json",
		retention:        DefaultRetention,
		clock:            clock.SystemClock(),
		logger:           slog.Default(),
		backoffStrategy:  backoff.New(backoff.WithMinDelay(0)),
		maxWriteAttempts: DefaultMaxWriteAttempts,
	}
}
