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

package resolver

import "log/slog"

type config struct {
	strict bool
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*config)

// WithStrictMode disables the partial-key-containment fallback tier
// entirely: a would-be partial match is treated as unresolved rather than
// as a permissive, warning-only fallback.
func WithStrictMode(enabled bool) Option {
	return func(c *config) { c.strict = enabled }
}

// WithLogger provides a custom logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultConfig() config {
	return config{logger: slog.Default()}
}
