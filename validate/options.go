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

package validate

import "log/slog"

type config struct {
	activeProfiles map[string]struct{}
	logger         *slog.Logger
}

// Option configures a Validator.
type Option func(*config)

// WithActiveProfiles sets the profiles considered active for the
// profile-mismatch check. A Binding with no Profiles of its own is always
// active, regardless of this set.
func WithActiveProfiles(profiles ...string) Option {
	return func(c *config) {
		for _, p := range profiles {
			c.activeProfiles[p] = struct{}{}
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

func defaultConfig() config {
	return config{
		activeProfiles: make(map[string]struct{}),
		logger:         slog.Default(),
	}
}

func (c *config) isActive(profiles []string) bool {
	if len(profiles) == 0 {
		return true
	}
	for _, p := range profiles {
		if _, ok := c.activeProfiles[p]; ok {
			return true
		}
	}
	return false
}
