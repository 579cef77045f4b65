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

package wireupcfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/deep-rent/wireup/config"
	"github.com/deep-rent/wireup/env"
)

// Load builds a Settings value starting from Default, overlaying it with
// whatever is found in the file at path (if it exists), and finally
// overriding the result with any matching environment variable: a
// "file, then env" precedence, so every other package loads its options
// from the same, single Settings value.
//
// Both layers decode onto the Settings value produced by the layer before
// them rather than into a fresh zero value merged in afterwards: a field a
// file or the environment doesn't mention keeps whatever the previous layer
// left there. That distinction matters for the boolean knobs (Default sets
// EnableInheritanceDI and EnableStateDI to true): merging in a zero-valued
// struct would read an absent field the same as an explicit false and
// silently turn them back off.
//
// A missing file is not an error: Default alone (further overridden by
// the environment) is a valid, runnable configuration. A malformed file
// or an invalid environment variable value is.
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		if err := config.Load(path, &settings); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Settings{}, fmt.Errorf("wireupcfg: loading %q: %w", path, err)
			}
		}
	}

	if err := env.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("wireupcfg: reading environment: %w", err)
	}

	return settings, nil
}
