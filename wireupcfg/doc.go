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

// Package wireupcfg loads the settings every other package in this module
// needs an instance of, from a config file via config.Load and then from
// the environment via env.Unmarshal (the latter taking precedence, for
// overriding a checked-in file at deploy time without editing it).
//
// A Settings value is the single source of truth for scan roots, exclude
// globs, the service-marker decorator set, the injection marker spelling,
// the designated state-container base class, feature toggles, active
// profiles, and the log level/format every stage's logger is built from.
// Its ClassifierOptions/ResolverOptions/ValidatorOptions/
// GeneratorOptions/WatcherOptions methods translate it into the option
// slices classify.New, resolver.New, validate.New, configgen.New, and
// watch.New each expect, so a caller wires the whole pipeline from one
// loaded value instead of repeating the same translation at every call
// site.
package wireupcfg
