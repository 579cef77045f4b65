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

import "time"

// Settings is the full set of knobs the analyzer, validator, generator,
// and watcher need. Every field has a matching default in Default, and
// every field can be overridden by an environment variable via its `env`
// tag.
type Settings struct {
	// ScanRoots lists the directories scanned for source files.
	ScanRoots []string `json:"scanRoots" env:"SCAN_ROOTS"`
	// ExcludeGlobs lists filepath.Match patterns for paths to skip.
	ExcludeGlobs []string `json:"excludeGlobs" env:"EXCLUDE_GLOBS"`
	// Extensions lists the file extensions scanned, e.g. [".ts"].
	Extensions []string `json:"extensions" env:"EXTENSIONS"`

	// ServiceMarkers lists the decorator names that mark a class as a
	// service.
	ServiceMarkers []string `json:"serviceMarkers" env:"SERVICE_MARKERS"`
	// InjectDecorator is the parameter-level injection marker decorator.
	InjectDecorator string `json:"injectDecorator" env:"INJECT_DECORATOR"`
	// InjectWrapper and InjectOptionalWrapper are the designated generic
	// injection-wrapper type spellings.
	InjectWrapper         string `json:"injectWrapper" env:"INJECT_WRAPPER"`
	InjectOptionalWrapper string `json:"injectOptionalWrapper" env:"INJECT_OPTIONAL_WRAPPER"`
	// StateContainerBase is the base class name that triggers the
	// state-container pattern.
	StateContainerBase string `json:"stateContainerBase" env:"STATE_CONTAINER_BASE"`
	// MaxInheritanceDepth bounds the base-class chain walk.
	MaxInheritanceDepth int `json:"maxInheritanceDepth" env:"MAX_INHERITANCE_DEPTH"`

	// EnableInheritanceDI and EnableStateDI toggle whether inheritance
	// and state-container bindings are produced at all.
	EnableInheritanceDI bool `json:"enableInheritanceDI" env:"ENABLE_INHERITANCE_DI"`
	EnableStateDI       bool `json:"enableStateDI" env:"ENABLE_STATE_DI"`
	// EnableFunctionalDI and EnableInterfaceResolution are recorded
	// verbatim into every generated artifact's metadata sidecar.
	EnableFunctionalDI        bool `json:"enableFunctionalDI" env:"ENABLE_FUNCTIONAL_DI"`
	EnableInterfaceResolution bool `json:"enableInterfaceResolution" env:"ENABLE_INTERFACE_RESOLUTION"`

	// StrictMode disables the resolver's permissive partial-match
	// fallback tier.
	StrictMode bool `json:"strictMode" env:"STRICT_MODE"`

	// ActiveProfiles lists the profiles considered active by the
	// validator's profile-mismatch check.
	ActiveProfiles []string `json:"activeProfiles" env:"ACTIVE_PROFILES"`

	// OutputDir is the root directory generated artifacts are written
	// under.
	OutputDir string `json:"outputDir" env:"OUTPUT_DIR"`
	// Retention is how many content-hash artifact directories survive
	// pruning.
	Retention int `json:"retention" env:"RETENTION"`
	// PackageName and Environment are recorded into every generated
	// artifact's metadata sidecar.
	PackageName string `json:"packageName" env:"PACKAGE_NAME"`
	Environment string `json:"environment" env:"ENVIRONMENT"`

	// CacheWindow is how long an unchanged content hash is trusted before
	// watch.Watcher forces a rescan anyway.
	CacheWindow time.Duration `json:"cacheWindow" env:"CACHE_WINDOW,unit:s"`
	// Debounce is how long watch.Watcher.Run waits after the last
	// filesystem event in a burst before triggering a rescan.
	Debounce time.Duration `json:"debounce" env:"DEBOUNCE,unit:ms"`

	// LogLevel and LogFormat configure the *slog.Logger built by Logger
	// and handed to every pipeline stage's WithLogger option. Accepted
	// values are whatever log.ParseLevel/log.ParseFormat accept
	// ("debug"/"info"/"warn"/"error", "text"/"json"); an unrecognized
	// value is silently ignored by the underlying log.With* option, same
	// as calling it directly.
	LogLevel  string `json:"logLevel" env:"LOG_LEVEL"`
	LogFormat string `json:"logFormat" env:"LOG_FORMAT"`
}
