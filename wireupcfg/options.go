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
	"log/slog"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/configgen"
	wireuplog "github.com/deep-rent/wireup/log"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/validate"
	"github.com/deep-rent/wireup/watch"
)

// Logger builds the *slog.Logger every WithLogger option below is given,
// configured from s.LogLevel and s.LogFormat. An unrecognized level or
// format is left at log's own default rather than rejected, matching
// log.WithLevel/log.WithFormat's own no-op-on-invalid-input behavior.
func (s Settings) Logger() *slog.Logger {
	return wireuplog.New(
		wireuplog.WithLevel(s.LogLevel),
		wireuplog.WithFormat(s.LogFormat),
	)
}

// ClassifierOptions translates s into the options classify.New expects.
func (s Settings) ClassifierOptions() []classify.Option {
	opts := []classify.Option{
		classify.WithMaxInheritanceDepth(s.MaxInheritanceDepth),
		classify.WithInheritanceDI(s.EnableInheritanceDI),
		classify.WithStateDI(s.EnableStateDI),
	}
	if len(s.ServiceMarkers) > 0 {
		opts = append(opts, classify.WithServiceMarkers(s.ServiceMarkers...))
	}
	if s.StateContainerBase != "" {
		opts = append(opts, classify.WithStateContainerBase(s.StateContainerBase))
	}
	if s.InjectDecorator != "" {
		opts = append(opts, classify.WithInjectDecorator(s.InjectDecorator))
	}
	if s.InjectWrapper != "" || s.InjectOptionalWrapper != "" {
		opts = append(opts, classify.WithInjectWrappers(s.InjectWrapper, s.InjectOptionalWrapper))
	}
	return opts
}

// ResolverOptions translates s into the options resolver.New expects.
func (s Settings) ResolverOptions() []resolver.Option {
	return []resolver.Option{
		resolver.WithStrictMode(s.StrictMode),
		resolver.WithLogger(s.Logger()),
	}
}

// ValidatorOptions translates s into the options validate.New expects.
func (s Settings) ValidatorOptions() []validate.Option {
	opts := []validate.Option{
		validate.WithLogger(s.Logger()),
	}
	if len(s.ActiveProfiles) > 0 {
		opts = append(opts, validate.WithActiveProfiles(s.ActiveProfiles...))
	}
	return opts
}

// GeneratorOptions translates s into the options configgen.New expects.
func (s Settings) GeneratorOptions() []configgen.Option {
	opts := []configgen.Option{
		configgen.WithFeatureToggles(s.EnableFunctionalDI, s.EnableInterfaceResolution),
		configgen.WithLogger(s.Logger()),
	}
	if s.OutputDir != "" {
		opts = append(opts, configgen.WithOutputDir(s.OutputDir))
	}
	if s.Retention > 0 {
		opts = append(opts, configgen.WithRetention(s.Retention))
	}
	if s.PackageName != "" {
		opts = append(opts, configgen.WithPackageName(s.PackageName))
	}
	if s.Environment != "" {
		opts = append(opts, configgen.WithEnvironment(s.Environment))
	}
	return opts
}

// WatcherOptions translates s into the options watch.New expects, wiring
// the classify, resolver, and validate option slices above into the watch
// pipeline along with the watch-specific knobs.
func (s Settings) WatcherOptions() []watch.Option {
	opts := []watch.Option{
		watch.WithClassifyOptions(s.ClassifierOptions()...),
		watch.WithResolverOptions(s.ResolverOptions()...),
		watch.WithValidateOptions(s.ValidatorOptions()...),
		watch.WithLogger(s.Logger()),
	}
	if len(s.ScanRoots) > 0 {
		opts = append(opts, watch.WithScanRoots(s.ScanRoots...))
	}
	if len(s.ExcludeGlobs) > 0 {
		opts = append(opts, watch.WithExcludeGlobs(s.ExcludeGlobs...))
	}
	if len(s.Extensions) > 0 {
		opts = append(opts, watch.WithExtensions(s.Extensions...))
	}
	if s.CacheWindow > 0 {
		opts = append(opts, watch.WithCacheWindow(s.CacheWindow))
	}
	if s.Debounce > 0 {
		opts = append(opts, watch.WithDebounce(s.Debounce))
	}
	return opts
}
