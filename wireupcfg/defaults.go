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
	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/configgen"
	wireuplog "github.com/deep-rent/wireup/log"
	"github.com/deep-rent/wireup/watch"
)

// Default returns the Settings every other package already falls back to
// on its own when no option overrides a given knob, collected in one
// place so a caller can start from a known-good baseline and override only
// what differs for their project.
func Default() Settings {
	return Settings{
		Extensions: []string{watch.DefaultExtension},

		ServiceMarkers:        append([]string(nil), classify.DefaultServiceMarkers...),
		InjectDecorator:       classify.DefaultInjectDecorator,
		InjectWrapper:         classify.DefaultInjectWrapper,
		InjectOptionalWrapper: classify.DefaultInjectOptionalWrapper,
		MaxInheritanceDepth:   classify.DefaultMaxInheritanceDepth,
		EnableInheritanceDI:   true,
		EnableStateDI:         true,

		OutputDir: configgen.DefaultOutputDir,
		Retention: configgen.DefaultRetention,

		CacheWindow: watch.DefaultCacheWindow,
		Debounce:    watch.DefaultDebounce,

		LogLevel:  wireuplog.DefaultLevel.String(),
		LogFormat: wireuplog.DefaultFormat.String(),
	}
}
