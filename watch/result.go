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
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/validate"
)

// Result is everything one scan produced.
type Result struct {
	Hash       string
	Artifact   *model.ConfigArtifact
	Validation *validate.ValidationResult
	Resolver   *resolver.Resolver

	// Cached reports whether this Result was served from the unchanged-
	// input cache window rather than freshly computed.
	Cached bool
}
