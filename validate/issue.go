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

import "github.com/deep-rent/wireup/model"

// Category identifies which check produced an Issue.
type Category uint8

const (
	CategoryMissingService Category = iota
	CategoryCircularDependency
	CategoryScopeMismatch
	CategoryOrphanedService
	CategoryAmbiguousPrimary
	CategoryProfileMismatch
)

// String returns the kebab-case name of the Category.
func (c Category) String() string {
	switch c {
	case CategoryMissingService:
		return "missing-service"
	case CategoryCircularDependency:
		return "circular-dependency"
	case CategoryScopeMismatch:
		return "scope-mismatch"
	case CategoryOrphanedService:
		return "orphaned-service"
	case CategoryAmbiguousPrimary:
		return "ambiguous-primary"
	case CategoryProfileMismatch:
		return "profile-mismatch"
	default:
		return "unknown"
	}
}

// Issue is one finding of the graph validator.
type Issue struct {
	Category Category
	Severity model.Severity

	// ServiceClass is the class the issue is attached to.
	ServiceClass string
	FilePath     string
	Line         int

	// Token is the unresolvable dependency request, set only for
	// CategoryMissingService; RelatedTokens lists the services that
	// requested it.
	Token         string
	RelatedTokens []string

	Message string

	// Suggestion is an optional proposed fix: a closest-name match for a
	// missing service, or a lazy/factory-breaking hint for a cycle.
	Suggestion string

	// Cycle is set only for CategoryCircularDependency: the ordered list of
	// classes forming the cycle, its first class repeated at the end. Every
	// class on the cycle carries the same list, so it does not necessarily
	// start at ServiceClass.
	Cycle []string
}
