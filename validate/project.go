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

import (
	"fmt"

	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/resolver"
)

// project walks every DependencyRecord, resolving each constructor
// parameter to its implementing class via r.Resolve. It reports a
// missing-service Issue for every non-optional parameter that fails to
// resolve, a scope-mismatch Issue for every edge whose scopes disagree, and
// a profile-mismatch Issue for every edge where an active service depends
// on an inactive one. It returns the resolved edges for graph-level checks
// (cycles, orphans) to run over.
func (v *Validator) project(r *resolver.Resolver, result *ValidationResult) []model.Edge {
	var edges []model.Edge
	knownKeys := knownSanitizedKeys(r)

	for _, rec := range r.Deps.All() {
		serviceBindings := r.Bindings.ByClass(rec.ServiceClass)
		serviceScope, serviceProfiles := ownScope(serviceBindings)
		serviceActive := v.cfg.isActive(serviceProfiles)

		for _, dep := range rec.ConstructorParams {
			b, _, ok := r.Resolve(dep.DeclaredType)
			if !ok {
				if dep.IsOptional {
					continue
				}
				result.add(Issue{
					Category:      CategoryMissingService,
					Severity:      model.SeverityError,
					ServiceClass:  rec.ServiceClass,
					FilePath:      rec.FilePath,
					Token:         dep.DeclaredType,
					RelatedTokens: []string{rec.ServiceClass},
					Message:       fmt.Sprintf("%s depends on %q, which has no registered binding", rec.ServiceClass, dep.DeclaredType),
					Suggestion:    suggestKey(dep.SanitizedKey, knownKeys),
				})
				continue
			}

			edges = append(edges, model.Edge{
				ServiceClass:      rec.ServiceClass,
				ImplementingClass: b.ImplementationClass,
				Token:             dep.SanitizedKey,
				Optional:          dep.IsOptional,
			})

			if issue, ok := scopeMismatch(rec.ServiceClass, serviceScope, b); ok {
				result.add(issue)
			}
			if serviceActive && !v.cfg.isActive(b.Profiles) {
				result.add(Issue{
					Category:     CategoryProfileMismatch,
					Severity:     model.SeverityError,
					ServiceClass: rec.ServiceClass,
					FilePath:     rec.FilePath,
					Message:      fmt.Sprintf("%s is active but depends on %s, which is only active under profile(s) %v", rec.ServiceClass, b.ImplementationClass, b.Profiles),
				})
			}
		}
	}
	return edges
}

// ownScope returns the scope and profile set a class's own primary binding
// declares, falling back to the singleton/always-active defaults when a
// class has no binding of its own (a plain dependency target never scanned
// as a service).
func ownScope(bindings []*model.Binding) (model.Scope, []string) {
	for _, b := range bindings {
		if b.Primary {
			return b.Scope, b.Profiles
		}
	}
	if len(bindings) > 0 {
		return bindings[0].Scope, bindings[0].Profiles
	}
	return model.ScopeSingleton, nil
}

// scopeMismatch implements the scope-mismatch rule: a singleton
// depending on a transient is a warning, a scoped service depending on a
// singleton is informational. Neither direction is ever an error.
func scopeMismatch(serviceClass string, serviceScope model.Scope, dep *model.Binding) (Issue, bool) {
	switch {
	case serviceScope == model.ScopeSingleton && dep.Scope == model.ScopeTransient:
		return Issue{
			Category:     CategoryScopeMismatch,
			Severity:     model.SeverityWarning,
			ServiceClass: serviceClass,
			FilePath:     dep.FilePath,
			Message:      fmt.Sprintf("singleton %s depends on transient %s", serviceClass, dep.ImplementationClass),
		}, true
	case serviceScope == model.ScopeScoped && dep.Scope == model.ScopeSingleton:
		return Issue{
			Category:     CategoryScopeMismatch,
			Severity:     model.SeverityInfo,
			ServiceClass: serviceClass,
			FilePath:     dep.FilePath,
			Message:      fmt.Sprintf("scoped %s depends on singleton %s", serviceClass, dep.ImplementationClass),
		}, true
	default:
		return Issue{}, false
	}
}

func knownSanitizedKeys(r *resolver.Resolver) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, b := range r.Bindings.All() {
		if _, ok := seen[b.SanitizedKey]; !ok {
			seen[b.SanitizedKey] = struct{}{}
			keys = append(keys, b.SanitizedKey)
		}
	}
	return keys
}
