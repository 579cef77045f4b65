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

package classify

import (
	"strings"

	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/source"
)

// extractDependencies lists cls's constructor parameters marked for
// injection, ignoring every parameter that carries neither the
// injection marker decorator nor the designated injection wrapper type.
// Non-constructor injection is not supported.
func extractDependencies(cls source.Class, cfg config) []model.ParamDependency {
	var deps []model.ParamDependency
	for _, p := range cls.ConstructorParams {
		declaredType, optional, marked := resolveInjectionMarker(p, cfg)
		if !marked {
			continue
		}
		deps = append(deps, model.ParamDependency{
			ParamName:    p.Name,
			DeclaredType: declaredType,
			SanitizedKey: key.Sanitize(declaredType),
			IsOptional:   optional,
		})
	}
	return deps
}

// resolveInjectionMarker determines whether a parameter is marked for
// injection, and if so, its effective declared type (unwrapped from an
// Inject<T>/InjectOptional<T> wrapper, if that form was used) and whether
// it is optional.
func resolveInjectionMarker(p source.Param, cfg config) (declaredType string, optional bool, marked bool) {
	if _, ok := p.Decorator(cfg.injectDecorator); ok {
		return p.TypeSpelling, p.Optional, true
	}

	wrapper, inner, ok := unwrapGeneric(p.TypeSpelling)
	if !ok {
		return "", false, false
	}
	switch wrapper {
	case cfg.injectWrapper:
		return inner, p.Optional, true
	case cfg.injectOptionalWrapper:
		return inner, true, true
	default:
		return "", false, false
	}
}

// unwrapGeneric splits a single-argument generic type spelling such as
// "Inject<Logger>" into its wrapper name "Inject" and inner type "Logger".
func unwrapGeneric(spelling string) (wrapper, inner string, ok bool) {
	open := strings.IndexByte(spelling, '<')
	if open < 0 || !strings.HasSuffix(spelling, ">") {
		return "", "", false
	}
	return strings.TrimSpace(spelling[:open]), strings.TrimSpace(spelling[open+1 : len(spelling)-1]), true
}
