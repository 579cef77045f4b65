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

	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/source"
)

// Metadata is the set of metadata-only decorators a service class may
// carry: @Qualifier, @Primary, @Scope, @Profile. None of
// these gate whether a class is a service, and none change which
// interfaces/bases/state pattern it matches; they only annotate the
// Bindings produced from it.
type Metadata struct {
	Primary   bool
	Qualifier string
	Scope     model.Scope
	Profiles  []string
}

// ExtractMetadata reads a class's metadata-only decorators.
func ExtractMetadata(cls source.Class) Metadata {
	m := Metadata{Scope: model.ScopeSingleton}
	if _, ok := cls.Decorator("Primary"); ok {
		m.Primary = true
	}
	if d, ok := cls.Decorator("Qualifier"); ok {
		m.Qualifier = unquoteArg(d.Args)
	}
	if d, ok := cls.Decorator("Scope"); ok {
		m.Scope = parseScope(unquoteArg(d.Args))
	}
	if d, ok := cls.Decorator("Profile"); ok {
		m.Profiles = splitQuotedArgs(d.Args)
	}
	return m
}

func parseScope(s string) model.Scope {
	switch strings.ToLower(s) {
	case "transient":
		return model.ScopeTransient
	case "scoped":
		return model.ScopeScoped
	default:
		return model.ScopeSingleton
	}
}

// unquoteArg strips a single pair of surrounding quotes from a decorator's
// first (and typically only) argument, e.g. `"primary"` from `@Qualifier("primary")`.
func unquoteArg(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && last == first {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func splitQuotedArgs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		v := unquoteArg(part)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
