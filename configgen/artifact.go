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

package configgen

import (
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/source"
)

// BuildArtifact assembles a ConfigArtifact from a resolved scan: one entry
// per Binding (always under its location-qualified key, plus its plain
// sanitized key when that binding is the deterministic pick for it), and
// one entry per discovered @Bean provider method.
func BuildArtifact(r *resolver.Resolver, classes []source.Class) *model.ConfigArtifact {
	artifact := model.NewConfigArtifact()

	for _, key := range distinctKeys(r) {
		group := r.Bindings.ByKey(key)
		for _, b := range group {
			artifact.Put(b.LocationKey(), bindingEntry(r, b))
		}
		if winner, ok := pickDeterministic(group); ok {
			artifact.Put(key, bindingEntry(r, winner))
		}
	}

	for _, bn := range discoverBeans(classes) {
		artifact.Put(bn.key, bn.entry)
	}

	return artifact
}

func distinctKeys(r *resolver.Resolver) []string {
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

// pickDeterministic mirrors resolver.Resolver's within-tier tie-break: a
// single declared-primary Binding wins outright, otherwise the first
// candidate in the already (filePath, line, class)-sorted group wins.
func pickDeterministic(group []*model.Binding) (*model.Binding, bool) {
	if len(group) == 0 {
		return nil, false
	}
	var primaries []*model.Binding
	for _, b := range group {
		if b.DeclaredPrimary {
			primaries = append(primaries, b)
		}
	}
	if len(primaries) == 1 {
		return primaries[0], true
	}
	return group[0], true
}

func bindingEntry(r *resolver.Resolver, b *model.Binding) model.FactoryEntry {
	var deps []string
	if rec, ok := r.Deps.Get(b.ImplementationClass); ok {
		for _, p := range rec.ConstructorParams {
			deps = append(deps, p.SanitizedKey)
		}
	}
	return model.FactoryEntry{
		FactoryDescriptor:   "new " + b.ImplementationClass,
		Scope:               b.Scope,
		Dependencies:        deps,
		InterfaceName:       b.InterfaceName,
		ImplementationClass: b.ImplementationClass,
		IsAutoResolved:      true,
		Qualifier:           b.Qualifier,
		Profiles:            b.Profiles,
	}
}
