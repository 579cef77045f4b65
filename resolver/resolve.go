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

package resolver

import (
	"strings"

	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/model"
)

// Tier identifies which step of the resolution ladder produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierPrimaryExact
	TierStateContainer
	TierInheritance
	TierState
	TierClass
	TierInterfaceNameFallback
	TierPartialContainment
)

// Info describes how a Resolve call arrived at its result.
type Info struct {
	Tier      Tier
	Ambiguous bool
	// Warning is true only for a TierPartialContainment hit: the fallback
	// tier is a safety net that can mask bugs, so every hit through it is
	// reported, never silently accepted.
	Warning bool
}

// classKey canonicalizes a bare class name for Class-kind bindings: the
// same Sanitize used for everything else, since a class name carries no
// generic arguments of its own.
func classKey(className string) string {
	return key.Sanitize(className)
}

// Resolve looks up the Binding for a user-written type spelling, walking
// the resolution ladder tier by tier. It returns ok=false only after every
// tier has been tried and none matched.
func (r *Resolver) Resolve(spelling string) (*model.Binding, Info, bool) {
	sanitized := key.Sanitize(spelling)

	// Tier 1: exact match against a primary Interface/Inheritance/State
	// Binding.
	if b, ambiguous, ok := r.pick(filterKind(r.Bindings.ByKey(sanitized), true,
		model.KindInterface, model.KindInheritance, model.KindState)); ok {
		return b, Info{Tier: TierPrimaryExact, Ambiguous: ambiguous}, true
	}

	// Tier 2: state-container pattern.
	if _, args, ok := splitGeneric(spelling); ok {
		var stateMatches []*model.Binding
		for _, b := range r.Bindings.All() {
			if b.Kind == model.KindState && b.StateType == args && b.ServiceInterface == spelling {
				stateMatches = append(stateMatches, b)
			}
		}
		if b, ambiguous, ok := r.pick(stateMatches); ok {
			return b, Info{Tier: TierStateContainer, Ambiguous: ambiguous}, true
		}

		var inhLiteral []*model.Binding
		for _, b := range r.Bindings.All() {
			if b.Kind == model.KindInheritance && b.BaseClassGeneric == spelling {
				inhLiteral = append(inhLiteral, b)
			}
		}
		if b, ambiguous, ok := r.pick(inhLiteral); ok {
			return b, Info{Tier: TierStateContainer, Ambiguous: ambiguous}, true
		}

		if b, ambiguous, ok := r.pick(r.Bindings.ByKey(sanitized)); ok {
			return b, Info{Tier: TierStateContainer, Ambiguous: ambiguous}, true
		}
	}

	// Tier 3: Inheritance-kind Binding under either canonical form.
	inhForm := key.SanitizeInheritance(spelling)
	inhCandidates := filterKind(r.Bindings.ByKey(sanitized), false, model.KindInheritance)
	if inhForm != sanitized {
		inhCandidates = append(inhCandidates, filterKind(r.Bindings.ByKey(inhForm), false, model.KindInheritance)...)
	}
	if b, ambiguous, ok := r.pick(dedupe(inhCandidates)); ok {
		return b, Info{Tier: TierInheritance, Ambiguous: ambiguous}, true
	}

	// Tier 4: State-kind Binding with matching sanitizedKey.
	if b, ambiguous, ok := r.pick(filterKind(r.Bindings.ByKey(sanitized), false, model.KindState)); ok {
		return b, Info{Tier: TierState, Ambiguous: ambiguous}, true
	}

	// Tier 5: Class-kind Binding, primary registrations before "direct"
	// secondaries.
	classCandidates := filterKind(r.Bindings.ByKey(sanitized), false, model.KindClass)
	if primary := filterPrimary(classCandidates); len(primary) > 0 {
		classCandidates = primary
	}
	if b, ambiguous, ok := r.pick(classCandidates); ok {
		return b, Info{Tier: TierClass, Ambiguous: ambiguous}, true
	}

	// Tier 6: any Binding whose interfaceName string-equals the raw input.
	var nameMatches []*model.Binding
	for _, b := range r.Bindings.All() {
		if b.InterfaceName == spelling {
			nameMatches = append(nameMatches, b)
		}
	}
	if b, ambiguous, ok := r.pick(nameMatches); ok {
		return b, Info{Tier: TierInterfaceNameFallback, Ambiguous: ambiguous}, true
	}

	// Tier 7: partial composite-id containment, disabled entirely under
	// StrictMode.
	if !r.cfg.strict {
		var partial []*model.Binding
		for _, b := range r.Bindings.All() {
			if strings.Contains(b.CompositeID(), sanitized) {
				partial = append(partial, b)
			}
		}
		if b, ambiguous, ok := r.pick(partial); ok {
			r.cfg.logger.Warn("resolver: partial key match",
				"spelling", spelling, "implementation", b.ImplementationClass)
			return b, Info{Tier: TierPartialContainment, Ambiguous: ambiguous, Warning: true}, true
		}
	}

	return nil, Info{Tier: TierNone}, false
}

// ResolveLocation resolves a location-qualified key directly, bypassing
// the ladder entirely.
func (r *Resolver) ResolveLocation(locationKey string) (*model.Binding, bool) {
	return r.Bindings.ByLocationKey(locationKey)
}

// pick applies the within-tier tie-break rule: a single declared-primary
// Binding wins outright; otherwise, if more than one candidate remains,
// an ambiguity is reported and the deterministic first-by-(filePath,
// line, class) candidate is returned (candidates are always handed to
// pick already in that order).
func (r *Resolver) pick(candidates []*model.Binding) (*model.Binding, bool, bool) {
	if len(candidates) == 0 {
		return nil, false, false
	}
	if len(candidates) == 1 {
		return candidates[0], false, true
	}
	var primaries []*model.Binding
	for _, c := range candidates {
		if c.DeclaredPrimary {
			primaries = append(primaries, c)
		}
	}
	if len(primaries) == 1 {
		return primaries[0], false, true
	}
	return candidates[0], true, true
}

func filterKind(bs []*model.Binding, primaryOnly bool, kinds ...model.Kind) []*model.Binding {
	set := make(map[model.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	var out []*model.Binding
	for _, b := range bs {
		if _, ok := set[b.Kind]; !ok {
			continue
		}
		if primaryOnly && !b.Primary {
			continue
		}
		out = append(out, b)
	}
	return out
}

func filterPrimary(bs []*model.Binding) []*model.Binding {
	var out []*model.Binding
	for _, b := range bs {
		if b.Primary {
			out = append(out, b)
		}
	}
	return out
}

func dedupe(bs []*model.Binding) []*model.Binding {
	seen := make(map[*model.Binding]struct{}, len(bs))
	var out []*model.Binding
	for _, b := range bs {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// splitGeneric splits a single top-level generic spelling "Base<S>" into
// its name and argument text. It reports ok=false for a non-generic
// spelling.
func splitGeneric(spelling string) (name, args string, ok bool) {
	open := strings.IndexByte(spelling, '<')
	if open < 0 || !strings.HasSuffix(spelling, ">") {
		return "", "", false
	}
	return strings.TrimSpace(spelling[:open]), strings.TrimSpace(spelling[open+1 : len(spelling)-1]), true
}
