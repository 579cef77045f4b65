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
	"errors"
	"sort"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/model"
)

// InheritanceIssue records a cycle detected while walking a registered
// class's base-class chain. The validator reports each one as an error.
type InheritanceIssue struct {
	ServiceClass string
	FilePath     string
	Line         int
	Chain        []string
}

// Resolver drives classify.Result values through the two-pass registration
// algorithm and answers Resolve queries over the resulting tables.
type Resolver struct {
	cfg      config
	Bindings *model.BindingsTable
	Deps     *model.DependencyTable

	// InheritanceIssues collects base-class cycles seen during Register.
	InheritanceIssues []InheritanceIssue
}

// New creates an empty Resolver.
func New(opts ...Option) *Resolver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{
		cfg:      cfg,
		Bindings: model.NewBindingsTable(),
		Deps:     model.NewDependencyTable(),
	}
}

// Register runs Pass 1 (bindings) over every result, then Pass 2
// (dependencies) over every result; Pass 1 completes in full before Pass
// 2 begins. Results are sorted by
// (FilePath, Line, Class.Name) first, so registration is deterministic
// regardless of the order classify produced them in (itself a product of
// concurrent file parsing).
func (r *Resolver) Register(results []classify.Result) {
	ordered := make([]classify.Result, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].Class, ordered[j].Class
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Name < b.Name
	})

	for _, res := range ordered {
		r.registerBindings(res)
	}
	for _, res := range ordered {
		r.registerDependencies(res)
	}

	r.cfg.logger.Debug("registered bindings",
		"classes", len(ordered),
		"bindings", len(r.Bindings.All()),
		"dependencies", len(r.Deps.All()))
}

// registerBindings implements Pass 1: interface, then inheritance, then
// state, then the class fallback, in that fixed order.
func (r *Resolver) registerBindings(res classify.Result) {
	if !res.Service {
		return
	}
	cls := res.Class
	meta := res.Metadata
	fired := false

	var cyc *classify.ErrInheritanceCycle
	if errors.As(res.InheritanceErr, &cyc) {
		r.InheritanceIssues = append(r.InheritanceIssues, InheritanceIssue{
			ServiceClass: cls.Name,
			FilePath:     cls.FilePath,
			Line:         cls.Line,
			Chain:        cyc.Chain,
		})
	}

	// 1. Interface-kind bindings, one per implemented interface.
	for _, iface := range res.Interfaces {
		r.Bindings.Add(&model.Binding{
			InterfaceName:       iface.Name,
			ImplementationClass: cls.Name,
			FilePath:            cls.FilePath,
			LineNumber:          cls.Line,
			IsGeneric:           iface.IsGeneric,
			TypeParameters:      iface.TypeParameters,
			SanitizedKey:        iface.SanitizedKey,
			Kind:                model.KindInterface,
			Primary:             true,
			DeclaredPrimary:     meta.Primary,
			Scope:               meta.Scope,
			Qualifier:           meta.Qualifier,
			Profiles:            meta.Profiles,
		})
		fired = true
	}

	// 2. Inheritance-kind bindings, one per in-scope base mapping.
	for _, inh := range res.Inheritance {
		r.Bindings.Add(&model.Binding{
			InterfaceName:       inh.BaseClass,
			ImplementationClass: cls.Name,
			FilePath:            cls.FilePath,
			LineNumber:          cls.Line,
			IsGeneric:           inh.IsGeneric,
			TypeParameters:      inh.TypeParameters,
			SanitizedKey:        inh.BaseTypeName,
			Kind:                model.KindInheritance,
			Primary:             true,
			DeclaredPrimary:     meta.Primary,
			Scope:               meta.Scope,
			Qualifier:           meta.Qualifier,
			Profiles:            meta.Profiles,
			BaseClass:           inh.BaseClass,
			BaseClassGeneric:    inh.BaseClassGeneric,
			InheritanceChain:    res.InheritanceChain,
		})
		fired = true
	}

	// 3. State-kind binding, at most one.
	if res.HasState {
		r.Bindings.Add(&model.Binding{
			InterfaceName:       res.State.ServiceInterface,
			ImplementationClass: cls.Name,
			FilePath:            cls.FilePath,
			LineNumber:          cls.Line,
			SanitizedKey:        res.State.SanitizedKey,
			Kind:                model.KindState,
			Primary:             true,
			DeclaredPrimary:     meta.Primary,
			Scope:               meta.Scope,
			Qualifier:           meta.Qualifier,
			Profiles:            meta.Profiles,
			StateType:           res.State.StateType,
			ServiceInterface:    res.State.ServiceInterface,
		})
		fired = true
	}

	if !fired {
		// 4. Nothing fired: the sole Class-kind Binding is itself primary.
		r.Bindings.Add(r.classBinding(res, true))
		return
	}

	// 5. Something fired: an additional "direct" Class-kind Binding, lower
	// precedence than any primary binding above.
	r.Bindings.Add(r.classBinding(res, false))
}

func (r *Resolver) classBinding(res classify.Result, primary bool) *model.Binding {
	cls := res.Class
	meta := res.Metadata
	return &model.Binding{
		InterfaceName:       cls.Name,
		ImplementationClass: cls.Name,
		FilePath:            cls.FilePath,
		LineNumber:          cls.Line,
		SanitizedKey:        classKey(cls.Name),
		Kind:                model.KindClass,
		Primary:             primary,
		DeclaredPrimary:     meta.Primary,
		Scope:               meta.Scope,
		Qualifier:           meta.Qualifier,
		Profiles:            meta.Profiles,
	}
}

// registerDependencies implements Pass 2.
func (r *Resolver) registerDependencies(res classify.Result) {
	if !res.Service {
		return
	}
	r.Deps.Add(&model.DependencyRecord{
		ServiceClass:      res.Class.Name,
		FilePath:          res.Class.FilePath,
		ConstructorParams: res.Dependencies,
	})
}
