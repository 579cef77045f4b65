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

package model

import (
	"fmt"
	"strings"
)

// Binding is one registered implementation. It is created once by the
// resolver when it processes a service-marked class and is never mutated
// afterward; the entire table is discarded and rebuilt on a full rescan.
type Binding struct {
	// InterfaceName is the user-written symbol this binding is keyed under
	// (an interface name, a base class name, a state type's name, or the
	// implementation class's own name for Class-kind bindings).
	InterfaceName string
	// ImplementationClass is the class that provides this binding.
	ImplementationClass string
	FilePath            string
	LineNumber           int

	IsGeneric      bool
	TypeParameters []string

	// SanitizedKey is the canonical identifier produced by the key package
	// for InterfaceName (or, for Class-kind bindings, for the class name).
	SanitizedKey string

	Kind Kind

	// Scope is the service's lifecycle management strategy, set from a
	// @Scope decorator or ScopeSingleton by default.
	Scope Scope

	// Primary is true for the primary registration produced by interface,
	// inheritance, or state evidence, and false for the secondary "direct"
	// Class-kind binding emitted alongside it. A plain Class-kind binding
	// with no other evidence is also Primary, since it is the only binding
	// for that class.
	Primary bool

	// DeclaredPrimary is true when the user tagged this binding's class with
	// the metadata-only @Primary decorator. It is unrelated to Primary
	// above: DeclaredPrimary breaks ties among several Bindings that share a
	// sanitizedKey during resolution, while Primary separates a structural
	// primary registration from its "direct" secondary.
	DeclaredPrimary bool

	// Qualifier is the value of a @Qualifier decorator, if any: metadata
	// used to disambiguate otherwise-identical dependency requests.
	Qualifier string

	// Profiles lists the @Profile values attached to this binding's class,
	// if any. An empty list means the binding is active under every
	// profile.
	Profiles []string

	// Inheritance-kind fields.
	BaseClass        string
	BaseClassGeneric string
	InheritanceChain []string

	// State-kind fields.
	StateType        string
	ServiceInterface string
}

// CompositeID returns the tuple identity that is unique within a
// BindingsTable: (sanitizedKey, implementationClass, kind-suffix).
// The kind-suffix distinguishes a primary binding from the secondary
// "direct" Class-kind binding that may share the same sanitized key and
// implementation class.
func (b *Binding) CompositeID() string {
	suffix := b.Kind.String()
	if b.Kind == KindClass && !b.Primary {
		suffix = "class-direct"
	}
	return b.SanitizedKey + "|" + b.ImplementationClass + "|" + suffix
}

// LocationKey returns the collision-safe form of a sanitized key: the
// sanitized key suffixed with the file's path segments (path separators
// replaced by underscores) and the declaration's line number. It is always
// computed and always indexed, even when no other binding shares the plain
// sanitized key.
func LocationKey(sanitizedKey, filePath string, line int) string {
	segs := strings.FieldsFunc(filePath, func(r rune) bool {
		return r == '/' || r == '\\' || r == '.'
	})
	return fmt.Sprintf("%s__%s_line_%d", sanitizedKey, strings.Join(segs, "_"), line)
}

// LocationKey is a convenience method returning LocationKey for this
// binding's own sanitized key, file, and line.
func (b *Binding) LocationKey() string {
	return LocationKey(b.SanitizedKey, b.FilePath, b.LineNumber)
}
