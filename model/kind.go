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

	"github.com/goccy/go-json"
)

// Kind identifies which of the four registration strategies produced a
// Binding.
type Kind uint8

const (
	// KindInterface is a binding registered because the class claims to
	// implement a named interface.
	KindInterface Kind = iota
	// KindInheritance is a binding registered because the class extends an
	// in-scope base class.
	KindInheritance
	// KindState is a binding registered because the class matches the
	// state-container pattern (extends Base<S>).
	KindState
	// KindClass is a binding registered under the implementation class's own
	// name, either because no other evidence fired (the primary binding) or
	// as the secondary "direct" binding alongside an Interface, Inheritance,
	// or State binding.
	KindClass
)

// String returns the lower-case name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindInheritance:
		return "inheritance"
	case KindState:
		return "state"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Scope identifies a service's lifecycle management strategy.
type Scope uint8

const (
	// ScopeSingleton caches one instance for the container's lifetime.
	ScopeSingleton Scope = iota
	// ScopeTransient creates a new instance on every resolution.
	ScopeTransient
	// ScopeScoped caches one instance per container-defined scope.
	ScopeScoped
)

// String returns the lower-case name of the Scope.
func (s Scope) String() string {
	switch s {
	case ScopeSingleton:
		return "singleton"
	case ScopeTransient:
		return "transient"
	case ScopeScoped:
		return "scoped"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the Scope as its lower-case name, the form the
// on-disk artifact uses.
func (s Scope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON restores a Scope from its lower-case name. A missing or
// empty value decodes to ScopeSingleton.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "singleton", "":
		*s = ScopeSingleton
	case "transient":
		*s = ScopeTransient
	case "scoped":
		*s = ScopeScoped
	default:
		return fmt.Errorf("model: unknown scope %q", name)
	}
	return nil
}

// Severity ranks a validation issue.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lower-case name of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
