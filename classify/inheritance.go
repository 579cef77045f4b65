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
	"fmt"

	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/source"
)

// Index maps class name to its declaration, across every parsed file in a
// scan. It is what lets the Inheritance Analyzer walk a base-class chain
// that spans multiple source files.
type Index struct {
	byName map[string]source.Class
}

// NewIndex builds an Index over every parsed class. When more than one
// class shares a name, the first one encountered wins; the resolver's own
// ambiguity reporting operates on bindings, not on this lookup structure.
func NewIndex(classes []source.Class) *Index {
	idx := &Index{byName: make(map[string]source.Class, len(classes))}
	for _, c := range classes {
		if _, exists := idx.byName[c.Name]; !exists {
			idx.byName[c.Name] = c
		}
	}
	return idx
}

// Lookup returns the class declaration for name, if it was seen in this
// scan.
func (idx *Index) Lookup(name string) (source.Class, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// InheritanceMapping is one base class seen while walking up cls's
// extends chain.
type InheritanceMapping struct {
	BaseClass        string
	BaseClassGeneric string
	BaseTypeName     string
	IsGeneric        bool
	TypeParameters   []string
}

// ErrInheritanceCycle reports a cycle detected while walking a base-class
// chain.
type ErrInheritanceCycle struct {
	Chain []string
}

func (e *ErrInheritanceCycle) Error() string {
	return fmt.Sprintf("classify: inheritance cycle detected: %v", e.Chain)
}

// ExtractInheritance walks cls's base-class chain upward, terminating at
// either an unresolved base or a base outside the scanned source tree, and
// bounded by maxDepth. It returns one InheritanceMapping per base class
// seen, plus the full chain (subclass to root) for diagnostics.
func ExtractInheritance(idx *Index, cls source.Class, maxDepth int) ([]InheritanceMapping, []string, error) {
	var mappings []InheritanceMapping
	chain := []string{cls.Name}
	visited := map[string]struct{}{cls.Name: {}}

	current := cls
	for depth := 0; depth < maxDepth; depth++ {
		if current.Extends == nil {
			break
		}
		base := *current.Extends
		mappings = append(mappings, InheritanceMapping{
			BaseClass:        base.Name,
			BaseClassGeneric: base.Spelling(),
			BaseTypeName:     key.SanitizeInheritance(base.Spelling()),
			IsGeneric:        base.TypeArgs != "",
			TypeParameters:   splitTypeArgs(base.TypeArgs),
		})

		if _, cyc := visited[base.Name]; cyc {
			return mappings, chain, &ErrInheritanceCycle{Chain: append(chain, base.Name)}
		}

		next, ok := idx.Lookup(base.Name)
		if !ok {
			// Base class is outside the scanned source tree: walk ends here.
			break
		}
		chain = append(chain, base.Name)
		visited[base.Name] = struct{}{}
		current = next
	}

	return mappings, chain, nil
}
