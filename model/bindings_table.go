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

import "sort"

// BindingsTable is the collection of all Bindings produced by one scan.
// It is owned exclusively by the resolver for the duration of that scan;
// every other package reads it read-only.
//
// A given sanitized key may map to more than one Binding; ambiguity is
// reported by the validator, not forbidden here.
type BindingsTable struct {
	byKey      map[string][]*Binding
	byLocation map[string]*Binding
	byComposite map[string]*Binding
	byClass    map[string][]*Binding
	all        []*Binding
}

// NewBindingsTable creates an empty BindingsTable.
func NewBindingsTable() *BindingsTable {
	return &BindingsTable{
		byKey:       make(map[string][]*Binding),
		byLocation:  make(map[string]*Binding),
		byComposite: make(map[string]*Binding),
		byClass:     make(map[string][]*Binding),
	}
}

// Add registers a Binding. It is a no-op if a Binding with the same
// CompositeID has already been added, preserving the invariant that every
// composite id is unique.
func (t *BindingsTable) Add(b *Binding) {
	id := b.CompositeID()
	if _, exists := t.byComposite[id]; exists {
		return
	}
	t.byComposite[id] = b
	t.byKey[b.SanitizedKey] = append(t.byKey[b.SanitizedKey], b)
	t.byLocation[b.LocationKey()] = b
	t.byClass[b.ImplementationClass] = append(t.byClass[b.ImplementationClass], b)
	t.all = append(t.all, b)
}

// ByKey returns every Binding registered under the given sanitized key, in
// a deterministic (filePath, line, implementationClass) order, so ambiguity
// tie-breaks never depend on insertion order.
func (t *BindingsTable) ByKey(key string) []*Binding {
	bs := append([]*Binding(nil), t.byKey[key]...)
	sortBindings(bs)
	return bs
}

// ByLocationKey resolves a location-qualified key exactly, bypassing the
// resolution ladder entirely.
func (t *BindingsTable) ByLocationKey(key string) (*Binding, bool) {
	b, ok := t.byLocation[key]
	return b, ok
}

// ByClass returns every Binding whose ImplementationClass matches, in
// deterministic order.
func (t *BindingsTable) ByClass(class string) []*Binding {
	bs := append([]*Binding(nil), t.byClass[class]...)
	sortBindings(bs)
	return bs
}

// All returns every Binding in the table, in deterministic order.
func (t *BindingsTable) All() []*Binding {
	bs := append([]*Binding(nil), t.all...)
	sortBindings(bs)
	return bs
}

// Classes returns the distinct set of implementation classes that have at
// least one Binding, in lexicographic order.
func (t *BindingsTable) Classes() []string {
	names := make([]string, 0, len(t.byClass))
	for name := range t.byClass {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortBindings(bs []*Binding) {
	sort.Slice(bs, func(i, j int) bool {
		a, b := bs[i], bs[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.LineNumber != b.LineNumber {
			return a.LineNumber < b.LineNumber
		}
		return a.ImplementationClass < b.ImplementationClass
	})
}
