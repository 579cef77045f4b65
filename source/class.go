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

package source

// Decorator is one decorator attached to a class, a constructor, or a
// constructor parameter, e.g. @Injectable or @Inject("token").
type Decorator struct {
	Name string
	// Args is the raw, un-parsed text between the decorator's parentheses,
	// empty if the decorator was written without a call, e.g. @Injectable.
	Args string
	Line int
}

// HasName reports whether the decorator's bare name matches name, ignoring
// any call arguments.
func (d Decorator) HasName(name string) bool { return d.Name == name }

// Heritage is one entry of a class's extends or implements clause. Generic
// type arguments are preserved as raw text (e.g. "string" in
// Repository<string>) so key.Sanitize/SanitizeInheritance can canonicalize
// them later.
type Heritage struct {
	// Name is the base class or interface identifier, without its generic
	// argument list.
	Name string
	// TypeArgs is the raw text inside the <...> of the heritage reference,
	// empty if the reference was not generic.
	TypeArgs string
	Line     int
}

// Spelling reconstructs the full written reference, e.g. "Repository<User>"
// or plain "Repository" when TypeArgs is empty.
func (h Heritage) Spelling() string {
	if h.TypeArgs == "" {
		return h.Name
	}
	return h.Name + "<" + h.TypeArgs + ">"
}

// Param is one constructor parameter.
type Param struct {
	Name string
	// TypeSpelling is the raw text of the parameter's type annotation, empty
	// if the parameter was not annotated.
	TypeSpelling string
	Decorators   []Decorator
	// Optional is true if the parameter was written with a ? marker or with
	// a default value.
	Optional bool
	Line     int
}

// Decorator returns the first decorator on the parameter with the given
// name, if any.
func (p Param) Decorator(name string) (Decorator, bool) {
	for _, d := range p.Decorators {
		if d.HasName(name) {
			return d, true
		}
	}
	return Decorator{}, false
}

// Method is one method declaration on a class, other than its constructor.
// Only @Bean-style provider methods on @Configuration classes are of
// interest downstream; every method is still extracted so that filter
// belongs to the caller, not to parsing.
type Method struct {
	Name       string
	Decorators []Decorator
	Params     []Param
	ReturnType string
	Line       int
}

// Decorator returns the first decorator on the method with the given name,
// if any.
func (m Method) Decorator(name string) (Decorator, bool) {
	for _, d := range m.Decorators {
		if d.HasName(name) {
			return d, true
		}
	}
	return Decorator{}, false
}

// HasDecorator reports whether the method carries a decorator with the
// given name.
func (m Method) HasDecorator(name string) bool {
	_, ok := m.Decorator(name)
	return ok
}

// Class is one parsed class declaration.
type Class struct {
	Name     string
	FilePath string
	Line     int

	Decorators []Decorator

	// Extends is the class's single base class reference, if any (TypeScript
	// classes extend at most one class).
	Extends *Heritage
	// Implements is the class's implemented interface references, if any.
	Implements []Heritage

	// ConstructorParams is empty if the class declares no constructor.
	ConstructorParams []Param
	ConstructorLine   int

	// Methods is every non-constructor method declared directly on the
	// class, used by bean/provider-method discovery.
	Methods []Method
}

// Decorator returns the first class-level decorator with the given name, if
// any.
func (c Class) Decorator(name string) (Decorator, bool) {
	for _, d := range c.Decorators {
		if d.HasName(name) {
			return d, true
		}
	}
	return Decorator{}, false
}

// HasDecorator reports whether the class carries a decorator with the given
// name.
func (c Class) HasDecorator(name string) bool {
	_, ok := c.Decorator(name)
	return ok
}
