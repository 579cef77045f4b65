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

// DefaultServiceMarkers is the recognized family of service-marker
// decorators: a class carrying none of these is not a service and is
// ignored by every other extractor, even if it implements interfaces.
var DefaultServiceMarkers = []string{
	"Service", "Component", "Injectable", "Repository", "Controller", "Provider",
}

// DefaultInjectDecorator is the parameter-level decorator that marks a
// constructor parameter for injection.
const DefaultInjectDecorator = "Inject"

// DefaultInjectWrapper and DefaultInjectOptionalWrapper are the designated
// generic type-wrapper spellings that also mark a parameter for injection,
// the latter additionally communicating optionality.
const (
	DefaultInjectWrapper         = "Inject"
	DefaultInjectOptionalWrapper = "InjectOptional"
)

// DefaultMaxInheritanceDepth bounds the base-class walk so a malformed or
// self-referential chain cannot loop forever before validation catches it.
const DefaultMaxInheritanceDepth = 32

type config struct {
	serviceMarkers        map[string]struct{}
	stateContainerBase    string
	injectDecorator       string
	injectWrapper         string
	injectOptionalWrapper string
	maxInheritanceDepth   int
	enableInheritanceDI   bool
	enableStateDI         bool
}

// Option configures a Classifier.
type Option func(*config)

// WithServiceMarkers overrides the recognized service-marker decorator
// names. A nil or empty list is ignored.
func WithServiceMarkers(names ...string) Option {
	return func(c *config) {
		if len(names) == 0 {
			return
		}
		c.serviceMarkers = toSet(names)
	}
}

// WithStateContainerBase designates the base class name that triggers the
// state-container pattern. An empty name is ignored.
func WithStateContainerBase(name string) Option {
	return func(c *config) {
		if name != "" {
			c.stateContainerBase = name
		}
	}
}

// WithInjectDecorator overrides the parameter-level injection marker
// decorator name.
func WithInjectDecorator(name string) Option {
	return func(c *config) {
		if name != "" {
			c.injectDecorator = name
		}
	}
}

// WithInjectWrappers overrides the designated injection wrapper generic
// type names, the optional variant communicating optionality.
func WithInjectWrappers(wrapper, optionalWrapper string) Option {
	return func(c *config) {
		if wrapper != "" {
			c.injectWrapper = wrapper
		}
		if optionalWrapper != "" {
			c.injectOptionalWrapper = optionalWrapper
		}
	}
}

// WithMaxInheritanceDepth bounds the base-class chain walk. A
// non-positive value is ignored.
func WithMaxInheritanceDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxInheritanceDepth = n
		}
	}
}

// WithInheritanceDI toggles whether inheritance-based bindings are
// produced at all.
func WithInheritanceDI(enabled bool) Option {
	return func(c *config) { c.enableInheritanceDI = enabled }
}

// WithStateDI toggles whether state-container bindings are produced
// at all.
func WithStateDI(enabled bool) Option {
	return func(c *config) { c.enableStateDI = enabled }
}

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func defaultConfig() config {
	return config{
		serviceMarkers:        toSet(DefaultServiceMarkers),
		injectDecorator:       DefaultInjectDecorator,
		injectWrapper:         DefaultInjectWrapper,
		injectOptionalWrapper: DefaultInjectOptionalWrapper,
		maxInheritanceDepth:   DefaultMaxInheritanceDepth,
		enableInheritanceDI:   true,
		enableStateDI:         true,
	}
}
