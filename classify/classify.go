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
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/source"
)

// Result is everything classify determined about one class.
type Result struct {
	Class   source.Class
	Service bool

	Interfaces       []InterfaceRef
	Inheritance      []InheritanceMapping
	InheritanceChain []string
	InheritanceErr   error

	State    StateMapping
	HasState bool

	Dependencies []model.ParamDependency
	Metadata     Metadata
}

// Classifier runs every extractor over a parsed class, gated by the
// service-marker check: a class with no recognized service-marker
// decorator produces a Result carrying only its Class, with Service=false,
// and nothing else runs for it.
type Classifier struct {
	cfg   config
	index *Index
}

// New creates a Classifier. idx is the cross-file class index the
// Inheritance Analyzer walks; build it once per scan with NewIndex over
// every parsed class.
func New(idx *Index, opts ...Option) *Classifier {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Classifier{cfg: cfg, index: idx}
}

// IsService reports whether cls carries a recognized service-marker
// decorator. A class with no such decorator is not a service and is
// ignored, even if it implements interfaces.
func (c *Classifier) IsService(cls source.Class) bool {
	for _, d := range cls.Decorators {
		if _, ok := c.cfg.serviceMarkers[d.Name]; ok {
			return true
		}
	}
	return false
}

// Classify runs every extractor over cls.
func (c *Classifier) Classify(cls source.Class) Result {
	r := Result{Class: cls, Service: c.IsService(cls)}
	if !r.Service {
		return r
	}

	r.Interfaces = ExtractInterfaces(cls)

	if c.cfg.enableInheritanceDI {
		mappings, chain, err := ExtractInheritance(c.index, cls, c.cfg.maxInheritanceDepth)
		r.Inheritance = mappings
		r.InheritanceChain = chain
		r.InheritanceErr = err
	}

	if c.cfg.enableStateDI {
		if state, ok := ExtractState(cls, c.cfg.stateContainerBase); ok {
			r.State, r.HasState = state, true
		}
	}

	r.Dependencies = extractDependencies(cls, c.cfg)
	r.Metadata = ExtractMetadata(cls)
	return r
}
