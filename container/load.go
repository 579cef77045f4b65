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

package container

import (
	"fmt"

	"github.com/deep-rent/wireup/model"
)

// LoadConfiguration wires every entry of artifact into c, pairing each
// entry's FactoryDescriptor with the matching Factory from factories, the
// map a generated or hand-written bootstrap file supplies, since
// ConfigArtifact only records which descriptor a binding needs, not
// executable Go code to build it.
//
// A plain sanitized key and its location-qualified sibling both describe
// the same binding, so when two artifact entries share a descriptor they
// are registered against the same *registration: resolving either token
// returns (and, for a singleton, caches) the identical instance.
func (c *Container) LoadConfiguration(artifact *model.ConfigArtifact, factories map[string]Factory) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	byDescriptor := make(map[string]*registration)
	for _, key := range artifact.Keys() {
		entry, _ := artifact.Get(key)

		factory, ok := factories[entry.FactoryDescriptor]
		if !ok {
			return fmt.Errorf("container: no factory supplied for descriptor %q (token %q)", entry.FactoryDescriptor, key)
		}

		reg, ok := byDescriptor[entry.FactoryDescriptor]
		if !ok {
			reg = &registration{token: key, factory: factory, scope: entry.Scope}
			byDescriptor[entry.FactoryDescriptor] = reg
		}
		c.registrations[key] = reg
	}
	return nil
}
