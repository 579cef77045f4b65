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
	"bytes"
	"sort"

	"github.com/goccy/go-json"
)

// FactoryEntry is the value side of one ConfigArtifact entry: everything
// a runtime container needs to instantiate and cache a binding.
type FactoryEntry struct {
	FactoryDescriptor string   `json:"factory"`
	Scope             Scope    `json:"scope"`
	Dependencies      []string `json:"dependencies"`
	InterfaceName     string   `json:"interfaceName"`
	ImplementationClass string `json:"implementationClass"`
	IsAutoResolved    bool     `json:"isAutoResolved"`

	Qualifier           string   `json:"qualifier,omitempty"`
	IsBean              bool     `json:"isBean,omitempty"`
	BeanMethodName      string   `json:"beanMethodName,omitempty"`
	ConfigurationClass  string   `json:"configurationClass,omitempty"`
	Profiles            []string `json:"profiles,omitempty"`
}

// entry pairs a key with its FactoryEntry for ordered storage.
type entry struct {
	Key   string
	Value FactoryEntry
}

// ConfigArtifact is the persisted output of the generator: an ordered
// mapping from a sanitized key (or location-qualified key) to a
// FactoryEntry. The order is always the lexicographic order of keys, so
// that two artifacts built from the same bindings serialize to
// byte-identical JSON regardless of the order files were scanned in.
type ConfigArtifact struct {
	entries []entry
	index   map[string]int
}

// NewConfigArtifact creates an empty ConfigArtifact.
func NewConfigArtifact() *ConfigArtifact {
	return &ConfigArtifact{index: make(map[string]int)}
}

// Put inserts or replaces the entry for key.
func (a *ConfigArtifact) Put(key string, e FactoryEntry) {
	if i, ok := a.index[key]; ok {
		a.entries[i].Value = e
		return
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, entry{Key: key, Value: e})
	sort.Slice(a.entries, func(i, j int) bool { return a.entries[i].Key < a.entries[j].Key })
	for i, en := range a.entries {
		a.index[en.Key] = i
	}
}

// Get returns the entry for key, if present.
func (a *ConfigArtifact) Get(key string) (FactoryEntry, bool) {
	if i, ok := a.index[key]; ok {
		return a.entries[i].Value, true
	}
	return FactoryEntry{}, false
}

// Len returns the number of entries.
func (a *ConfigArtifact) Len() int { return len(a.entries) }

// Keys returns every key in lexicographic order.
func (a *ConfigArtifact) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON renders the artifact as a single JSON object whose field
// order matches the sorted key order, writing the object by hand so that
// map-key reordering performed by naive map marshaling cannot creep in.
func (a *ConfigArtifact) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores an artifact from its on-disk form, re-inserting the
// entries in sorted key order (the order MarshalJSON writes them in),
// whatever their order in data.
func (a *ConfigArtifact) UnmarshalJSON(data []byte) error {
	raw := make(map[string]FactoryEntry)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.entries = nil
	a.index = make(map[string]int)
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Put(k, raw[k])
	}
	return nil
}

// Meta is the sidecar .config-meta.json contents.
type Meta struct {
	Hash                      string `json:"hash"`
	Timestamp                 int64  `json:"timestamp"`
	EnableFunctionalDI        bool   `json:"enableFunctionalDI"`
	EnableInterfaceResolution bool   `json:"enableInterfaceResolution"`
	PackageName               string `json:"packageName"`
	Environment               string `json:"environment"`
}
