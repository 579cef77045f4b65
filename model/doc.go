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

// Package model defines the data types shared by every stage of the
// analyzer pipeline: a registered Binding, the BindingsTable that collects
// them, a DependencyRecord for each constructor injection site, the
// DependencyGraph projected from resolved dependencies, and the
// ConfigArtifact persisted by the generator.
//
// None of the types in this package perform any parsing, resolution, or
// I/O. They are owned exclusively by the resolver package for the duration
// of one scan; every other package either produces them (classify) or
// reads them read-only (validate, configgen).
package model
