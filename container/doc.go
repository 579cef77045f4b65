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

// Package container is the runtime side of the analyzer pipeline: a
// dependency injection container that loads a model.ConfigArtifact and
// exposes register/resolve/has/createScope. It is token-keyed rather than
// compile-time-generic-keyed, since the set of tokens is only known once
// an artifact has been analyzed and generated.
//
// Tokens are the dynamic sanitized-key strings an artifact was built
// from, discovered only at LoadConfiguration time. Lifecycle strategies
// (singleton, transient, scoped), the circular dependency guard, and
// panic-safe factory invocation all operate per token.
package container
