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

// Package key canonicalizes a user-written type spelling into a single,
// stable Go identifier, so that a dependency declared in one file matches a
// binding declared in another.
//
// The central rule is generic erasure: every top-level generic argument
// list is collapsed to <any>, so Cache<string>, Cache<T>, and
// Cache<Repo<User>> all produce the identifier Cache_any. This is
// deliberate: it is what lets one registered implementation serve every
// instantiation of a generic interface.
//
// Sanitize is pure and deterministic: it performs no I/O and holds no
// state. Sanitize(Sanitize(t)) always equals Sanitize(t).
package key
