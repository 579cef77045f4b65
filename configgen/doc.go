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

// Package configgen turns a resolved scan into an on-disk ConfigArtifact:
// a content-hash-keyed directory holding the canonical artifact file, a
// metadata sidecar, and a stable bridge re-export. Existing directories
// are never rewritten in place: a new hash always gets a new directory,
// and old ones are pruned to a configured retention count.
package configgen
