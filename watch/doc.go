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

// Package watch wraps a single scan (source.Pool -> resolver.Scan ->
// resolver.Register -> validate.Validate -> configgen.BuildArtifact) for
// repeated runs against a changing source tree: one call in isolation via
// Scan, or a long-running fsnotify-driven loop via Run.
//
// A Watcher guards re-entrant scans with an isTransforming flag (a scan
// already in flight causes a concurrent Scan call to return
// ErrScanInProgress immediately rather than queuing) and short-circuits a
// scan to its most recent result when the content hash of the source tree
// has not changed within a small window, so a burst of filesystem events
// that don't actually alter any file's bytes does not re-run the whole
// pipeline.
package watch
