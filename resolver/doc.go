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

// Package resolver drives classify across every parsed class, builds the
// bindings and dependency tables, and answers resolution queries through
// a fixed ladder of match tiers.
//
// A Resolver is built once per scan and discarded afterward: its
// BindingsTable and DependencyTable are owned exclusively by it for the
// scan's duration, then handed to validate and configgen read-only.
package resolver
