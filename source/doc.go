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

// Package source parses TypeScript-flavored source files into the plain
// declarations that classify and resolver operate on: classes, their
// decorators, their heritage clauses (extends/implements, with generic
// type-argument text preserved verbatim), and their constructor parameters.
//
// Parsing is done with a tree-sitter grammar rather than a hand-rolled
// scanner, since decorator syntax, generics, and heritage clauses are not
// regular. Package source never interprets what a decorator means; it
// only records that one was present, with its name and argument text.
// That interpretation belongs to classify.
package source
