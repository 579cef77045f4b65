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

// Package classify turns a parsed source.Class into the evidence the
// resolver needs: whether it is a service at all, which interfaces it
// claims, its base-class chain, whether it matches the state-container
// pattern, and which constructor parameters are marked for injection.
//
// Each of these is a thin, independent extractor. classify never decides
// what to do with the evidence it produces; that precedence logic belongs
// to resolver.
package classify
