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

package classify

import (
	"strings"

	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/source"
)

// InterfaceRef is one interface a class claims to implement.
type InterfaceRef struct {
	Name           string
	FullType       string
	IsGeneric      bool
	TypeParameters []string
	SanitizedKey   string
}

// ExtractInterfaces returns the ordered list of interfaces cls claims to
// implement. No validation of the interfaces' existence is done here;
// absent interfaces are caught during resolution.
func ExtractInterfaces(cls source.Class) []InterfaceRef {
	refs := make([]InterfaceRef, 0, len(cls.Implements))
	for _, h := range cls.Implements {
		refs = append(refs, InterfaceRef{
			Name:           h.Name,
			FullType:       h.Spelling(),
			IsGeneric:      h.TypeArgs != "",
			TypeParameters: splitTypeArgs(h.TypeArgs),
			SanitizedKey:   key.Sanitize(h.Spelling()),
		})
	}
	return refs
}

// splitTypeArgs splits a raw, comma-separated type-argument list into its
// members, trimming surrounding whitespace. It does not attempt to parse
// nested generics with embedded commas beyond top-level depth-tracking;
// the argument text is only ever erased or recorded verbatim, never
// interpreted member by member.
func splitTypeArgs(raw string) []string {
	if raw == "" {
		return nil
	}
	var parts []string
	depth := 0
	start := 0
	for i, r := range raw {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(raw[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(raw[start:]))
	return parts
}
