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

package key

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// emptyPlaceholder is the deterministic identifier produced for an empty or
// entirely-stripped input. It contains no underscores, so feeding
// it back through Sanitize returns it unchanged.
const emptyPlaceholder = "Unnamed"

var repeatedUnderscore = regexp.MustCompile(`_+`)

// Sanitize canonicalizes a type spelling into a stable Go identifier,
// applying generic erasure followed by identifier sanitization.
func Sanitize(spelling string) string {
	return finish(eraseGenerics(spelling))
}

// eraseGenerics replaces every top-level generic argument list with <any>.
// Nested generics inside the argument positions are erased along with it,
// since the entire bracketed span, regardless of depth, collapses to the
// single word "any".
func eraseGenerics(s string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '<' && depth == 0 {
			b.WriteString("<any>")
			depth = 1
			j := i + 1
			for j < len(s) && depth > 0 {
				switch s[j] {
				case '<':
					depth++
				case '>':
					depth--
				}
				j++
			}
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// finish applies identifier sanitization to an already
// generic-erased spelling.
func finish(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := repeatedUnderscore.ReplaceAllString(b.String(), "_")
	out = strings.Trim(out, "_")
	if out == "" {
		return emptyPlaceholder
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// primitiveShorthand maps primitive type spellings to the abbreviation used
// by SanitizeInheritance.
var primitiveShorthand = map[string]string{
	"string": "str",
	"number": "num",
}

// SanitizeInheritance canonicalizes a base-class spelling for inheritance
// bindings. It preserves more descriptive structure than the plain
// Sanitize, abbreviating well-known primitive type hints so that, e.g.,
// Repository<string> produces Repository_str instead of Repository_any.
// Inheritance bindings are looked up both by the plain canonical form and
// by this more descriptive one.
func SanitizeInheritance(spelling string) string {
	s := eraseGenericsPreservingPrimitives(spelling)
	return finish(s)
}

// eraseGenericsPreservingPrimitives behaves like eraseGenerics, except that
// a top-level generic argument list containing exactly one recognized
// primitive type name is replaced by that primitive's shorthand instead of
// "any".
func eraseGenericsPreservingPrimitives(s string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '<' && depth == 0 {
			depth = 1
			j := i + 1
			for j < len(s) && depth > 0 {
				switch s[j] {
				case '<':
					depth++
				case '>':
					depth--
				}
				j++
			}
			inner := strings.TrimSpace(s[i+1 : j-1])
			if short, ok := primitiveShorthand[inner]; ok {
				b.WriteByte('<')
				b.WriteString(short)
				b.WriteByte('>')
			} else {
				b.WriteString("<any>")
			}
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// stateSuffixes are stripped by SanitizeState before a single "State" suffix
// is re-appended.
var stateSuffixes = []string{"State", "Interface", "Type"}

// SanitizeState canonicalizes a state-shape spelling for state bindings. It
// strips any of the suffixes State, Interface, or Type, then re-appends
// "State", so UserState, UserInterface, UserType, and plain User all
// canonicalize to the same identifier, UserState.
func SanitizeState(spelling string) string {
	base := eraseGenerics(spelling)
	base = finish(base)
	trimmed := base
	for _, suf := range stateSuffixes {
		if strings.HasSuffix(trimmed, suf) && len(trimmed) > len(suf) {
			trimmed = strings.TrimSuffix(trimmed, suf)
			break
		}
	}
	trimmed = strings.TrimRight(trimmed, "_")
	if trimmed == "" {
		trimmed = base
	}
	return trimmed + "State"
}

// SanitizeArray canonicalizes an array type spelling T[] to T_Array, T being
// canonicalized with Sanitize first.
func SanitizeArray(elementSpelling string) string {
	return Sanitize(elementSpelling) + "_Array"
}

// SanitizeUnion canonicalizes a union type spelling A|B|... to
// A_or_B_or_..., each member canonicalized with Sanitize first.
func SanitizeUnion(memberSpellings ...string) string {
	parts := make([]string, len(memberSpellings))
	for i, m := range memberSpellings {
		parts[i] = Sanitize(m)
	}
	return strings.Join(parts, "_or_")
}

// SanitizeObject canonicalizes an object-literal shape to a stable
// ObjectType_<hash> identifier. The hash is computed over the shape's raw
// text (callers are expected to have normalized field order beforehand if
// order-independence is desired) with xxhash, the same non-cryptographic
// hashing primitive the config generator uses for content-hash-keyed
// artifacts, so the repository has one hashing idiom throughout.
func SanitizeObject(shapeText string) string {
	h := xxhash.Sum64String(shapeText)
	return fmt.Sprintf("ObjectType_%x", h)
}

// CompositeKey joins already-sanitized parts with an underscore, for
// callers building a key out of more than one canonicalized component.
func CompositeKey(parts ...string) string {
	return strings.Join(parts, "_")
}
