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

package configgen

import (
	"encoding/hex"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/deep-rent/wireup/resolver"
)

// ContentHash computes the identity a generated directory is keyed by: a
// hash of the scan roots, every source file's content, and an options
// fingerprint. Files are sorted by path first, so the hash is independent
// of the order the scan happened to produce them in.
func ContentHash(scanDirs []string, files []resolver.File, fingerprint string) string {
	dirs := append([]string(nil), scanDirs...)
	sort.Strings(dirs)

	sorted := append([]resolver.File(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	h := xxhash.New()
	for _, d := range dirs {
		h.Write([]byte(d))
		h.Write([]byte{0})
	}
	for _, f := range sorted {
		h.Write([]byte(f.Path))
		h.Write([]byte{0})
		h.Write(f.Content)
		h.Write([]byte{0})
	}
	h.Write([]byte(fingerprint))

	return hex.EncodeToString(h.Sum(nil))
}
