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

package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/deep-rent/wireup/resolver"
)

// collectFiles walks every scan root and reads every file matching one of
// extensions, skipping any path that matches one of excludeGlobs. The
// result is sorted by path so that resolver.Scan's own determinism is fed
// a deterministic input regardless of the filesystem's directory order.
func collectFiles(scanRoots, excludeGlobs, extensions []string) ([]resolver.File, error) {
	var files []resolver.File

	for _, root := range scanRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if excluded(path, excludeGlobs) {
					return filepath.SkipDir
				}
				return nil
			}
			if !hasExtension(path, extensions) || excluded(path, excludeGlobs) {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("watch: read %s: %w", path, err)
			}
			files = append(files, resolver.File{Path: path, Content: content})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func excluded(path string, globs []string) bool {
	base := filepath.Base(path)
	for _, g := range globs {
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
		if ok, _ := filepath.Match(g, path); ok {
			return true
		}
		if strings.Contains(path, string(filepath.Separator)+g+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
