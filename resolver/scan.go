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

package resolver

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/source"
)

// File is one source file to be scanned.
type File struct {
	Path    string
	Content []byte
}

// ParseIssue records a per-file parse failure that did not abort the scan;
// one malformed file never aborts the build.
type ParseIssue struct {
	FilePath string
	Err      error
}

// ScanResult is everything a full scan produced: the classified results
// ready for Register, and any parse issues encountered along the way.
type ScanResult struct {
	Results []classify.Result
	Issues  []ParseIssue
}

// Scan parses every file concurrently through pool, classifies every class
// found, and returns the combined result. Files are sorted
// lexicographically by path before parsing begins, so that even though
// parsing itself runs concurrently, the inputs to classification are
// always visited in a deterministic order.
//
// A parse failure for one file, including one caused by ctx being
// cancelled, is recorded as a ParseIssue and does not abort the scan; the
// scan always runs to completion.
func Scan(ctx context.Context, pool *source.Pool, files []File, classifierOpts ...classify.Option) (*ScanResult, error) {
	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	parsed := make([][]source.Class, len(sorted))
	issues := make([]ParseIssue, 0)
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range sorted {
		i, f := i, f
		g.Go(func() error {
			classes, err := pool.ParseFile(gCtx, f.Path, f.Content)
			if err != nil {
				mu.Lock()
				issues = append(issues, ParseIssue{FilePath: f.Path, Err: err})
				mu.Unlock()
				return nil
			}
			parsed[i] = classes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolver: scan aborted: %w", err)
	}

	var all []source.Class
	for _, classes := range parsed {
		all = append(all, classes...)
	}

	idx := classify.NewIndex(all)
	classifier := classify.New(idx, classifierOpts...)

	results := make([]classify.Result, 0, len(all))
	for _, cls := range all {
		results = append(results, classifier.Classify(cls))
	}

	sort.Slice(issues, func(i, j int) bool { return issues[i].FilePath < issues[j].FilePath })

	return &ScanResult{Results: results, Issues: issues}, nil
}
