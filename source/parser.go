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

package source

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/deep-rent/wireup/internal/rotator"
)

// slot pairs a tree-sitter parser with the mutex that serializes reuse of
// that single parser across the goroutines that share this pool.
type slot struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// Pool is a fixed-size set of tree-sitter parsers, rotated round-robin so a
// concurrent scan (one goroutine per file, per resolver.Resolver) does not
// serialize on a single *sitter.Parser. A tree-sitter Parser must not be
// driven by two goroutines at once, but separate instances can run in
// parallel.
type Pool struct {
	all   []*slot
	slots rotator.Rotator[*slot]
}

// NewPool creates a Pool with size parsers. A size of zero or less defaults
// to runtime.GOMAXPROCS(0).
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	all := make([]*slot, size)
	for i := range all {
		p := sitter.NewParser()
		p.SetLanguage(typescript.GetLanguage())
		all[i] = &slot{parser: p}
	}
	return &Pool{all: all, slots: rotator.New(all)}
}

// Close releases every parser held by the pool.
func (p *Pool) Close() {
	for _, s := range p.all {
		s.mu.Lock()
		s.parser.Close()
		s.mu.Unlock()
	}
}

// ParseFile parses one TypeScript source file and returns every class
// declaration it contains, in source order.
func (p *Pool) ParseFile(ctx context.Context, path string, content []byte) ([]Class, error) {
	s := p.slots.Next()
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", path, err)
	}
	defer tree.Close()

	w := &walker{path: path, src: content}
	w.walk(tree.RootNode())
	return w.classes, nil
}
