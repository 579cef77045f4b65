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

package configgen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/configgen"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyAll(classes []source.Class) []classify.Result {
	idx := classify.NewIndex(classes)
	c := classify.New(idx)
	results := make([]classify.Result, 0, len(classes))
	for _, cls := range classes {
		results = append(results, c.Classify(cls))
	}
	return results
}

func sampleClasses() []source.Class {
	return []source.Class{
		{
			Name: "ConsoleLogger", FilePath: "src/ConsoleLogger.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Injectable"}},
			Implements: []source.Heritage{{Name: "LoggerInterface"}},
		},
		{
			Name: "AppConfiguration", FilePath: "src/AppConfiguration.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Configuration"}},
			Methods: []source.Method{{
				Name:       "createHttpClient",
				Decorators: []source.Decorator{{Name: "Bean"}},
				ReturnType: "HttpClient",
				Params: []source.Param{
					{Name: "baseUrl", TypeSpelling: "string"},
				},
			}},
		},
	}
}

func TestBuildArtifact_IncludesBindingsAndBeans(t *testing.T) {
	t.Parallel()

	classes := sampleClasses()
	r := resolver.New()
	r.Register(classifyAll(classes))

	artifact := configgen.BuildArtifact(r, classes)

	entry, ok := artifact.Get("LoggerInterface")
	require.True(t, ok)
	assert.Equal(t, "ConsoleLogger", entry.ImplementationClass)
	assert.True(t, entry.IsAutoResolved)

	beanEntry, ok := artifact.Get("HttpClient")
	require.True(t, ok)
	assert.True(t, beanEntry.IsBean)
	assert.Equal(t, "AppConfiguration", beanEntry.ConfigurationClass)
	assert.Equal(t, "createHttpClient", beanEntry.BeanMethodName)
}

func TestContentHash_StableUnderFileReordering(t *testing.T) {
	t.Parallel()

	files := []resolver.File{
		{Path: "src/a.ts", Content: []byte("a")},
		{Path: "src/b.ts", Content: []byte("b")},
	}
	reordered := []resolver.File{files[1], files[0]}

	h1 := configgen.ContentHash([]string{"src"}, files, "opts")
	h2 := configgen.ContentHash([]string{"src"}, reordered, "opts")
	assert.Equal(t, h1, h2)

	h3 := configgen.ContentHash([]string{"src"}, files, "different-opts")
	assert.NotEqual(t, h1, h3)
}

func TestGenerator_Generate_WritesArtifactAndReusesHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	classes := sampleClasses()
	r := resolver.New()
	r.Register(classifyAll(classes))
	artifact := configgen.BuildArtifact(r, classes)

	gen := configgen.New(configgen.WithOutputDir(dir), configgen.WithPackageName("sample"))

	outDir, err := gen.Generate(context.Background(), "abc123", artifact)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc123"), outDir)

	_, err = os.Stat(filepath.Join(outDir, "di-config.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, ".config-meta.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "di-config.json"))
	require.NoError(t, err, "the bridge file re-exports the canonical artifact at a stable path")

	firstMeta, err := os.ReadFile(filepath.Join(outDir, ".config-meta.json"))
	require.NoError(t, err)

	// Regenerating under the same hash reuses the directory verbatim.
	outDir2, err := gen.Generate(context.Background(), "abc123", artifact)
	require.NoError(t, err)
	assert.Equal(t, outDir, outDir2)
	secondMeta, err := os.ReadFile(filepath.Join(outDir, ".config-meta.json"))
	require.NoError(t, err)
	assert.Equal(t, firstMeta, secondMeta)
}

func TestPrune_KeepsOnlyRetentionCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"hash1", "hash2", "hash3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
	}

	require.NoError(t, configgen.Prune(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
