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

package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deep-rent/wireup/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loggerSource = `
@Injectable()
export class ConsoleLogger implements LoggerInterface {
  constructor() {}
}
`

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestWatcher_Scan_BuildsArtifactFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "ConsoleLogger.ts", loggerSource)

	w := watch.New(watch.WithScanRoots(dir))
	defer w.Close()

	res, err := w.Scan(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Cached)

	entry, ok := res.Artifact.Get("LoggerInterface")
	require.True(t, ok)
	assert.Equal(t, "ConsoleLogger", entry.ImplementationClass)
}

func TestWatcher_Scan_ReusesCacheWithinWindow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "ConsoleLogger.ts", loggerSource)

	w := watch.New(watch.WithScanRoots(dir), watch.WithCacheWindow(time.Minute))
	defer w.Close()

	first, err := w.Scan(context.Background())
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := w.Scan(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Hash, second.Hash)
}

func TestWatcher_Scan_DetectsChangedContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, "ConsoleLogger.ts", loggerSource)

	w := watch.New(watch.WithScanRoots(dir), watch.WithCacheWindow(time.Minute))
	defer w.Close()

	first, err := w.Scan(context.Background())
	require.NoError(t, err)

	writeSource(t, dir, "ConsoleLogger.ts", loggerSource+"\n// a comment changing the hash\n")

	second, err := w.Scan(context.Background())
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.NotEqual(t, first.Hash, second.Hash)
}

