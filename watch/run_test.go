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
	"testing"
	"time"

	"github.com/deep-rent/wireup/app"
	"github.com/deep-rent/wireup/watch"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run_TriggersOnResultAfterFileChange(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ConsoleLogger.ts", loggerSource)

	w := watch.New(watch.WithScanRoots(dir), watch.WithDebounce(20*time.Millisecond))
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := make(chan *watch.Result, 4)
	done := make(chan error, 1)
	// Watcher.Run has the same (ctx context.Context) error shape as
	// app.Runnable once its onResult callback is bound, so it composes
	// with app.Run exactly like any other long-running component would.
	runnable := func(ctx context.Context) error {
		return w.Run(ctx, func(r *watch.Result) { results <- r })
	}
	go func() {
		done <- app.Run(runnable, app.WithContext(ctx))
	}()

	// Give the initial scan and fsnotify setup a moment to settle, then
	// trigger a rescan by adding a new service file.
	time.Sleep(50 * time.Millisecond)
	writeSource(t, dir, "OtherLogger.ts", `
@Injectable()
export class OtherLogger implements OtherLoggerInterface {
  constructor() {}
}
`)

	select {
	case res := <-results:
		require.NotNil(t, res.Artifact)
	case <-time.After(4 * time.Second):
		t.Fatal("timed out waiting for Run to trigger a rescan after file change")
	}

	cancel()
	require.NoError(t, <-done)
}
