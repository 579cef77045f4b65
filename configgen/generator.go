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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deep-rent/wireup/codec"
	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/uuid"
)

const (
	artifactFileName = "di-config"
	metaFileName     = ".config-meta.json"
)

// Generator writes ConfigArtifacts to the content-hash-keyed directory
// layout the runtime container loads from.
type Generator struct {
	cfg config
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg}
}

// Generate writes artifact under <outputDir>/<hash>/, reusing an existing
// directory verbatim if one with the same hash and valid metadata is
// already on disk. It returns the final directory path. Writing the
// artifact files is retried; an error is returned when those writes still
// fail after every retry, when encoding the artifact fails, when rewriting
// the bridge file fails (not retried), or when ctx is done.
func (g *Generator) Generate(ctx context.Context, hash string, artifact *model.ConfigArtifact) (string, error) {
	dir := filepath.Join(g.cfg.outputDir, hash)
	ext := g.cfg.ext
	c := codec.Infer("di-config." + ext)

	if meta, ok := g.readMeta(dir); ok && meta.Hash == hash {
		g.cfg.logger.Debug("reusing existing config artifact", "hash", hash, "dir", dir)
		if err := g.writeBridge(dir, ext); err != nil {
			return dir, err
		}
		return dir, nil
	}

	artifactBytes, err := c.Encode(artifact)
	if err != nil {
		return "", fmt.Errorf("configgen: encode artifact: %w", err)
	}
	meta := model.Meta{
		Hash:                      hash,
		Timestamp:                 g.cfg.clock().UnixMilli(),
		EnableFunctionalDI:        g.cfg.enableFunctionalDI,
		EnableInterfaceResolution: g.cfg.enableInterfaceResolution,
		PackageName:               g.cfg.packageName,
		Environment:               g.cfg.environment,
	}
	metaBytes, err := c.Encode(meta)
	if err != nil {
		return "", fmt.Errorf("configgen: encode meta: %w", err)
	}

	if err := g.writeDirAtomic(ctx, dir, map[string][]byte{
		artifactFileName + "." + ext: artifactBytes,
		metaFileName:                 metaBytes,
	}); err != nil {
		return "", err
	}

	if err := g.writeBridge(dir, ext); err != nil {
		return dir, err
	}

	if err := Prune(g.cfg.outputDir, g.cfg.retention); err != nil {
		g.cfg.logger.Warn("pruning old config artifacts failed", "error", err)
	}

	return dir, nil
}

// readMeta reads and decodes the metadata sidecar of an existing artifact
// directory, reporting ok=false if it is absent or malformed. A malformed
// sidecar is treated the same as a cache miss, never as a fatal error.
func (g *Generator) readMeta(dir string) (model.Meta, bool) {
	data, err := os.ReadFile(filepath.Join(dir, metaFileName))
	if err != nil {
		return model.Meta{}, false
	}
	var meta model.Meta
	c := codec.Infer(metaFileName)
	if err := c.Decode(data, &meta); err != nil {
		return model.Meta{}, false
	}
	return meta, true
}

// writeDirAtomic writes every file into a freshly-named temp directory
// under outputDir, then renames it into place, so a crash mid-write can
// never leave a half-populated hash directory behind. The whole sequence
// is retried with g.cfg.backoffStrategy on failure.
func (g *Generator) writeDirAtomic(ctx context.Context, finalDir string, files map[string][]byte) error {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.maxWriteAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.attemptWrite(finalDir, files); err != nil {
			lastErr = err
			g.cfg.logger.Warn("config artifact write failed, retrying", "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(g.cfg.backoffStrategy.Next()):
			}
			continue
		}
		g.cfg.backoffStrategy.Done()
		return nil
	}
	return fmt.Errorf("configgen: writing %s after %d attempts: %w", finalDir, g.cfg.maxWriteAttempts, lastErr)
}

func (g *Generator) attemptWrite(finalDir string, files map[string][]byte) error {
	if err := os.MkdirAll(g.cfg.outputDir, 0o755); err != nil {
		return err
	}
	tempDir := filepath.Join(g.cfg.outputDir, ".tmp-"+uuid.New().String())
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	for name, data := range files {
		if err := os.WriteFile(filepath.Join(tempDir, name), data, 0o644); err != nil {
			return err
		}
	}

	os.RemoveAll(finalDir)
	return os.Rename(tempDir, finalDir)
}

// writeBridge re-exports the current artifact under a stable path so
// consumers need not know the content hash.
func (g *Generator) writeBridge(dir, ext string) error {
	src := filepath.Join(dir, artifactFileName+"."+ext)
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("configgen: reading artifact for bridge: %w", err)
	}
	bridgePath := filepath.Join(g.cfg.outputDir, artifactFileName+"."+ext)
	tempPath := bridgePath + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("configgen: writing bridge: %w", err)
	}
	return os.Rename(tempPath, bridgePath)
}
