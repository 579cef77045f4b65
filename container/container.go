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

package container

import (
	"context"
	"fmt"
	"sync"

	"github.com/deep-rent/wireup/model"
	"golang.org/x/sync/singleflight"
)

// Factory creates an instance for a token, resolving its own dependencies
// through the Container it is given. It returns any rather than a generic
// type, since a token's type is only known to the caller of Resolve, never
// to the Container itself.
type Factory func(c *Container) (any, error)

// registration pairs a Factory with the lifecycle strategy and cached
// result a single token needs. It is shared by every Container derived
// from the one that registered it (the root Container and every scope
// spawned from it via CreateScope), so a singleton stays a singleton no
// matter which scope first resolved it.
type registration struct {
	token   string
	factory Factory
	scope   model.Scope

	mu       sync.Mutex
	instance any
	err      error
	resolved bool
}

// visitingKey is the context key used to carry the circular-dependency
// path across nested Resolve calls made from inside a factory.
type visitingKey struct{}

// Container is the runtime counterpart of a model.ConfigArtifact: a
// token-keyed registry that instantiates and caches services according to
// their declared scope. An RWMutex guards the registration map; reads are
// far more frequent than writes, since registration happens once at
// startup and resolution happens for the process's lifetime.
type Container struct {
	mu            sync.RWMutex
	registrations map[string]*registration
	group         *singleflight.Group

	// scopeCache holds Scoped instances for this Container specifically.
	// It is nil on the root Container; only a Container returned by
	// CreateScope has one, so resolving a scoped token outside any scope
	// fails rather than silently leaking into a global cache.
	scopeCache *sync.Map

	ctx context.Context
}

// New creates an empty, unscoped Container bound to context.Background().
// Use LoadConfiguration or Register to populate it before resolving
// anything.
func New() *Container {
	return &Container{
		registrations: make(map[string]*registration),
		group:         &singleflight.Group{},
		ctx:           context.Background(),
	}
}

// Context returns the context this Container resolves under.
func (c *Container) Context() context.Context {
	return c.ctx
}

// Register binds a token to a factory under a given scope. Register
// panics if the token is already bound: bindings are meant to be
// configured once at startup, never mutated at request time.
func (c *Container) Register(token string, factory Factory, scope model.Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.registrations[token]; ok {
		panic(fmt.Sprintf("container: token %q is already registered", token))
	}
	c.registrations[token] = &registration{token: token, factory: factory, scope: scope}
}

// Override replaces any existing registration for token. Primarily useful
// in tests, to swap a production factory for a mock without restructuring
// LoadConfiguration's output.
func (c *Container) Override(token string, factory Factory, scope model.Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations[token] = &registration{token: token, factory: factory, scope: scope}
}

// Has reports whether token is registered.
func (c *Container) Has(token string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.registrations[token]
	return ok
}

// Tokens returns every registered token, in no particular order.
func (c *Container) Tokens() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.registrations))
	for t := range c.registrations {
		out = append(out, t)
	}
	return out
}

// Resolve instantiates (or returns the cached instance of) the service
// bound to token. Errors are returned rather than panicking, so a host
// application can decide how to handle a missing or failing service.
func (c *Container) Resolve(token string) (any, error) {
	if visiting, ok := c.ctx.Value(visitingKey{}).(map[string]bool); ok {
		return c.resolve(token, visiting)
	}
	return c.resolve(token, make(map[string]bool))
}

func (c *Container) resolve(token string, visiting map[string]bool) (any, error) {
	if visiting[token] {
		return nil, fmt.Errorf("container: circular dependency detected resolving %q", token)
	}

	c.mu.RLock()
	reg, ok := c.registrations[token]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("container: no service registered for %q", token)
	}

	visiting[token] = true
	defer delete(visiting, token)

	switch reg.scope {
	case model.ScopeTransient:
		return c.invoke(reg, visiting)
	case model.ScopeScoped:
		return c.resolveScoped(reg, visiting)
	default:
		return c.resolveSingleton(reg, visiting)
	}
}

// resolveSingleton serializes the first resolution of reg across
// concurrent callers via singleflight, then caches the winner's result on
// reg permanently. The singleflight key is the registration's own token,
// so two artifact keys aliased to one registration still collapse to a
// single factory call.
func (c *Container) resolveSingleton(reg *registration, visiting map[string]bool) (any, error) {
	reg.mu.Lock()
	if reg.resolved {
		defer reg.mu.Unlock()
		return reg.instance, reg.err
	}
	reg.mu.Unlock()

	v, err, _ := c.group.Do(reg.token, func() (any, error) {
		reg.mu.Lock()
		if reg.resolved {
			defer reg.mu.Unlock()
			return reg.instance, reg.err
		}
		reg.mu.Unlock()

		instance, err := c.invoke(reg, visiting)

		reg.mu.Lock()
		reg.instance, reg.err, reg.resolved = instance, err, true
		reg.mu.Unlock()
		return instance, err
	})
	return v, err
}

// resolveScoped resolves reg once per scope, caching the instance in the
// scope cache carried by this Container.
func (c *Container) resolveScoped(reg *registration, visiting map[string]bool) (any, error) {
	if c.scopeCache == nil {
		return nil, fmt.Errorf("container: no active scope for scoped token %q", reg.token)
	}
	if instance, loaded := c.scopeCache.Load(reg.token); loaded {
		return instance, nil
	}

	instance, err := c.invoke(reg, visiting)
	if err != nil {
		return nil, err
	}
	actual, _ := c.scopeCache.LoadOrStore(reg.token, instance)
	return actual, nil
}

// invoke calls reg's factory through a proxy Container that carries the
// visiting map and this Container's scope cache forward. A panicking
// factory must not bring down the whole resolution chain, only fail the
// one token that triggered it.
func (c *Container) invoke(reg *registration, visiting map[string]bool) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container: panic resolving %q: %v", reg.token, r)
			instance = nil
		}
	}()

	proxy := &Container{
		registrations: c.registrations,
		group:         c.group,
		scopeCache:    c.scopeCache,
		ctx:           context.WithValue(c.ctx, visitingKey{}, visiting),
	}
	return reg.factory(proxy)
}

// CreateScope returns a child Container sharing every registration with c,
// but with its own cache for Scoped tokens. Each call to CreateScope
// starts a fresh scope; scoped instances created in one scope are never
// visible in another.
func (c *Container) CreateScope(ctx context.Context) *Container {
	if ctx == nil {
		ctx = c.ctx
	}
	return &Container{
		registrations: c.registrations,
		group:         c.group,
		scopeCache:    &sync.Map{},
		ctx:           ctx,
	}
}
