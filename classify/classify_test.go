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

package classify_test

import (
	"testing"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_IsService(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil))

	service := source.Class{Name: "ConsoleLogger", Decorators: []source.Decorator{{Name: "Injectable"}}}
	assert.True(t, c.IsService(service))

	notService := source.Class{Name: "PlainHelper"}
	assert.False(t, c.IsService(notService))
}

func TestClassifier_Classify_NonServiceIsSkipped(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil))
	r := c.Classify(source.Class{
		Name:       "PlainHelper",
		Implements: []source.Heritage{{Name: "SomeInterface"}},
	})

	assert.False(t, r.Service)
	assert.Empty(t, r.Interfaces)
	assert.Empty(t, r.Dependencies)
}

func TestClassifier_Classify_InterfaceBinding(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil))
	r := c.Classify(source.Class{
		Name:       "ConsoleLogger",
		Decorators: []source.Decorator{{Name: "Injectable"}},
		Implements: []source.Heritage{{Name: "LoggerInterface"}},
	})

	require.True(t, r.Service)
	require.Len(t, r.Interfaces, 1)
	assert.Equal(t, "LoggerInterface", r.Interfaces[0].Name)
	assert.Equal(t, "LoggerInterface", r.Interfaces[0].SanitizedKey)
}

func TestClassifier_Classify_GenericInterface(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil))
	r := c.Classify(source.Class{
		Name:       "MemoryCache",
		Decorators: []source.Decorator{{Name: "Injectable"}},
		Implements: []source.Heritage{{Name: "CacheInterface", TypeArgs: "T"}},
	})

	require.Len(t, r.Interfaces, 1)
	assert.True(t, r.Interfaces[0].IsGeneric)
	assert.Equal(t, "CacheInterface_any", r.Interfaces[0].SanitizedKey)
}

func TestClassifier_Classify_InheritanceChain(t *testing.T) {
	t.Parallel()

	base := source.Class{Name: "BaseRepository"}
	idx := classify.NewIndex([]source.Class{base})
	c := classify.New(idx)

	r := c.Classify(source.Class{
		Name:       "UserRepositoryImpl",
		Decorators: []source.Decorator{{Name: "Repository"}},
		Extends:    &source.Heritage{Name: "BaseRepository", TypeArgs: "User"},
	})

	require.True(t, r.Service)
	require.Len(t, r.Inheritance, 1)
	assert.Equal(t, "BaseRepository", r.Inheritance[0].BaseClass)
	assert.Equal(t, []string{"UserRepositoryImpl", "BaseRepository"}, r.InheritanceChain)
	assert.NoError(t, r.InheritanceErr)
}

func TestClassifier_Classify_InheritanceCycleReported(t *testing.T) {
	t.Parallel()

	a := source.Class{Name: "A", Extends: &source.Heritage{Name: "B"}}
	b := source.Class{Name: "B", Extends: &source.Heritage{Name: "A"}}
	idx := classify.NewIndex([]source.Class{a, b})
	c := classify.New(idx)

	r := c.Classify(source.Class{
		Name:       "A",
		Decorators: []source.Decorator{{Name: "Service"}},
		Extends:    &source.Heritage{Name: "B"},
	})

	require.Error(t, r.InheritanceErr)
	var cyc *classify.ErrInheritanceCycle
	assert.ErrorAs(t, r.InheritanceErr, &cyc)
}

func TestClassifier_Classify_StatePattern(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil), classify.WithStateContainerBase("BaseStateManager"))
	r := c.Classify(source.Class{
		Name:       "TodoManager",
		Decorators: []source.Decorator{{Name: "Injectable"}},
		Extends:    &source.Heritage{Name: "BaseStateManager", TypeArgs: "TodoState"},
	})

	require.True(t, r.HasState)
	assert.Equal(t, "TodoState", r.State.StateType)
	assert.Equal(t, "BaseStateManager<TodoState>", r.State.ServiceInterface)
}

func TestClassifier_Classify_StatePatternDoesNotSuppressInheritance(t *testing.T) {
	t.Parallel()

	base := source.Class{Name: "BaseStateManager"}
	idx := classify.NewIndex([]source.Class{base})
	c := classify.New(idx, classify.WithStateContainerBase("BaseStateManager"))

	r := c.Classify(source.Class{
		Name:       "TodoManager",
		Decorators: []source.Decorator{{Name: "Injectable"}},
		Extends:    &source.Heritage{Name: "BaseStateManager", TypeArgs: "TodoState"},
	})

	assert.True(t, r.HasState)
	require.Len(t, r.Inheritance, 1, "state pattern must not suppress the ordinary inheritance mapping")
}

func TestClassifier_Classify_DependenciesByDecoratorAndWrapper(t *testing.T) {
	t.Parallel()

	c := classify.New(classify.NewIndex(nil))
	r := c.Classify(source.Class{
		Name:       "OrderService",
		Decorators: []source.Decorator{{Name: "Service"}},
		ConstructorParams: []source.Param{
			{Name: "logger", TypeSpelling: "Logger", Decorators: []source.Decorator{{Name: "Inject"}}},
			{Name: "cache", TypeSpelling: "Inject<CacheInterface>"},
			{Name: "metrics", TypeSpelling: "InjectOptional<MetricsInterface>"},
			{Name: "plain", TypeSpelling: "string"},
		},
	})

	require.Len(t, r.Dependencies, 3)
	assert.Equal(t, "logger", r.Dependencies[0].ParamName)
	assert.False(t, r.Dependencies[0].IsOptional)

	assert.Equal(t, "cache", r.Dependencies[1].ParamName)
	assert.Equal(t, "CacheInterface", r.Dependencies[1].DeclaredType)

	assert.Equal(t, "metrics", r.Dependencies[2].ParamName)
	assert.True(t, r.Dependencies[2].IsOptional)
}
