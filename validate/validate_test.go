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

package validate_test

import (
	"testing"

	"github.com/deep-rent/wireup/classify"
	"github.com/deep-rent/wireup/resolver"
	"github.com/deep-rent/wireup/source"
	"github.com/deep-rent/wireup/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyAll(classes []source.Class, opts ...classify.Option) []classify.Result {
	idx := classify.NewIndex(classes)
	c := classify.New(idx, opts...)
	results := make([]classify.Result, 0, len(classes))
	for _, cls := range classes {
		results = append(results, c.Classify(cls))
	}
	return results
}

func injectParam(name, typeSpelling string, optional bool) source.Param {
	return source.Param{
		Name:         name,
		TypeSpelling: typeSpelling,
		Optional:     optional,
		Decorators:   []source.Decorator{{Name: "Inject"}},
	}
}

func TestValidate_MissingService(t *testing.T) {
	t.Parallel()

	classes := []source.Class{{
		Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
		Decorators:        []source.Decorator{{Name: "Service"}},
		ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", false)},
	}}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, validate.CategoryMissingService, result.Errors[0].Category)
	assert.Equal(t, "OrderService", result.Errors[0].ServiceClass)
	assert.Equal(t, "OrderRepository", result.Errors[0].Token)
	assert.Equal(t, []string{"OrderService"}, result.Errors[0].RelatedTokens)
}

func TestValidate_MissingOptionalServiceIsNotReported(t *testing.T) {
	t.Parallel()

	classes := []source.Class{{
		Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
		Decorators:        []source.Decorator{{Name: "Service"}},
		ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", true)},
	}}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidate_CircularDependency(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "ServiceA", FilePath: "src/ServiceA.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("b", "ServiceB", false)},
		},
		{
			Name: "ServiceB", FilePath: "src/ServiceB.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("a", "ServiceA", false)},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	require.NotEmpty(t, result.Errors, "a fully non-optional two-class cycle is reported as an error")
	found := 0
	for _, issue := range result.Errors {
		if issue.Category == validate.CategoryCircularDependency {
			found++
		}
	}
	assert.Equal(t, 2, found, "one issue is emitted per class on the cycle")
}

func TestValidate_OptionalCycleIsOnlyAWarning(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "ServiceA", FilePath: "src/ServiceA.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("b", "ServiceB", true)},
		},
		{
			Name: "ServiceB", FilePath: "src/ServiceB.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("a", "ServiceA", false)},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	for _, issue := range result.Errors {
		assert.NotEqual(t, validate.CategoryCircularDependency, issue.Category, "an optional edge on the cycle keeps it below error severity")
	}
	foundWarning := false
	for _, issue := range result.Warnings {
		if issue.Category == validate.CategoryCircularDependency {
			foundWarning = true
		}
	}
	assert.True(t, foundWarning)
}

func TestValidate_InheritanceCycleIsAnError(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "AlphaService", FilePath: "src/AlphaService.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Service"}},
			Extends:    &source.Heritage{Name: "BetaService"},
		},
		{
			Name: "BetaService", FilePath: "src/BetaService.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Service"}},
			Extends:    &source.Heritage{Name: "AlphaService"},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	require.False(t, result.IsValid)
	found := false
	for _, issue := range result.Errors {
		if issue.Category == validate.CategoryCircularDependency && len(issue.Cycle) > 0 {
			found = true
		}
	}
	assert.True(t, found, "a cyclic extends chain is reported as an error")
}

func TestValidate_OrphanedService(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", false)},
		},
		{
			Name: "OrderRepository", FilePath: "src/OrderRepository.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Repository"}},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	found := false
	for _, issue := range result.Info {
		if issue.Category == validate.CategoryOrphanedService && issue.ServiceClass == "OrderService" {
			found = true
		}
	}
	assert.True(t, found, "OrderService has a dependency but nothing depends on it")
}

func TestValidate_AmbiguousPrimary(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "LegacyLogger", FilePath: "src/LegacyLogger.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Service"}},
			Implements: []source.Heritage{{Name: "LoggerInterface"}},
		},
		{
			Name: "ModernLogger", FilePath: "src/ModernLogger.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Service"}},
			Implements: []source.Heritage{{Name: "LoggerInterface"}},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	found := false
	for _, issue := range result.Warnings {
		if issue.Category == validate.CategoryAmbiguousPrimary {
			found = true
		}
	}
	assert.True(t, found, "two implementations, neither marked primary, is a warning")
}

func TestValidate_ScopeMismatchWarning(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", false)},
		},
		{
			Name: "OrderRepository", FilePath: "src/OrderRepository.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Repository"}, {Name: "Scope", Args: `"transient"`}},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	found := false
	for _, issue := range result.Warnings {
		if issue.Category == validate.CategoryScopeMismatch {
			found = true
		}
	}
	assert.True(t, found, "default-scope (singleton) OrderService depends on a transient repository")
}

func TestValidate_ProfileMismatchError(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", false)},
		},
		{
			Name: "OrderRepository", FilePath: "src/OrderRepository.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Repository"}, {Name: "Profile", Args: `"staging"`}},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	require.False(t, result.IsValid)
	found := false
	for _, issue := range result.Errors {
		if issue.Category == validate.CategoryProfileMismatch {
			found = true
		}
	}
	assert.True(t, found, "always-active OrderService depends on a repository only active under \"staging\"")
}

func TestValidate_CleanGraphIsValid(t *testing.T) {
	t.Parallel()

	classes := []source.Class{
		{
			Name: "OrderService", FilePath: "src/OrderService.ts", Line: 1,
			Decorators:        []source.Decorator{{Name: "Service"}},
			Implements:        []source.Heritage{{Name: "OrderServiceInterface"}},
			ConstructorParams: []source.Param{injectParam("repo", "OrderRepository", false)},
		},
		{
			Name: "OrderRepository", FilePath: "src/OrderRepository.ts", Line: 1,
			Decorators: []source.Decorator{{Name: "Repository"}},
			Implements: []source.Heritage{{Name: "OrderRepository"}},
		},
	}

	r := resolver.New()
	r.Register(classifyAll(classes))

	result := validate.New().Validate(r)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, result.Stats.TotalServices)
}
