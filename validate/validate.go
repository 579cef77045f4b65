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

package validate

import (
	"fmt"
	"strings"

	"github.com/deep-rent/wireup/model"
	"github.com/deep-rent/wireup/resolver"
)

// Validator runs the graph validator over a resolved scan.
type Validator struct {
	cfg config
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Validator{cfg: cfg}
}

// Validate runs every graph check over r's bindings and dependencies. It
// must be called after both of r's registration passes have completed.
func (v *Validator) Validate(r *resolver.Resolver) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	edges := v.project(r, result)
	v.checkAmbiguousPrimary(r, result)
	v.checkInheritanceCycles(r, result)

	graph := model.NewDependencyGraph(edges, r.Bindings.Classes()...)
	v.checkCycles(graph, result)
	v.checkOrphans(graph, result)

	result.Stats = Stats{
		TotalServices:     len(r.Bindings.Classes()),
		TotalBindings:     len(r.Bindings.All()),
		TotalDependencies: len(r.Deps.All()),
		TotalEdges:        len(edges),
	}

	if result.IsValid {
		v.cfg.logger.Debug("validation passed",
			"services", result.Stats.TotalServices,
			"warnings", len(result.Warnings))
	} else {
		v.cfg.logger.Warn("validation found errors",
			"errors", len(result.Errors),
			"warnings", len(result.Warnings))
	}
	return result
}

// checkAmbiguousPrimary implements the ambiguous-primary rule: among the
// primary-tier Bindings sharing a sanitizedKey, zero declared-primary
// claims is a warning (an arbitrary pick is made at resolution time) and
// more than one is an error (the claims themselves conflict).
func (v *Validator) checkAmbiguousPrimary(r *resolver.Resolver, result *ValidationResult) {
	groups := make(map[string][]*model.Binding)
	for _, b := range r.Bindings.All() {
		if !b.Primary || b.Kind == model.KindClass {
			continue
		}
		groups[b.SanitizedKey] = append(groups[b.SanitizedKey], b)
	}
	for key, bindings := range groups {
		if len(bindings) < 2 {
			continue
		}
		claims := 0
		for _, b := range bindings {
			if b.DeclaredPrimary {
				claims++
			}
		}
		switch {
		case claims == 0:
			result.add(Issue{
				Category: CategoryAmbiguousPrimary,
				Severity: model.SeverityWarning,
				FilePath: bindings[0].FilePath,
				Message:  fmt.Sprintf("%d implementations of %q, none marked primary", len(bindings), key),
			})
		case claims > 1:
			result.add(Issue{
				Category: CategoryAmbiguousPrimary,
				Severity: model.SeverityError,
				FilePath: bindings[0].FilePath,
				Message:  fmt.Sprintf("%d implementations of %q claim primary", claims, key),
			})
		}
	}
}

// checkInheritanceCycles reports every base-class cycle the resolver saw
// during registration. A cyclic extends chain can never instantiate, so
// each is an error.
func (v *Validator) checkInheritanceCycles(r *resolver.Resolver, result *ValidationResult) {
	for _, issue := range r.InheritanceIssues {
		result.add(Issue{
			Category:     CategoryCircularDependency,
			Severity:     model.SeverityError,
			ServiceClass: issue.ServiceClass,
			FilePath:     issue.FilePath,
			Line:         issue.Line,
			Cycle:        issue.Chain,
			Message:      fmt.Sprintf("inheritance cycle: %s", strings.Join(issue.Chain, " -> ")),
			Suggestion:   "break the extends chain; a class cannot transitively extend itself",
		})
	}
}

// checkCycles implements the circular-dependency rule: one Issue per
// class on the cycle, severity escalating with cycle length and whether
// every edge along it is non-optional.
func (v *Validator) checkCycles(graph *model.DependencyGraph, result *ValidationResult) {
	for _, c := range findCycles(graph) {
		severity := model.SeverityWarning
		if c.allRequired && len(c.path) >= 2 {
			severity = model.SeverityError
		}
		display := append(append([]string{}, c.path...), c.path[0])
		for _, class := range c.path {
			result.add(Issue{
				Category:     CategoryCircularDependency,
				Severity:     severity,
				ServiceClass: class,
				Cycle:        display,
				Message:      fmt.Sprintf("circular dependency: %s", strings.Join(display, " -> ")),
				Suggestion:   "break the cycle with a lazy accessor or a factory indirection",
			})
		}
	}
}

// checkOrphans implements the orphaned-service rule: a service with
// dependencies but no dependents is informational, not an error, since it
// is unreachable from any other registered service but may still be the
// application's own entry point.
func (v *Validator) checkOrphans(graph *model.DependencyGraph, result *ValidationResult) {
	dependents := make(map[string]int)
	for _, e := range graph.Edges {
		dependents[e.ImplementingClass]++
	}
	for _, class := range graph.Nodes {
		if len(graph.Out(class)) == 0 {
			continue
		}
		if dependents[class] > 0 {
			continue
		}
		result.add(Issue{
			Category:     CategoryOrphanedService,
			Severity:     model.SeverityInfo,
			ServiceClass: class,
			Message:      fmt.Sprintf("%s has dependencies but nothing depends on it", class),
		})
	}
}
