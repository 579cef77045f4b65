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

import "github.com/deep-rent/wireup/model"

// Stats summarizes the scan a ValidationResult was computed over.
type Stats struct {
	TotalServices     int
	TotalBindings     int
	TotalDependencies int
	TotalEdges        int
}

// ValidationResult is the outcome of a full Validate run.
type ValidationResult struct {
	IsValid  bool
	Errors   []Issue
	Warnings []Issue
	Info     []Issue
	Stats    Stats
}

// add files an Issue under its own Severity bucket, keeping IsValid in sync:
// only an error-severity Issue flips a result invalid.
func (r *ValidationResult) add(issue Issue) {
	switch issue.Severity {
	case model.SeverityError:
		r.Errors = append(r.Errors, issue)
		r.IsValid = false
	case model.SeverityWarning:
		r.Warnings = append(r.Warnings, issue)
	default:
		r.Info = append(r.Info, issue)
	}
}
