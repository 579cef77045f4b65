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

package classify

import (
	"github.com/deep-rent/wireup/key"
	"github.com/deep-rent/wireup/source"
)

// StateMapping is the state-based registration synthesized for a class
// matching the state-container pattern: `class C extends Base<S>`
// where Base is the designated state-container base and S is a distinct
// type. It is emitted in addition to whatever ordinary inheritance mapping
// the same base reference produced, never as a replacement for it.
type StateMapping struct {
	StateType        string
	ServiceInterface string
	SanitizedKey     string
}

// ExtractState detects the state-container pattern for cls, given the
// designated state-container base class name. It reports ok=false if cls
// does not extend that base, or extends it with no type argument (so there
// is no distinct state shape to key on).
func ExtractState(cls source.Class, stateContainerBase string) (StateMapping, bool) {
	if stateContainerBase == "" || cls.Extends == nil {
		return StateMapping{}, false
	}
	if cls.Extends.Name != stateContainerBase || cls.Extends.TypeArgs == "" {
		return StateMapping{}, false
	}
	return StateMapping{
		StateType:        cls.Extends.TypeArgs,
		ServiceInterface: cls.Extends.Spelling(),
		SanitizedKey:     key.SanitizeState(cls.Extends.TypeArgs),
	}, true
}
