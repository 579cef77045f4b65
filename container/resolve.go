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
	"fmt"
	"reflect"
)

// Resolve resolves token from c and asserts the result to T. An error is
// returned if the token is unregistered, its factory fails, or the
// resolved value does not assert to T. The last of these signals a
// mismatch between what LoadConfiguration wired up and what the caller
// expects, so it is reported rather than silently zeroed.
func Resolve[T any](c *Container, token string) (T, error) {
	var zero T
	v, err := c.Resolve(token)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: resolved %T for token %q, want %T", v, token, zero)
	}
	return t, nil
}

// Optional resolves token and panics if resolution fails, but tolerates a
// nil result.
func Optional[T any](c *Container, token string) T {
	v, err := Resolve[T](c, token)
	if err != nil {
		panic(err)
	}
	return v
}

// Required resolves token and panics if resolution fails or yields a nil
// value.
func Required[T any](c *Container, token string) T {
	v := Optional[T](c, token)
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case
		reflect.Pointer,
		reflect.Interface,
		reflect.Slice,
		reflect.Map,
		reflect.Chan,
		reflect.Func:
		if val.IsNil() {
			panic(fmt.Sprintf("container: required dependency for token %q is nil", token))
		}
	}
	return v
}
