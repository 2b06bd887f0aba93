// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package optionset

import (
	"hash/maphash"
	"reflect"
)

type rawer interface{ Raw() uint64 }

// Equal reports whether a and b are option sets of the identical concrete type with identical raw bits.
// Values of different types are never equal, even when their raw bits match.
func Equal(a, b any) bool {
	x, ok := a.(rawer)
	if !ok {
		return false
	}

	y, ok := b.(rawer)
	if !ok {
		return false
	}

	return reflect.TypeOf(a) == reflect.TypeOf(b) && x.Raw() == y.Raw()
}

var seed = maphash.MakeSeed()

// hashKey pairs the type identity with the raw bits.
type hashKey struct {
	typ reflect.Type
	raw uint64
}

// Hash returns a hash of s consistent with [Equal]. It is stable for the lifetime of the process only.
func Hash[S Set[S]](s S) uint64 {
	return maphash.Comparable(seed, hashKey{typ: reflect.TypeFor[S](), raw: s.Raw()})
}
