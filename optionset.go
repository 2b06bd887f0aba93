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

import "fmt"

// MaxOptions is the maximum number of options in a catalog.
const MaxOptions = 64

// Set is the contract a concrete option set type fulfills.
//
// FromRaw must return a value of the same concrete type as the receiver with the given raw
// bits; it is called on the zero value.
type Set[S any] interface {
	Raw() uint64
	FromRaw(raw uint64) S
}

// New rebuilds a value of type S from raw bits.
func New[S Set[S]](raw uint64) S {
	var zero S

	return zero.FromRaw(raw)
}

// And returns the union of a and b.
func And[S Set[S]](a, b S) S {
	return New[S](a.Raw() | b.Raw())
}

// Not returns the complement of s. All 64 bits are inverted, including those beyond the catalog.
func Not[S Set[S]](s S) S {
	return New[S](^s.Raw())
}

// Has reports whether every bit set in query is also set in s.
// A query without bits is always contained.
func Has[S Set[S]](s, query S) bool {
	q := query.Raw()

	return s.Raw()&q == q
}

// HasAny reports whether at least one bit set in query is also set in s.
func HasAny[S Set[S]](s, query S) bool {
	return s.Raw()&query.Raw() != 0
}

// Toggle flips every bit of s that is set in options.
func Toggle[S Set[S]](s, options S) S {
	return New[S](s.Raw() ^ options.Raw())
}

// TurnOn sets every bit of s that is set in options.
func TurnOn[S Set[S]](s, options S) S {
	return And(s, options)
}

// TurnOff clears every bit of s that is set in options.
func TurnOff[S Set[S]](s, options S) S {
	return New[S](s.Raw() &^ options.Raw())
}

// IsEmpty reports whether no bit is set in s.
func IsEmpty[S Set[S]](s S) bool {
	return s.Raw() == 0
}

// Bit returns the value with only the bit at catalog position i set.
// It panics when i is outside of [0, [MaxOptions]).
func Bit[S Set[S]](i int) S {
	if i < 0 || i >= MaxOptions {
		panic(fmt.Sprintf("optionset.Bit: index %d out of range", i))
	}

	return New[S](1 << i)
}

// None returns the value without any options.
func None[S Set[S]]() S {
	return New[S](0)
}

// All returns the value with every option of the registered catalog of S.
func All[S Set[S]]() S {
	return New[S](CatalogOf[S]().Mask())
}

// Clamp clears the bits of s beyond its catalog.
//
// Operations never do this implicitly, so values produced by [Not] keep their high bits
// unless clamped.
func Clamp[S Set[S]](s S) S {
	return New[S](s.Raw() & CatalogOf[S]().Mask())
}
