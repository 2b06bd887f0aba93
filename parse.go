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
	"errors"
	"strconv"
)

// ErrUnknownOption is returned when a name is not part of a catalog.
var ErrUnknownOption = errors.New("unknown option")

// UnknownOptionError records a name missing from the catalog of an option set type.
type UnknownOptionError struct {
	Type   string
	Option string
}

func (e *UnknownOptionError) Error() string {
	return e.Type + ": " + ErrUnknownOption.Error() + " " + strconv.Quote(e.Option)
}

func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Parse returns the value of S with the named options set.
func Parse[S Set[S]](options ...string) (S, error) {
	c := CatalogOf[S]()

	var raw uint64
	for _, option := range options {
		i, ok := c.index[option]
		if !ok {
			var zero S
			return zero, &UnknownOptionError{Type: c.name, Option: option}
		}

		raw |= 1 << i
	}

	return New[S](raw), nil
}

// MustParse is like [Parse] but panics on unknown names.
func MustParse[S Set[S]](options ...string) S {
	s, err := Parse[S](options...)
	if err != nil {
		panic(err)
	}

	return s
}
