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
	"strconv"
	"strings"
)

// Describe formats s as "<Name> (<binary>): <active options>".
//
// The binary segment is exactly as wide as the catalog: shorter representations are
// left-padded with zeros, longer ones keep only the rightmost digits. Active options are
// listed in bit order, separated by ", ".
func Describe[S Set[S]](s S) string {
	c := CatalogOf[S]()
	raw := s.Raw()

	var b strings.Builder
	b.WriteString(c.name)
	b.WriteString(" (")
	b.WriteString(binary(raw, c.Len()))
	b.WriteString("): ")

	first := true
	for i, option := range c.options {
		if raw&(1<<i) == 0 {
			continue
		}

		if !first {
			b.WriteString(", ")
		}

		b.WriteString(option)
		first = false
	}

	return b.String()
}

// Names returns the names of the options set in s, in bit order.
// Bits beyond the catalog are ignored.
func Names[S Set[S]](s S) []string {
	c := CatalogOf[S]()
	raw := s.Raw()

	var names []string
	for i, option := range c.options {
		if raw&(1<<i) != 0 {
			names = append(names, option)
		}
	}

	return names
}

// binary renders raw in base 2, fitted to exactly width digits.
func binary(raw uint64, width int) string {
	digits := strconv.FormatUint(raw, 2)

	switch n := len(digits); {
	case n < width:
		return strings.Repeat("0", width-n) + digits

	case n > width:
		return digits[n-width:]

	default:
		return digits
	}
}
