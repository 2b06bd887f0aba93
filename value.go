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

import "strings"

// Value binds an option set variable to a command line flag.
//
// The flag value is a comma separated list of option names. A list of plain names replaces
// the current value; names prefixed with "+" or "-" turn single options on or off while
// keeping the rest. An empty string clears all options. The plain names "none" and "all"
// stand for no options and every catalog option, unless the catalog declares them.
type Value[S Set[S]] struct {
	p *S
}

// NewValue returns a [Value] storing into p.
func NewValue[S Set[S]](p *S) *Value[S] {
	return &Value[S]{p: p}
}

// Set implements [flag.Value].
func (v *Value[S]) Set(s string) error {
	c := CatalogOf[S]()

	var on, off, plain []string

	var all bool

	replace := s == ""
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)

		switch {
		case item == "":

		case strings.HasPrefix(item, "+"):
			on = append(on, item[1:])

		case strings.HasPrefix(item, "-"):
			off = append(off, item[1:])

		default:
			replace = true

			if _, ok := c.Index(item); ok {
				plain = append(plain, item)

				continue
			}

			switch item {
			case "none":

			case "all":
				all = true

			default:
				plain = append(plain, item)
			}
		}
	}

	base, err := Parse[S](plain...)
	if err != nil {
		return err
	}

	onSet, err := Parse[S](on...)
	if err != nil {
		return err
	}

	offSet, err := Parse[S](off...)
	if err != nil {
		return err
	}

	if all {
		base = New[S](c.Mask())
	}

	if !replace {
		base = *v.p
	}

	*v.p = TurnOff(TurnOn(base, onSet), offSet)

	return nil
}

// String implements [flag.Value].
func (v *Value[S]) String() string {
	if v == nil || v.p == nil {
		return ""
	}

	return strings.Join(Names(*v.p), ",")
}

// Get implements [flag.Getter].
func (v *Value[S]) Get() any {
	if v == nil || v.p == nil {
		var zero S
		return zero
	}

	return *v.p
}
