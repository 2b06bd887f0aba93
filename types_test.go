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

package optionset_test

import . "fillmore-labs.com/optionset"

type imageFormat uint64

const (
	png imageFormat = 1 << iota
	jpeg
	svg
	gif
)

func (f imageFormat) Raw() uint64 { return uint64(f) }
func (imageFormat) FromRaw(raw uint64) imageFormat { return imageFormat(raw) }

// pair shares raw values with imageFormat, but not its identity.
type pair uint64

const (
	left pair = 1 << iota
	right
)

func (p pair) Raw() uint64 { return uint64(p) }
func (pair) FromRaw(raw uint64) pair { return pair(raw) }

// unregistered never registers a catalog.
type unregistered uint64

func (u unregistered) Raw() uint64 { return uint64(u) }
func (unregistered) FromRaw(raw uint64) unregistered { return unregistered(raw) }

// wide uses every bit.
type wide uint64

func (w wide) Raw() uint64 { return uint64(w) }
func (wide) FromRaw(raw uint64) wide { return wide(raw) }

var (
	_ = Register[imageFormat]("ImageFormat", "png", "jpeg", "svg", "gif")
	_ = Register[pair]("Pair", "left", "right")
	_ = Register[wide]("Wide", wideNames()...)
)

func wideNames() []string {
	names := make([]string, MaxOptions)
	for i := range names {
		names[i] = "o" + string(rune('A'+i/26)) + string(rune('a'+i%26))
	}

	return names
}
