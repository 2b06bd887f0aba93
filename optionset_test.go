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

import (
	"testing"

	. "fillmore-labs.com/optionset"
)

// samples covers empty, single, compound and out-of-catalog values.
var samples = []imageFormat{0, png, jpeg | svg, png | jpeg | svg | gif, 0b1_0000, ^imageFormat(0), ^png}

func TestAnd(t *testing.T) {
	t.Parallel()

	for _, a := range samples {
		for _, b := range samples {
			got := And(a, b)

			if got.Raw() != a.Raw()|b.Raw() {
				t.Errorf("And(%#b, %#b) = %#b, want %#b", a, b, got, a|b)
			}

			if !Has(got, a) || !Has(got, b) {
				t.Errorf("And(%#b, %#b) = %#b does not contain both operands", a, b, got)
			}

			if TurnOn(a, b) != got {
				t.Errorf("TurnOn(%#b, %#b) = %#b, want %#b", a, b, TurnOn(a, b), got)
			}
		}
	}
}

func TestNot(t *testing.T) {
	t.Parallel()

	for _, x := range samples {
		if got := Not(Not(x)); got.Raw() != x.Raw() {
			t.Errorf("Not(Not(%#b)) = %#b", x, got)
		}
	}

	if got, want := Not(png).Raw(), uint64(0xFFFF_FFFF_FFFF_FFFE); got != want {
		t.Errorf("Not(png) = %#x, want %#x", got, want)
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     imageFormat
		query imageFormat
		want  bool
	}{
		{"single", png | svg, png, true},
		{"missing", png | svg, jpeg, false},
		{"all_of", png | jpeg, png | jpeg, true},
		{"not_any_of", png, png | jpeg, false},
		{"none_query", 0, 0, true},
		{"none_query_full", png | gif, 0, true},
		{"empty_set", 0, gif, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Has(tt.s, tt.query); got != tt.want {
				t.Errorf("Has(%#b, %#b) = %v, want %v", tt.s, tt.query, got, tt.want)
			}
		})
	}
}

func TestHasAny(t *testing.T) {
	t.Parallel()

	if !HasAny(png, png|jpeg) {
		t.Error("HasAny(png, png|jpeg) = false, want true")
	}

	if HasAny(svg, png|jpeg) {
		t.Error("HasAny(svg, png|jpeg) = true, want false")
	}

	if HasAny(png, 0) {
		t.Error("HasAny(png, 0) = true, want false")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	if got, want := Toggle(png|svg, svg|gif), png|gif; got != want {
		t.Errorf("Toggle = %#b, want %#b", got, want)
	}

	for _, x := range samples {
		for _, m := range samples {
			if got := Toggle(Toggle(x, m), m); got.Raw() != x.Raw() {
				t.Errorf("Toggle(Toggle(%#b, %#b)) = %#b", x, m, got)
			}
		}
	}
}

func TestTurnOff(t *testing.T) {
	t.Parallel()

	if got, want := TurnOff(png|svg|gif, svg|jpeg), png|gif; got != want {
		t.Errorf("TurnOff = %#b, want %#b", got, want)
	}

	for _, x := range samples {
		for _, m := range samples {
			got := TurnOff(x, m)

			if m.Raw() != 0 && Has(got, m) {
				t.Errorf("TurnOff(%#b, %#b) = %#b still has %#b", x, m, got, m)
			}

			if got.Raw()&^m.Raw() != x.Raw()&^m.Raw() {
				t.Errorf("TurnOff(%#b, %#b) = %#b changed bits outside the mask", x, m, got)
			}
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, v := range []uint64{0, 1, 0b1010, 1 << 63, ^uint64(0)} {
		if got := New[imageFormat](v).Raw(); got != v {
			t.Errorf("New(%#x).Raw() = %#x", v, got)
		}
	}
}

func TestBit(t *testing.T) {
	t.Parallel()

	if got := Bit[imageFormat](2); got != svg {
		t.Errorf("Bit(2) = %#b, want %#b", got, svg)
	}

	if got := Bit[wide](63).Raw(); got != 1<<63 {
		t.Errorf("Bit(63) = %#x", got)
	}

	for _, i := range []int{-1, MaxOptions} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Bit(%d) did not panic", i)
				}
			}()

			_ = Bit[imageFormat](i)
		}()
	}
}

func TestNoneAll(t *testing.T) {
	t.Parallel()

	if got := None[imageFormat](); got != 0 || !IsEmpty(got) {
		t.Errorf("None() = %#b, want 0", got)
	}

	if got, want := All[imageFormat](), png|jpeg|svg|gif; got != want {
		t.Errorf("All() = %#b, want %#b", got, want)
	}

	if got := All[wide]().Raw(); got != ^uint64(0) {
		t.Errorf("All() on a full catalog = %#x", got)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	x := Not(png)

	if got, want := Clamp(x), jpeg|svg|gif; got != want {
		t.Errorf("Clamp(Not(png)) = %#b, want %#b", got, want)
	}

	if Equal(x, Clamp(x)) {
		t.Error("Clamp is applied implicitly")
	}
}
