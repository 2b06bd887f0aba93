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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/optionset"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    imageFormat
		want string
	}{
		{"two", png | jpeg, "ImageFormat (0011): png, jpeg"},
		{"none", 0, "ImageFormat (0000): "},
		{"all", png | jpeg | svg | gif, "ImageFormat (1111): png, jpeg, svg, gif"},
		{"high", gif, "ImageFormat (1000): gif"},
		{"out_of_catalog", 0b10101, "ImageFormat (0101): png, svg"},
		{"complement", Not(jpeg), "ImageFormat (1101): png, svg, gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Describe(tt.s); got != tt.want {
				t.Errorf("Describe(%#b) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestDescribeTruncates(t *testing.T) {
	t.Parallel()

	// given
	s := pair(7)

	// when
	got := Describe(s)

	// then
	if want := "Pair (11): left, right"; got != want {
		t.Errorf("Describe(7) = %q, want %q", got, want)
	}
}

func TestDescribeWide(t *testing.T) {
	t.Parallel()

	got := Describe(Bit[wide](63))

	prefix := "Wide (1" + strings.Repeat("0", 63) + "): "
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("Describe = %q, want prefix %q", got, prefix)
	}

	if want := wideNames()[63]; got[len(prefix):] != want {
		t.Errorf("Describe names = %q, want %q", got[len(prefix):], want)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    imageFormat
		want []string
	}{
		{"none", 0, nil},
		{"ordered", gif | png | svg, []string{"png", "svg", "gif"}},
		{"ignores_high_bits", Not(imageFormat(0)), []string{"png", "jpeg", "svg", "gif"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Names(tt.s)); diff != "" {
				t.Errorf("Names(%#b) mismatch (-want +got):\n%s", tt.s, diff)
			}
		})
	}
}
