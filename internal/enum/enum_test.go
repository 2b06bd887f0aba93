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

package enum_test

import (
	"go/ast"
	"go/types"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "fillmore-labs.com/optionset/internal/enum"
	"fillmore-labs.com/optionset/internal/spec"
	"fillmore-labs.com/optionset/internal/testsource"
)

type checked struct {
	files []*ast.File
	info  *types.Info
}

func check(tb testing.TB, src string) checked {
	tb.Helper()

	fset, f := testsource.Parse(tb, src)
	_, info := testsource.Check(tb, fset, f)

	return checked{files: []*ast.File{f}, info: info}
}

func (c checked) enum(tb testing.TB, name string) *Enum {
	tb.Helper()

	d, ok := Lookup(c.files, c.info, name)
	if !ok {
		tb.Fatalf("Can't find type %s", name)
	}

	e, p := Of(d.Type, c.files, c.info)
	if p != nil {
		tb.Fatalf("Unexpected problem: %v", p)
	}

	return e
}

func TestOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		trimPrefix  string
		lineComment bool
		want        []spec.Option
	}{
		{
			name: "iota",
			src: `type format uint8
const (
	png format = iota
	jpeg
	svg
)`,
			want: []spec.Option{{Name: "png"}, {Name: "jpeg"}, {Name: "svg"}},
		},
		{
			name: "unordered",
			src: `type format int
const gif format = 2
const (
	jpeg format = 1
	png  format = 0
	_    format = 7
	other      = 3
)`,
			want: []spec.Option{{Name: "png"}, {Name: "jpeg"}, {Name: "gif"}},
		},
		{
			name: "trim prefix",
			src: `type format int
const (
	formatPNG format = iota
	formatJPEG
)`,
			trimPrefix: "format",
			want:       []spec.Option{{Name: "PNG"}, {Name: "JPEG"}},
		},
		{
			name: "line comment",
			src: `type format int
const (
	formatPNG format = iota // image/png
	formatJPEG
)`,
			trimPrefix:  "format",
			lineComment: true,
			want:        []spec.Option{{Name: "image/png", Ident: "PNG"}, {Name: "JPEG"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			e := check(t, tt.src).enum(t, "format")

			// when
			if problems := e.Check(spec.MaxOptions); len(problems) > 0 {
				t.Fatalf("Unexpected problems: %v", problems)
			}

			got, problems := e.Options(tt.trimPrefix, tt.lineComment)

			// then
			if len(problems) > 0 {
				t.Errorf("Unexpected problems: %v", problems)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Options() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		max  int
		want []Kind
	}{
		{
			name: "empty",
			src:  "type format int",
			max:  spec.MaxOptions,
			want: []Kind{KindEmpty},
		},
		{
			name: "negative",
			src:  "type format int\nconst (a format = -1; b format = 0)",
			max:  spec.MaxOptions,
			want: []Kind{KindNegative},
		},
		{
			name: "duplicate",
			src:  "type format int\nconst (a format = iota; b; c = b)",
			max:  spec.MaxOptions,
			want: []Kind{KindDuplicate},
		},
		{
			name: "gap",
			src:  "type format int\nconst (a format = 1; b format = 2)",
			max:  spec.MaxOptions,
			want: []Kind{KindGap},
		},
		{
			name: "too many",
			src:  "type format int\nconst (a format = iota; b; c)",
			max:  2,
			want: []Kind{KindTooMany},
		},
		{
			name: "huge",
			src:  "type format uint64\nconst (a format = 0; b format = 1 << 63)",
			max:  spec.MaxOptions,
			want: []Kind{KindGap, KindTooMany},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			e := check(t, tt.src).enum(t, "format")

			// when
			problems := e.Check(tt.max)

			// then
			got := make([]Kind, len(problems))
			for i, p := range problems {
				got[i] = p.Kind

				if !p.Pos.IsValid() {
					t.Errorf("Problem %q without position", p)
				}
			}

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Check() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotInteger(t *testing.T) {
	t.Parallel()

	c := check(t, "type format string\nconst png format = \"png\"")

	d, ok := Lookup(c.files, c.info, "format")
	if !ok {
		t.Fatal("Can't find type format")
	}

	if _, p := Of(d.Type, c.files, c.info); p == nil || p.Kind != KindNotInteger {
		t.Errorf("Got problem %v, want %s", p, KindNotInteger)
	}
}

func TestEmptyName(t *testing.T) {
	t.Parallel()

	e := check(t, "type format int\nconst (img format = iota; imgPNG)").enum(t, "format")

	_, problems := e.Options("img", false)
	if len(problems) != 1 || problems[0].Kind != KindName {
		t.Errorf("Got problems %v, want one %s", problems, KindName)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got, want := KindTooMany.String(), "too-many"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Kind(42).String(), "Kind(42)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
