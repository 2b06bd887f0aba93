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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/optionset/internal/astutil"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:optionsetlint", true},
		{"// nolint:gosec,OptionSetLint // reason", true},
		{"//nolint:all", true},
		{"//nolint:gosec", false},
		{"// optionsetlint", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by hand. DO NOT EDIT.

package test

//optionset:all
//nolint:optionsetlint
type a int

type b int //nolint:optionsetlint

type c int
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	if cf := NewCurrentFile(fset, f); !cf.Valid() || !cf.Generated() {
		t.Errorf("Got %+v, want valid generated file", cf)
	}

	if cf := NewCurrentFile(fset, nil); cf.Valid() {
		t.Error("Expected invalid file")
	}

	want := []bool{true, true, false}
	for i, decl := range f.Decls {
		decl := decl.(*ast.GenDecl)
		ts := decl.Specs[0].(*ast.TypeSpec)

		if got := NoLint(decl.Doc, ts); got != want[i] {
			t.Errorf("NoLint(%s) = %t, want %t", ts.Name.Name, got, want[i])
		}
	}
}
