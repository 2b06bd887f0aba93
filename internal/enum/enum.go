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

// Package enum collects the constants of an enumeration type and maps them to option bits.
package enum

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"iter"
	"slices"
	"strings"

	"fillmore-labs.com/optionset/internal/spec"
)

// Decl is a type declaration together with its type checker object.
type Decl struct {
	Decl *ast.GenDecl
	Spec *ast.TypeSpec
	Type *types.TypeName
}

// TypeDecls yields all package-level type declarations of files.
func TypeDecls(files []*ast.File, info *types.Info) iter.Seq[Decl] {
	return func(yield func(Decl) bool) {
		for _, f := range files {
			for _, decl := range f.Decls {
				decl, ok := decl.(*ast.GenDecl)
				if !ok || decl.Tok != token.TYPE {
					continue
				}

				for _, s := range decl.Specs {
					ts := s.(*ast.TypeSpec)

					tn, ok := info.Defs[ts.Name].(*types.TypeName)
					if !ok {
						continue
					}

					if !yield(Decl{Decl: decl, Spec: ts, Type: tn}) {
						return
					}
				}
			}
		}
	}
}

// Lookup finds the declaration of the named type.
func Lookup(files []*ast.File, info *types.Info, name string) (Decl, bool) {
	for d := range TypeDecls(files, info) {
		if d.Type.Name() == name {
			return d, true
		}
	}

	return Decl{}, false
}

// Constant is one value of an enumeration.
type Constant struct {
	Name    string
	Value   constant.Value
	Pos     token.Pos
	Comment string
}

// Enum is an integer type with its constants ordered by value.
type Enum struct {
	Type      *types.TypeName
	Constants []Constant
}

// Of collects the constants of type tn declared in files.
func Of(tn *types.TypeName, files []*ast.File, info *types.Info) (*Enum, *Problem) {
	if !IsInteger(tn.Type()) {
		return nil, &Problem{Kind: KindNotInteger, Pos: tn.Pos(), Msg: fmt.Sprintf("type %s is not an integer type", tn.Name())}
	}

	e := &Enum{Type: tn}

	for _, f := range files {
		for _, decl := range f.Decls {
			decl, ok := decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.CONST {
				continue
			}

			for _, s := range decl.Specs {
				vs := s.(*ast.ValueSpec)

				for _, id := range vs.Names {
					if id.Name == "_" {
						continue
					}

					c, ok := info.Defs[id].(*types.Const)
					if !ok || !types.Identical(c.Type(), tn.Type()) {
						continue
					}

					var comment string
					if vs.Comment != nil {
						comment = strings.TrimSpace(vs.Comment.Text())
					}

					e.Constants = append(e.Constants, Constant{Name: id.Name, Value: c.Val(), Pos: id.Pos(), Comment: comment})
				}
			}
		}
	}

	slices.SortStableFunc(e.Constants, func(a, b Constant) int {
		switch {
		case constant.Compare(a.Value, token.LSS, b.Value):
			return -1

		case constant.Compare(a.Value, token.GTR, b.Value):
			return 1

		default:
			return cmp.Compare(a.Pos, b.Pos)
		}
	})

	return e, nil
}

// IsInteger reports whether t has an integer underlying type.
func IsInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsInteger != 0
}

// Check reports constants that do not map one-to-one to the bits 0..n-1, at most max bits.
func (e *Enum) Check(maxOptions int) []*Problem {
	var problems []*Problem

	report := func(kind Kind, pos token.Pos, format string, args ...any) {
		problems = append(problems, &Problem{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)})
	}

	if len(e.Constants) == 0 {
		report(KindEmpty, e.Type.Pos(), "type %s has no constants", e.Type.Name())

		return problems
	}

	next := uint64(0)

	for i, c := range e.Constants {
		if constant.Sign(c.Value) < 0 {
			report(KindNegative, c.Pos, "constant %s has negative value %s", c.Name, c.Value)

			continue
		}

		v, exact := constant.Uint64Val(c.Value)
		if !exact {
			report(KindGap, c.Pos, "constant %s has value %s, want %d", c.Name, c.Value, next)

			continue
		}

		if i > 0 && constant.Compare(c.Value, token.EQL, e.Constants[i-1].Value) {
			report(KindDuplicate, c.Pos, "constant %s has the same value %d as %s", c.Name, v, e.Constants[i-1].Name)

			continue
		}

		if v != next {
			report(KindGap, c.Pos, "constant %s has value %d, want %d", c.Name, v, next)
		}

		next = v + 1
	}

	if next > uint64(maxOptions) {
		report(KindTooMany, e.Type.Pos(), "type %s needs %d bits, more than %d", e.Type.Name(), next, maxOptions)
	}

	return problems
}

// Options returns the options for the constants in bit order. Constant names are stripped of
// trimPrefix; with lineComment, a non-empty line comment replaces the name.
func (e *Enum) Options(trimPrefix string, lineComment bool) ([]spec.Option, []*Problem) {
	var problems []*Problem

	options := make([]spec.Option, 0, len(e.Constants))
	for _, c := range e.Constants {
		name := strings.TrimPrefix(c.Name, trimPrefix)
		if name == "" {
			problems = append(problems, &Problem{Kind: KindName, Pos: c.Pos, Msg: fmt.Sprintf("constant %s is empty after trimming prefix %q", c.Name, trimPrefix)})

			continue
		}

		o := spec.Option{Name: name}
		if lineComment && c.Comment != "" {
			o = spec.Option{Name: c.Comment, Ident: spec.Title(name)}
		}

		options = append(options, o)
	}

	return options, problems
}
