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

// Package directive parses //optionset: annotations on enumeration types.
//
// Supported directives, one per line in the doc comment of the type:
//
//	//optionset:generate                 marks the type without further settings
//	//optionset:name ImageFormat         names the generated type
//	//optionset:trimprefix format        strips a prefix from constant names
//	//optionset:linecomment              uses line comments as option names
//	//optionset:none                     generates a constant without options
//	//optionset:all                      generates a constant with all options
//	//optionset:compound web=png,jpeg    generates a named combination
package directive

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/optionset/internal/spec"
)

// Prefix starts every directive comment.
const Prefix = "//optionset:"

// ErrCompound is returned for compound definitions not of the form name=option,...
var ErrCompound = errors.New("compound needs the form name=option,...")

// Annotation is the merged content of all directives on one type.
type Annotation struct {
	Name        string
	TrimPrefix  string
	LineComment bool
	None        bool
	All         bool
	Compound    []Compound
}

// Compound is a compound directive with its position.
type Compound struct {
	spec.Compound
	Pos token.Pos
}

// Compounds returns the compound options without positions.
func (a Annotation) Compounds() []spec.Compound {
	if len(a.Compound) == 0 {
		return nil
	}

	cs := make([]spec.Compound, len(a.Compound))
	for i, c := range a.Compound {
		cs[i] = c.Compound
	}

	return cs
}

// Error is a malformed directive.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Doc returns the doc comment that applies to the type spec ts of decl.
func Doc(decl *ast.GenDecl, ts *ast.TypeSpec) *ast.CommentGroup {
	if ts.Doc != nil {
		return ts.Doc
	}

	if !decl.Lparen.IsValid() {
		return decl.Doc
	}

	return nil
}

// Has reports whether doc contains any optionset directive.
func Has(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, Prefix) {
			return true
		}
	}

	return false
}

// Parse collects the directives in doc. found reports whether there was at least one.
func Parse(doc *ast.CommentGroup) (a Annotation, found bool, errs []*Error) {
	if doc == nil {
		return a, false, nil
	}

	seen := make(map[string]bool)

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, Prefix)
		if !ok {
			continue
		}

		found = true

		fail := func(msg string) { errs = append(errs, &Error{Pos: c.Pos(), Msg: msg}) }

		key, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
		arg = strings.TrimSpace(arg)

		if key != "compound" {
			if seen[key] {
				fail("repeated directive " + Prefix + key)

				continue
			}

			seen[key] = true
		}

		switch key {
		case "generate", "none", "all", "linecomment":
			if arg != "" {
				fail(Prefix + key + " takes no argument")

				continue
			}

			switch key {
			case "none":
				a.None = true

			case "all":
				a.All = true

			case "linecomment":
				a.LineComment = true
			}

		case "name":
			if !token.IsIdentifier(arg) {
				fail(Prefix + "name needs an identifier argument")

				continue
			}

			a.Name = arg

		case "trimprefix":
			if arg == "" || strings.ContainsAny(arg, " \t") {
				fail(Prefix + "trimprefix needs a single argument")

				continue
			}

			a.TrimPrefix = arg

		case "compound":
			cmp, err := ParseCompound(arg)
			if err != nil {
				fail(Prefix + "compound needs an argument name=option,...")

				continue
			}

			a.Compound = append(a.Compound, Compound{Compound: cmp, Pos: c.Pos()})

		default:
			fail("unknown directive " + Prefix + key)
		}
	}

	return a, found, errs
}

// ParseCompound parses a compound definition "name=option,...".
func ParseCompound(arg string) (spec.Compound, error) {
	name, list, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)

	if !ok || name == "" {
		return spec.Compound{}, ErrCompound
	}

	var options []string
	for option := range strings.SplitSeq(list, ",") {
		option = strings.TrimSpace(option)
		if option == "" {
			return spec.Compound{}, ErrCompound
		}

		options = append(options, option)
	}

	return spec.Compound{Name: name, Options: options}, nil
}
