// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/optionset/internal/astutil"
	"fillmore-labs.com/optionset/internal/config"
	"fillmore-labs.com/optionset/internal/directive"
	"fillmore-labs.com/optionset/internal/enum"
	"fillmore-labs.com/optionset/internal/spec"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Diagnostic categories besides the [enum.Kind] values.
const (
	categoryDirective = "directive"
	categoryCompound  = "compound"
)

// run executes the optionsetlint analyzer.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("optionsetlint: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "OptionSetLint")
	defer task.End()

	// Remember the current file over all declarations in it
	var currentFile astutil.CurrentFile

	root, filter := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.GenDecl)(nil),
	}

	// Loop over all package level type declarations
	root.Inspect(filter, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.generated || !currentFile.Generated()

			return descend

		case *ast.GenDecl:
			if node.Tok != token.TYPE {
				return false
			}

			if _, ok := i.Parent().Node().(*ast.File); !ok {
				return false // local type
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Type declaration without file info")

				return false
			}

			for _, s := range node.Specs {
				r.checkType(ctx, p, node, s.(*ast.TypeSpec))
			}

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// checkType reports problems of an annotated enumeration type.
func (r *runOptions) checkType(ctx context.Context, p *analysis.Pass, decl *ast.GenDecl, ts *ast.TypeSpec) {
	doc := directive.Doc(decl, ts)
	if !directive.Has(doc) || astutil.NoLint(doc, ts) {
		return
	}

	defer trace.StartRegion(ctx, "checkType").End()

	a, _, errs := directive.Parse(doc)
	if r.checks.Has(config.ChecksDirectives) {
		for _, err := range errs {
			p.Report(analysis.Diagnostic{Pos: err.Pos, Category: categoryDirective, Message: err.Msg})
		}
	}

	tn, ok := p.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		astutil.InternalError(p, ts.Name, "Type %s without definition", ts.Name.Name)

		return
	}

	values := r.checks.Has(config.ChecksValues)

	e, problem := enum.Of(tn, p.Files, p.TypesInfo)
	if problem != nil {
		if values {
			reportProblem(p, problem)
		}

		return
	}

	if values {
		for _, problem := range e.Check(r.limit()) {
			reportProblem(p, problem)
		}
	}

	options, problems := e.Options(a.TrimPrefix, a.LineComment)
	if values {
		for _, problem := range problems {
			reportProblem(p, problem)
		}
	}

	if !r.checks.Has(config.ChecksCompounds) || len(options) == 0 {
		return
	}

	known := make(map[string]struct{}, len(options))
	for _, o := range options {
		known[o.Name] = struct{}{}
	}

	for _, c := range a.Compound {
		for _, option := range c.Options {
			if _, ok := known[option]; ok {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      ts.Name.Pos(),
				End:      ts.Name.End(),
				Category: categoryCompound,
				Message:  fmt.Sprintf("compound %s of %s references unknown option %q", c.Name, ts.Name.Name, option),
				Related:  []analysis.RelatedInformation{{Pos: c.Pos, Message: "compound " + c.Name}},
			})
		}
	}
}

// limit returns the effective maximum number of options.
func (r *runOptions) limit() int {
	if r.maxOptions <= 0 || r.maxOptions > spec.MaxOptions {
		return spec.MaxOptions
	}

	return r.maxOptions
}

func reportProblem(p *analysis.Pass, problem *enum.Problem) {
	p.Report(analysis.Diagnostic{Pos: problem.Pos, Category: problem.Kind.String(), Message: problem.Msg})
}
