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

// Package load reads annotated enumeration types from Go packages.
package load

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/optionset/internal/directive"
	"fillmore-labs.com/optionset/internal/enum"
	"fillmore-labs.com/optionset/internal/spec"
)

// ErrNotFound is returned for type names not declared in the package.
var ErrNotFound = errors.New("type not found")

// ErrPackage is returned when the package can't be loaded.
var ErrPackage = errors.New("can't load package")

const mode = packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// Package is a type checked Go package.
type Package struct {
	pkg *packages.Package
}

// Load type checks the single package matching pattern, relative to dir.
func Load(ctx context.Context, dir string, tags []string, pattern string) (*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     dir,
	}

	if len(tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(tags, ",")}
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrPackage, pattern, err)
	}

	if n := len(pkgs); n != 1 {
		return nil, fmt.Errorf("%w %s: %d packages found", ErrPackage, pattern, n)
	}

	pkg := pkgs[0]

	if len(pkg.Errors) > 0 {
		errs := make([]error, len(pkg.Errors))
		for i, e := range pkg.Errors {
			errs[i] = e
		}

		return nil, fmt.Errorf("%w %s: %w", ErrPackage, pkg.PkgPath, errors.Join(errs...))
	}

	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("%w %s: no Go files", ErrPackage, pkg.PkgPath)
	}

	return &Package{pkg: pkg}, nil
}

// Name returns the package name.
func (p *Package) Name() string { return p.pkg.Name }

// Dir returns the directory of the package sources.
func (p *Package) Dir() string { return filepath.Dir(p.pkg.GoFiles[0]) }

// LogValue implements [slog.LogValuer].
func (p *Package) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", p.pkg.PkgPath),
		slog.String("dir", p.Dir()),
		slog.Int("files", len(p.pkg.Syntax)),
	)
}

// Annotated returns the names of all types carrying optionset directives, in source order.
func (p *Package) Annotated() []string {
	var names []string

	for d := range enum.TypeDecls(p.pkg.Syntax, p.pkg.TypesInfo) {
		if directive.Has(directive.Doc(d.Decl, d.Spec)) {
			names = append(names, d.Type.Name())
		}
	}

	return names
}

// Overrides are command line settings. Set values take precedence over directives.
type Overrides struct {
	Name        string
	TrimPrefix  string
	LineComment bool
	None        bool
	All         bool
	Compound    []spec.Compound
}

// Error is a problem located in the package source.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// Spec builds the specification for the enumeration type typeName.
func (p *Package) Spec(typeName string, o Overrides) (spec.Spec, error) {
	files, info := p.pkg.Syntax, p.pkg.TypesInfo

	d, ok := enum.Lookup(files, info, typeName)
	if !ok {
		return spec.Spec{}, fmt.Errorf("%w: %s in package %s", ErrNotFound, typeName, p.pkg.PkgPath)
	}

	var errs []error

	fail := func(pos token.Pos, msg string) {
		errs = append(errs, &Error{Pos: p.pkg.Fset.Position(pos), Msg: msg})
	}

	a, _, derrs := directive.Parse(directive.Doc(d.Decl, d.Spec))
	for _, e := range derrs {
		fail(e.Pos, e.Msg)
	}

	e, problem := enum.Of(d.Type, files, info)
	if problem != nil {
		fail(problem.Pos, problem.Msg)

		return spec.Spec{}, errors.Join(errs...)
	}

	for _, problem := range e.Check(spec.MaxOptions) {
		fail(problem.Pos, problem.Msg)
	}

	a = merge(a, o)

	options, problems := e.Options(a.TrimPrefix, a.LineComment)
	for _, problem := range problems {
		fail(problem.Pos, problem.Msg)
	}

	if len(errs) > 0 {
		return spec.Spec{}, errors.Join(errs...)
	}

	name := a.Name
	if name == "" {
		name = DefaultName(typeName)
	}

	s := spec.Spec{
		Package:  p.pkg.Name,
		Name:     name,
		Source:   typeName,
		Options:  options,
		Compound: a.Compounds(),
		None:     a.None,
		All:      a.All,
	}

	return s, s.Validate()
}

// DefaultName returns the generated type name for an enumeration without a name directive.
func DefaultName(typeName string) string {
	if token.IsExported(typeName) {
		return typeName + "Set"
	}

	return spec.Title(typeName)
}

func merge(a directive.Annotation, o Overrides) directive.Annotation {
	if o.Name != "" {
		a.Name = o.Name
	}

	if o.TrimPrefix != "" {
		a.TrimPrefix = o.TrimPrefix
	}

	a.LineComment = a.LineComment || o.LineComment
	a.None = a.None || o.None
	a.All = a.All || o.All

	for _, c := range o.Compound {
		a.Compound = slices.DeleteFunc(a.Compound, func(d directive.Compound) bool { return d.Name == c.Name })
		a.Compound = append(a.Compound, directive.Compound{Compound: c})
	}

	return a
}
