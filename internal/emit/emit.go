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

// Package emit renders option set specifications as Go source.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"log/slog"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mod/module"

	"fillmore-labs.com/optionset"
	"fillmore-labs.com/optionset/internal/config"
	"fillmore-labs.com/optionset/internal/spec"
)

// DefaultRuntime is the import path of the option set runtime.
const DefaultRuntime = "fillmore-labs.com/optionset"

// ErrFormat is returned with the unformatted source when the generated code does not parse.
var ErrFormat = errors.New("generated source does not format")

// Settings control code generation independent of the specification.
type Settings struct {
	// Command is recorded in the "Code generated" header.
	Command string

	// Runtime is the import path of the option set runtime. Empty means [DefaultRuntime].
	Runtime string

	// Features selects optional parts of the generated code.
	Features config.Features
}

// DefaultSettings returns [Settings] generating all features.
func DefaultSettings() Settings {
	return Settings{
		Command:  "optionsetgen",
		Runtime:  DefaultRuntime,
		Features: config.DefaultFeatures(),
	}
}

// LogValue implements [slog.LogValuer].
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("runtime", s.Runtime),
		slog.String("features", strings.Join(optionset.Names(s.Features), ",")),
	)
}

// Generate returns the formatted Go source for s. The specification is validated first.
//
// When formatting fails, the unformatted source is returned together with an error wrapping [ErrFormat].
func Generate(s spec.Spec, settings Settings) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.Package == "" {
		return nil, fmt.Errorf("%s: %w: missing package name", s.Name, spec.ErrInvalid)
	}

	d, err := newData(s, settings)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := source.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("%s: %w: %w", s.Name, ErrFormat, err)
	}

	return src, nil
}

// FileName returns the conventional output file name for an option set generated from typeName.
func FileName(typeName string) string {
	return strings.ToLower(typeName) + "_optionset.go"
}

type data struct {
	Command  string
	Package  string
	Runtime  string
	Alias    string
	Qual     string
	Name     string
	Source   string
	Recv     string
	Parse    string
	Options  []option
	Compound []compound
	None     bool
	All      bool
	AllExpr  string
	Methods  bool
	Stringer bool
	Parser   bool
}

type option struct {
	Const  string
	Option string
}

type compound struct {
	Const string
	Expr  string
}

func newData(s spec.Spec, settings Settings) (*data, error) {
	runtime := settings.Runtime
	if runtime == "" {
		runtime = DefaultRuntime
	}

	if err := module.CheckImportPath(runtime); err != nil {
		return nil, fmt.Errorf("runtime import path: %w", err)
	}

	d := &data{
		Command:  settings.Command,
		Package:  s.Package,
		Runtime:  runtime,
		Qual:     "optionset",
		Name:     s.Name,
		Source:   s.Source,
		Recv:     receiver(s.Name),
		Parse:    parseFunc(s.Name),
		None:     s.None,
		All:      s.All,
		AllExpr:  allExpr(s.Name, len(s.Options)),
		Methods:  settings.Features.Has(config.FeaturesMethods),
		Stringer: settings.Features.Has(config.FeaturesStringer),
		Parser:   settings.Features.Has(config.FeaturesParser),
	}

	if base := path.Base(runtime); base != d.Qual || !token.IsIdentifier(base) {
		d.Alias = d.Qual
	}

	d.Options = make([]option, len(s.Options))
	for i, o := range s.Options {
		d.Options[i] = option{Const: s.ConstName(o.Identifier()), Option: o.Name}
	}

	d.Compound = make([]compound, len(s.Compound))
	for i, c := range s.Compound {
		terms := make([]string, len(c.Options))
		for j, name := range c.Options {
			k, _ := s.Index(name) // validated
			terms[j] = d.Options[k].Const
		}

		d.Compound[i] = compound{Const: s.ConstName(spec.Title(c.Name)), Expr: strings.Join(terms, " | ")}
	}

	return d, nil
}

// receiver returns the lower-cased first letter of name.
func receiver(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(r) {
		return "x"
	}

	return string(unicode.ToLower(r))
}

// parseFunc returns the name of the generated parse function, exported with the type.
func parseFunc(name string) string {
	if token.IsExported(name) {
		return "Parse" + name
	}

	return "parse" + spec.Title(name)
}

func allExpr(name string, n int) string {
	if n >= spec.MaxOptions {
		return "^" + name + "(0)"
	}

	return fmt.Sprintf("1<<%d - 1", n)
}
