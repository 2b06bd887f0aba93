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

// Package spec defines the declarative description of a generated option set type.
package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxOptions is the number of bits available to a generated option set.
const MaxOptions = 64

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid option set specification")

// Spec describes one option set type to generate.
type Spec struct {
	// Package is the name of the package the type is generated into.
	Package string `json:"package,omitempty"`
	// Name is the name of the generated type, also used as display name.
	Name string `json:"name"`
	// Source is the enumeration type the options were read from, if any.
	Source string `json:"source,omitempty"`
	// Options lists the options in bit order.
	Options []Option `json:"options"`
	// Compound lists named combinations of options.
	Compound []Compound `json:"compound,omitempty"`
	// None requests a constant without options.
	None bool `json:"none,omitempty"`
	// All requests a constant with all options.
	All bool `json:"all,omitempty"`
}

// Option is a single named flag.
type Option struct {
	// Name is the catalog name, displayed by String.
	Name string `json:"name"`
	// Ident is the suffix of the generated constant. Empty means the title-cased Name.
	Ident string `json:"ident,omitempty"`
}

// Compound is a named combination of options.
type Compound struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// UnmarshalJSON accepts a bare string as shorthand for an [Option] with only a name.
func (o *Option) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		*o = Option{}

		return json.Unmarshal(data, &o.Name)
	}

	type plain Option

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p plain
	if err := dec.Decode(&p); err != nil {
		return err
	}

	*o = Option(p)

	return nil
}

// Title upper-cases the first letter of each word in s, keeping the rest.
func Title(s string) string {
	// a Caser is stateful and must not be shared between goroutines
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Identifier returns the suffix of the generated constant for o.
func (o Option) Identifier() string {
	if o.Ident != "" {
		return o.Ident
	}

	return Title(o.Name)
}

// Names returns the catalog names of all options.
func (s *Spec) Names() []string {
	names := make([]string, len(s.Options))
	for i, o := range s.Options {
		names[i] = o.Name
	}

	return names
}

// Index returns the bit position of the named option.
func (s *Spec) Index(name string) (int, bool) {
	for i, o := range s.Options {
		if o.Name == name {
			return i, true
		}
	}

	return -1, false
}

// ConstName returns the name of the generated constant with the given suffix.
func (s *Spec) ConstName(suffix string) string {
	return s.Name + suffix
}

// Validate reports all problems of s, joined.
func (s *Spec) Validate() error {
	var errs []error

	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w: %s", s.label(), ErrInvalid, fmt.Sprintf(format, args...)))
	}

	switch {
	case s.Name == "":
		fail("missing type name")

	case !token.IsIdentifier(s.Name):
		fail("type name %q is not an identifier", s.Name)
	}

	if s.Source != "" && s.Name == s.Source {
		fail("type name %q is the enumeration type", s.Name)
	}

	if s.Package != "" && !token.IsIdentifier(s.Package) {
		fail("package name %q is not an identifier", s.Package)
	}

	if n := len(s.Options); n > MaxOptions {
		fail("%d options exceed the maximum of %d", n, MaxOptions)
	}

	names := make(map[string]struct{}, len(s.Options))
	idents := make(map[string]string, len(s.Options)+len(s.Compound)+2)

	claim := func(ident, what string) {
		if prev, ok := idents[ident]; ok {
			fail("%s and %s both generate %s", prev, what, s.ConstName(ident))

			return
		}

		idents[ident] = what
	}

	if s.None {
		claim("None", "none constant")
	}

	if s.All {
		claim("All", "all constant")
	}

	for i, o := range s.Options {
		if o.Name == "" {
			fail("empty name for option %d", i)

			continue
		}

		if _, ok := names[o.Name]; ok {
			fail("duplicate option %q", o.Name)

			continue
		}

		names[o.Name] = struct{}{}

		ident := o.Identifier()
		if !token.IsIdentifier(s.ConstName(ident)) {
			fail("option %q does not form an identifier, set ident", o.Name)

			continue
		}

		claim(ident, fmt.Sprintf("option %q", o.Name))
	}

	for _, c := range s.Compound {
		what := fmt.Sprintf("compound %q", c.Name)

		if c.Name == "" || !token.IsIdentifier(s.ConstName(Title(c.Name))) {
			fail("%s does not form an identifier", what)

			continue
		}

		if len(c.Options) == 0 {
			fail("%s has no options", what)
		}

		for _, name := range c.Options {
			if _, ok := names[name]; !ok {
				fail("%s references unknown option %q", what, name)
			}
		}

		claim(Title(c.Name), what)
	}

	return errors.Join(errs...)
}

func (s *Spec) label() string {
	switch {
	case s.Name != "":
		return s.Name

	case s.Source != "":
		return s.Source

	default:
		return "option set"
	}
}

// LogValue implements [slog.LogValuer].
func (s *Spec) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", s.Name),
		slog.String("package", s.Package),
		slog.String("source", s.Source),
		slog.Int("options", len(s.Options)),
		slog.Int("compound", len(s.Compound)),
		slog.Bool("none", s.None),
		slog.Bool("all", s.All),
	)
}
