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

// Optionsetgen generates option set types from enumerations.
//
// Given an enumeration
//
//	//optionset:name ImageFormat
//	//optionset:trimprefix format
//	type format int
//
//	const (
//		formatPNG format = iota
//		formatJPEG
//	)
//
// running "optionsetgen -type format" in the package directory writes format_optionset.go,
// declaring the option set type ImageFormat with the constants ImageFormatPNG and ImageFormatJPEG.
// Without -type, all types carrying //optionset: directives are generated.
//
// With -spec, option sets are generated from a YAML file instead, written next to it.
//
// Usage:
//
//	optionsetgen [flags] [directory]
//	optionsetgen [flags] -spec file.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"fillmore-labs.com/optionset"
	"fillmore-labs.com/optionset/internal/config"
	"fillmore-labs.com/optionset/internal/directive"
	"fillmore-labs.com/optionset/internal/emit"
	"fillmore-labs.com/optionset/internal/load"
	"fillmore-labs.com/optionset/internal/spec"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)

	stop()
	os.Exit(code)
}

// errUsage marks invalid flag combinations.
var errUsage = errors.New("usage")

type flags struct {
	types       string
	spec        string
	name        string
	none        bool
	all         bool
	compound    compoundList
	trimPrefix  string
	lineComment bool
	output      string
	runtime     string
	tags        string
	features    config.Features
	verbose     bool
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("optionsetgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := flags{features: config.DefaultFeatures()}
	f.register(fs)

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintln(out, "Usage of optionsetgen:")
		_, _ = fmt.Fprintln(out, "\toptionsetgen [flags] [directory]")
		_, _ = fmt.Fprintln(out, "\toptionsetgen [flags] -spec file.yaml")
		_, _ = fmt.Fprintln(out, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g := generator{
		logger: logger,
		settings: emit.Settings{
			Command:  strings.Join(append([]string{"optionsetgen"}, args...), " "),
			Runtime:  f.runtime,
			Features: f.features,
		},
		output: f.output,
	}

	err := f.validate(fs)
	if err == nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Generating", slog.Any("settings", g.settings))

		if f.spec != "" {
			err = g.fromFile(ctx, f.spec)
		} else {
			err = g.fromPackage(ctx, f.dir(fs), f.typeNames(), f.tagList(), f.overrides())
		}
	}

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, errUsage):
		printError(stderr, err)
		fs.Usage()

		return exitUsage

	default:
		printError(stderr, err)

		return exitError
	}
}

func (f *flags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.types, "type", "", "comma-separated list of enumeration type names; default all annotated types")
	fs.StringVar(&f.spec, "spec", "", "read option sets from a YAML `file` instead of a package")
	fs.StringVar(&f.name, "name", "", "name of the generated type")
	fs.BoolVar(&f.none, "none", false, "generate a constant without options")
	fs.BoolVar(&f.all, "all", false, "generate a constant with all options")
	fs.Var(&f.compound, "compound", "generate a named combination `name=option,...`; may be repeated")
	fs.StringVar(&f.trimPrefix, "trimprefix", "", "trim the `prefix` from constant names")
	fs.BoolVar(&f.lineComment, "linecomment", false, "use line comment text as option names")
	fs.StringVar(&f.output, "output", "", "output file name; default <type>_optionset.go")
	fs.StringVar(&f.runtime, "runtime", emit.DefaultRuntime, "import `path` of the option set runtime")
	fs.StringVar(&f.tags, "tags", "", "comma-separated list of build tags to apply")
	fs.Var(optionset.NewValue(&f.features), "features", "generated `features`, from "+strings.Join(optionset.CatalogOf[config.Features]().Options(), ", "))
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
}

// validate checks flag combinations.
func (f *flags) validate(fs *flag.FlagSet) error {
	if f.spec != "" {
		var conflicting []string

		fs.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "type", "name", "none", "all", "compound", "trimprefix", "linecomment", "tags":
				conflicting = append(conflicting, "-"+fl.Name)
			}
		})

		if len(conflicting) > 0 {
			return fmt.Errorf("%w: -spec can't be combined with %s", errUsage, strings.Join(conflicting, ", "))
		}

		if fs.NArg() > 0 {
			return fmt.Errorf("%w: -spec takes no directory argument", errUsage)
		}

		return nil
	}

	if fs.NArg() > 1 {
		return fmt.Errorf("%w: at most one directory argument", errUsage)
	}

	if f.name != "" && len(f.typeNames()) != 1 {
		return fmt.Errorf("%w: -name needs exactly one -type", errUsage)
	}

	return nil
}

func (f *flags) dir(fs *flag.FlagSet) string {
	if fs.NArg() == 1 {
		return fs.Arg(0)
	}

	return "."
}

func (f *flags) typeNames() []string { return splitList(f.types) }

func (f *flags) tagList() []string { return splitList(f.tags) }

func (f *flags) overrides() load.Overrides {
	return load.Overrides{
		Name:        f.name,
		TrimPrefix:  f.trimPrefix,
		LineComment: f.lineComment,
		None:        f.none,
		All:         f.all,
		Compound:    f.compound,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var list []string
	for e := range strings.SplitSeq(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}

	return list
}

// compoundList is a repeatable -compound flag.
type compoundList []spec.Compound

func (c *compoundList) String() string {
	if c == nil {
		return ""
	}

	defs := make([]string, len(*c))
	for i, d := range *c {
		defs[i] = d.Name + "=" + strings.Join(d.Options, ",")
	}

	return strings.Join(defs, " ")
}

func (c *compoundList) Set(s string) error {
	d, err := directive.ParseCompound(s)
	if err != nil {
		return err
	}

	*c = append(*c, d)

	return nil
}

func printError(w io.Writer, err error) {
	msg := err.Error()

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		msg = color.Red.Sprint(msg)
	}

	_, _ = fmt.Fprintln(w, "optionsetgen:", msg)
}
