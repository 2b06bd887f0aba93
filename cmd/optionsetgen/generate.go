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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/optionset/internal/emit"
	"fillmore-labs.com/optionset/internal/load"
	"fillmore-labs.com/optionset/internal/spec"
)

type generator struct {
	logger   *slog.Logger
	settings emit.Settings
	output   string
}

// job is one output file.
type job struct {
	spec spec.Spec
	file string
}

// errCollision is returned when two option sets would be written to the same file.
var errCollision = errors.New("output file collision")

// fromPackage generates the named enumeration types of the package in dir, all annotated types if none are named.
func (g generator) fromPackage(ctx context.Context, dir string, typeNames, tags []string, o load.Overrides) error {
	pkg, err := load.Load(ctx, dir, tags, ".")
	if err != nil {
		return err
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "Loaded package", slog.Any("package", pkg))

	if len(typeNames) == 0 {
		typeNames = pkg.Annotated()
		if len(typeNames) == 0 {
			return fmt.Errorf("no annotated types in %s, use -type", pkg.Dir())
		}
	}

	if dup, ok := duplicate(typeNames); ok {
		return fmt.Errorf("%w: type %s is named more than once", errUsage, dup)
	}

	if g.output != "" && len(typeNames) != 1 {
		return fmt.Errorf("%w: -output needs exactly one type, got %d", errUsage, len(typeNames))
	}

	var errs []error

	jobs := make([]job, 0, len(typeNames))
	for _, name := range typeNames {
		s, err := pkg.Spec(name, o)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		jobs = append(jobs, job{spec: s, file: g.outputFile(pkg.Dir(), name)})
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	return g.render(ctx, jobs)
}

// fromFile generates the option sets of a YAML specification next to it.
func (g generator) fromFile(ctx context.Context, name string) error {
	specs, err := spec.ReadFile(name)
	if err != nil {
		return err
	}

	if g.output != "" && len(specs) != 1 {
		return fmt.Errorf("%w: -output needs exactly one option set, %s has %d", errUsage, name, len(specs))
	}

	dir := filepath.Dir(name)

	jobs := make([]job, len(specs))
	for i, s := range specs {
		jobs[i] = job{spec: s, file: g.outputFile(dir, s.Name)}
	}

	return g.render(ctx, jobs)
}

func (g generator) outputFile(dir, typeName string) string {
	if g.output != "" {
		return g.output
	}

	return filepath.Join(dir, emit.FileName(typeName))
}

// render writes all jobs concurrently. Jobs must not share an output file.
func (g generator) render(ctx context.Context, jobs []job) error {
	if err := checkFiles(jobs); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for _, j := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return g.write(ctx, j)
		})
	}

	return eg.Wait()
}

func (g generator) write(ctx context.Context, j job) error {
	src, err := emit.Generate(j.spec, g.settings)
	if err != nil && !errors.Is(err, emit.ErrFormat) {
		return err
	}

	// unformatted source is kept for inspection
	if werr := os.WriteFile(j.file, src, 0o644); werr != nil {
		return werr
	}

	if err != nil {
		return fmt.Errorf("%s: %w", j.file, err)
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "Wrote option set",
		slog.String("file", j.file), slog.Any("spec", &j.spec))

	return nil
}

// checkFiles reports jobs writing the same file. Names are compared case-insensitively,
// since generated file names are lower case and file systems may fold case.
func checkFiles(jobs []job) error {
	var errs []error

	seen := make(map[string]string, len(jobs))
	for _, j := range jobs {
		key := strings.ToLower(filepath.Clean(j.file))
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s both write %s", errCollision, prev, j.spec.Name, j.file))

			continue
		}

		seen[key] = j.spec.Name
	}

	return errors.Join(errs...)
}

// duplicate returns the first name occurring more than once.
func duplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return name, true
		}

		seen[name] = struct{}{}
	}

	return "", false
}
