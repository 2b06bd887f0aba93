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
	"log/slog"
	"strings"

	"fillmore-labs.com/optionset"
	"fillmore-labs.com/optionset/internal/config"
)

// Option configures specific behavior of a [New] optionsetlint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxOptions is an [Option] to limit the number of options per type below the 64 available bits.
func WithMaxOptions(maxOptions int) Option { return maxOptionsOption{maxOptions: maxOptions} }

type maxOptionsOption struct{ maxOptions int }

func (o maxOptionsOption) apply(r *runOptions) {
	r.maxOptions = o.maxOptions
}

func (o maxOptionsOption) LogAttr() slog.Attr {
	return slog.Int("max-options", o.maxOptions)
}

// WithDirectives is an [Option] to configure whether directive checks are enabled.
func WithDirectives(directives bool) Option {
	return checkOption{check: config.ChecksDirectives, enabled: directives}
}

// WithValues is an [Option] to configure whether constant value checks are enabled.
func WithValues(values bool) Option {
	return checkOption{check: config.ChecksValues, enabled: values}
}

// WithCompounds is an [Option] to configure whether compound checks are enabled.
func WithCompounds(compounds bool) Option {
	return checkOption{check: config.ChecksCompounds, enabled: compounds}
}

type checkOption struct {
	check   config.Checks
	enabled bool
}

func (o checkOption) apply(r *runOptions) {
	if o.enabled {
		r.checks = r.checks.TurnOn(o.check)
	} else {
		r.checks = r.checks.TurnOff(o.check)
	}
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(strings.ToLower(strings.Join(optionset.Names(o.check), ",")), o.enabled)
}
