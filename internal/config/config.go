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

// Package config holds the behavior switches of the generator and the analyzer.
package config

// feature represents optional parts of generated code.
//
//optionset:name Features
//optionset:trimprefix feature
//optionset:all
//go:generate go run fillmore-labs.com/optionset/cmd/optionsetgen -type feature
type feature uint8

const (
	// featureMethods generates And, Not, Has, Toggle, TurnOn and TurnOff methods.
	featureMethods feature = iota

	// featureStringer generates a String method.
	featureStringer

	// featureParser generates a Parse function.
	featureParser
)

// check represents specific checks of the analyzer.
//
//optionset:name Checks
//optionset:trimprefix check
//optionset:all
//go:generate go run fillmore-labs.com/optionset/cmd/optionsetgen -type check
type check uint8

const (
	// checkDirectives reports malformed optionset directives.
	checkDirectives check = iota

	// checkValues reports enumeration constants that do not map to distinct bits.
	checkValues

	// checkCompounds reports compound options naming unknown options.
	checkCompounds
)

// DefaultFeatures returns the features generated unless disabled.
func DefaultFeatures() Features { return FeaturesAll }

// DefaultChecks returns the analyzer checks enabled unless disabled.
func DefaultChecks() Checks { return ChecksAll }
