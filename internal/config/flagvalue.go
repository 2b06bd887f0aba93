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

package config

import (
	"strconv"

	"fillmore-labs.com/optionset"
)

// BoolValue is a boolean [flag.Value] switching a single option of an option set.
type BoolValue[S optionset.Set[S]] struct {
	set    *S
	option S
}

// NewBoolValue returns a [BoolValue] switching option in *set.
func NewBoolValue[S optionset.Set[S]](set *S, option S) *BoolValue[S] {
	return &BoolValue[S]{set: set, option: option}
}

// Set implements [flag.Value].
func (f *BoolValue[S]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	if b {
		*f.set = optionset.TurnOn(*f.set, f.option)
	} else {
		*f.set = optionset.TurnOff(*f.set, f.option)
	}

	return nil
}

// String implements [flag.Value].
func (f *BoolValue[S]) String() string {
	if f == nil || f.set == nil {
		return "false"
	}

	return strconv.FormatBool(f.Enabled())
}

// Get implements [flag.Getter].
func (f *BoolValue[S]) Get() any {
	if f == nil || f.set == nil {
		return false
	}

	return f.Enabled()
}

// Enabled reports whether the option is set.
func (f *BoolValue[S]) Enabled() bool {
	return optionset.Has(*f.set, f.option)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f *BoolValue[S]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "yes", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off", "no", "No":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
