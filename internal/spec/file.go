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

package spec

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// File is the layout of a YAML specification file.
//
//	package: images
//	optionsets:
//	  - name: ImageFormat
//	    options: [png, jpeg, svg, gif]
//	    compound:
//	      - name: web
//	        options: [png, jpeg, svg]
//	    none: true
//	    all: true
type File struct {
	// Package is the default package name of all option sets in the file.
	Package    string `json:"package,omitempty"`
	OptionSets []Spec `json:"optionsets"`
}

// Decode parses and validates a YAML specification. Unknown fields are rejected.
func Decode(data []byte) ([]Spec, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("decode option set specification: %w", err)
	}

	if len(f.OptionSets) == 0 {
		return nil, fmt.Errorf("%w: no option sets", ErrInvalid)
	}

	errs := make([]error, 0, len(f.OptionSets))
	for i := range f.OptionSets {
		s := &f.OptionSets[i]
		if s.Package == "" {
			s.Package = f.Package
		}

		errs = append(errs, s.Validate())
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return f.OptionSets, nil
}

// ReadFile reads a YAML specification from disk.
func ReadFile(name string) ([]Spec, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	specs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return specs, nil
}
