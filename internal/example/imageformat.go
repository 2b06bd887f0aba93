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

// Package example declares an image format option set with optionsetgen.
package example

import "fillmore-labs.com/optionset"

// format is an image file format.
//
//optionset:name ImageFormat
//optionset:trimprefix format
//optionset:linecomment
//optionset:none
//optionset:all
//optionset:compound web=png,jpeg,svg
//go:generate go run fillmore-labs.com/optionset/cmd/optionsetgen -type format
type format uint8

const (
	formatPNG  format = iota // png
	formatJPEG               // jpeg
	formatSVG                // svg
	formatGIF                // gif
)

// Formats returns the option set containing only f.
func (f format) Formats() ImageFormat {
	return optionset.Bit[ImageFormat](int(f))
}

// Supports reports whether a viewer accepting formats can display f.
func Supports(formats ImageFormat, f format) bool {
	return formats.Has(f.Formats())
}
