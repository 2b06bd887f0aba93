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

// Package optionset implements typed bitmasks over a fixed, named catalog of options.
//
// # Overview
//
// An option set is a concrete integer type whose bits each stand for one named flag.
// The concrete type supplies two methods, a raw accessor and a factory, and registers
// its catalog of option names once:
//
//	type ImageFormat uint64
//
//	const (
//	    ImageFormatPng ImageFormat = 1 << iota
//	    ImageFormatJpeg
//	    ImageFormatSvg
//	    ImageFormatGif
//	)
//
//	func (f ImageFormat) Raw() uint64                   { return uint64(f) }
//	func (ImageFormat) FromRaw(raw uint64) ImageFormat { return ImageFormat(raw) }
//
//	func init() { optionset.Register[ImageFormat]("ImageFormat", "png", "jpeg", "svg", "gif") }
//
// The generic functions of this package then combine, query and format values while
// always returning the concrete type:
//
//	web := optionset.And(ImageFormatPng, ImageFormatJpeg)
//	optionset.Has(web, ImageFormatPng)  // true
//	optionset.Describe(web)             // "ImageFormat (0011): png, jpeg"
//
// The optionsetgen command writes this boilerplate from an annotated enumeration.
//
// # Semantics
//
// Values are immutable. [Has] tests for all bits of the query, [Not] inverts all 64 bits
// and bits outside the catalog are kept: they take part in equality and hashing and are
// only hidden by [Describe]. Use [Clamp] to drop them explicitly.
//
// Using a type that never registered its catalog is a programming error and panics.
package optionset
