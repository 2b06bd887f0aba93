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

// Package analyzer implements the optionsetlint static analysis pass.
//
// # Overview
//
// optionsetlint checks enumeration types carrying //optionset: directives, the input of
// the optionsetgen generator, so that problems show up in the editor instead of at
// generation time.
//
// # Example
//
//	//optionset:compound web=png,jpeg,bmp
//	type format int
//
//	const (
//		png  format = iota
//		jpeg
//		gif  format = 3
//	)
//
// reports the unknown option "bmp" in the compound and the gap before gif.
//
// # Checks
//
//   - Directives: unknown or malformed //optionset: directives
//   - Values: non-integer types, negative, duplicate or non-consecutive constant values,
//     more constants than bits and constants without a name
//   - Compounds: compound options naming unknown options
//
// Types in generated files are skipped unless -generated is set, and a //nolint:optionsetlint
// comment on the type suppresses all diagnostics for it.
package analyzer
