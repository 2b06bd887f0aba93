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

package enum

import "go/token"

// Kind classifies a [Problem] with an enumeration.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindNotInteger indicates the annotated type is not an integer type.
	KindNotInteger Kind = iota // not-integer

	// KindNegative indicates a constant with a negative value.
	KindNegative // negative

	// KindDuplicate indicates two constants sharing a value, and therefore a bit.
	KindDuplicate // duplicate

	// KindGap indicates constant values that are not consecutive from zero.
	KindGap // gap

	// KindTooMany indicates more constants than bits.
	KindTooMany // too-many

	// KindEmpty indicates a type without constants.
	KindEmpty // empty

	// KindName indicates a constant that yields an empty option name.
	KindName // name
)

// Problem is an enumeration that does not describe an option set.
type Problem struct {
	Kind Kind
	Pos  token.Pos
	Msg  string
}

func (p *Problem) Error() string { return p.Msg }
