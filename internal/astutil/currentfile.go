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

// Package astutil holds syntax helpers shared by the analysis pass.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// linter is the name used in //nolint comments.
const linter = "optionsetlint"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{handle, ast.IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint reports whether a type spec is suppressed by a //nolint:optionsetlint comment,
// either in its doc comment or trailing the type.
func NoLint(doc *ast.CommentGroup, ts *ast.TypeSpec) bool {
	for _, g := range []*ast.CommentGroup{doc, ts.Comment} {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			if CommentHasNoLint(c) {
				return true
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:optionsetlint` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for l := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(l)); l == linter || l == "all" {
			return true
		}
	}

	return false
}
