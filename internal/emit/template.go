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

package emit

import "text/template"

var source = template.Must(template.New("optionset").Parse(sourceTmpl))

const sourceTmpl = `// Code generated by "{{ .Command }}"; DO NOT EDIT.

package {{ .Package }}

import {{ if .Alias }}{{ .Alias }} {{ end }}"{{ .Runtime }}"

{{ if .Source -}}
// {{ .Name }} is an option set of {{ .Source }} values.
{{- else -}}
// {{ .Name }} is an option set.
{{- end }}
type {{ .Name }} uint64

{{ if .Options -}}
// Options of {{ .Name }}, one bit each.
const (
{{- range $i, $o := .Options }}
	{{ $o.Const }}{{ if eq $i 0 }} {{ $.Name }} = 1 << iota{{ end }}
{{- end }}
)
{{- end }}

{{ if .Compound -}}
// Compound options of {{ .Name }}.
const (
{{- range .Compound }}
	{{ .Const }} = {{ .Expr }}
{{- end }}
)
{{- end }}

{{ if .None -}}
// {{ .Name }}None has no options set.
const {{ .Name }}None {{ .Name }} = 0
{{- end }}

{{ if .All -}}
// {{ .Name }}All has all options set.
const {{ .Name }}All {{ .Name }} = {{ .AllExpr }}
{{- end }}

func init() {
	{{ .Qual }}.Register[{{ .Name }}]({{ printf "%q" .Name }}{{ range .Options }}, {{ printf "%q" .Option }}{{ end }})
}

var _ {{ .Qual }}.Set[{{ .Name }}] = {{ .Name }}(0)

// Raw returns the bits of {{ .Recv }}.
func ({{ .Recv }} {{ .Name }}) Raw() uint64 {
	return uint64({{ .Recv }})
}

// FromRaw returns a {{ .Name }} with the given bits.
func ({{ .Name }}) FromRaw(raw uint64) {{ .Name }} {
	return {{ .Name }}(raw)
}
{{- if .Methods }}

// And returns the union of {{ .Recv }} and other.
func ({{ .Recv }} {{ .Name }}) And(other {{ .Name }}) {{ .Name }} {
	return {{ .Qual }}.And({{ .Recv }}, other)
}

// Not returns the complement of {{ .Recv }}.
func ({{ .Recv }} {{ .Name }}) Not() {{ .Name }} {
	return {{ .Qual }}.Not({{ .Recv }})
}

// Has reports whether all options of query are set in {{ .Recv }}.
func ({{ .Recv }} {{ .Name }}) Has(query {{ .Name }}) bool {
	return {{ .Qual }}.Has({{ .Recv }}, query)
}

// Toggle flips the given options.
func ({{ .Recv }} {{ .Name }}) Toggle(options {{ .Name }}) {{ .Name }} {
	return {{ .Qual }}.Toggle({{ .Recv }}, options)
}

// TurnOn sets the given options.
func ({{ .Recv }} {{ .Name }}) TurnOn(options {{ .Name }}) {{ .Name }} {
	return {{ .Qual }}.TurnOn({{ .Recv }}, options)
}

// TurnOff clears the given options.
func ({{ .Recv }} {{ .Name }}) TurnOff(options {{ .Name }}) {{ .Name }} {
	return {{ .Qual }}.TurnOff({{ .Recv }}, options)
}
{{- end }}
{{- if .Stringer }}

// String describes {{ .Recv }} with its active options.
func ({{ .Recv }} {{ .Name }}) String() string {
	return {{ .Qual }}.Describe({{ .Recv }})
}
{{- end }}
{{- if .Parser }}

// {{ .Parse }} returns the {{ .Name }} with the named options set.
func {{ .Parse }}(names ...string) ({{ .Name }}, error) {
	return {{ .Qual }}.Parse[{{ .Name }}](names...)
}
{{- end }}
`
