package a

// format is a valid option set enumeration.
//
//optionset:name ImageFormat
//optionset:compound web=png,jpeg,svg
type format int

const (
	png format = iota
	jpeg
	gif
)

//optionset:bits 32 // want "unknown directive //optionset:bits"
type directives int

const d0 directives = 0

//optionset:compound web // want "compound needs an argument"
type malformed int

const m0 malformed = 0

//optionset:generate
type gapped int

const (
	g0 gapped = 0
	g2 gapped = 2 // want "constant g2 has value 2, want 1"
	g3 gapped = 2 // want "constant g3 has the same value 2 as g2"
)

//optionset:generate
type negative int

const (
	n0 negative = -1 // want "constant n0 has negative value -1"
	n1 negative = 0
)

//optionset:all
type label string // want "type label is not an integer type"

const plain label = "plain"

//optionset:none
type empty int // want "type empty has no constants"

//optionset:trimprefix prefix
type trimmed int

const (
	prefix    trimmed = iota // want "constant prefix is empty after trimming prefix"
	prefixOne
)

//optionset:compound print=paper,ink
type media int // want `compound print of media references unknown option "ink"`

const (
	paper media = iota
	screen
)

//optionset:linecomment
//optionset:compound raster=image/png,image/gif
type mime int

const (
	mimePNG mime = iota // image/png
	mimeGIF             // image/gif
)

//optionset:generate
//nolint:optionsetlint
type suppressed int

const s1 suppressed = 1

// unannotated types are not checked.
type color int

const (
	red  color = 1
	blue color = 1
)

func local() {
	//optionset:bogus
	type inner int

	_ = inner(0)
}
