// Code generated by hand. DO NOT EDIT.

package generated

//optionset:bits 32
type gapped int

const (
	g0 gapped = 0
	g2 gapped = 2
)
