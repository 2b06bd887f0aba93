package images

// format is an image format.
//
//optionset:name ImageFormat
//optionset:trimprefix format
//optionset:none
//optionset:all
//optionset:compound web=PNG,JPEG,SVG
type format uint8

const (
	formatPNG  format = iota // png
	formatJPEG               // jpeg
	formatSVG                // svg
	formatGIF                // gif
)

//optionset:generate
type Mode int

const (
	Read Mode = iota
	Write
	Exec
)

//optionset:compound bad=red,green
type gapped int

const (
	red   gapped = 0
	green gapped = 2
	blue  gapped = 2
)

//optionset:all
type label string

const plain label = "plain"

// color is not annotated.
type color int

const (
	cyan color = iota
	magenta
)
