package images

// format is an image format.
//
//optionset:name ImageFormat
//optionset:trimprefix format
//optionset:none
//optionset:compound web=PNG,JPEG,SVG
type format uint8

const (
	formatPNG format = iota
	formatJPEG
	formatSVG
	formatGIF
)

//optionset:all
type Mode int

const (
	Read Mode = iota
	Write
	Exec
)

type color int

const (
	cyan color = iota
	magenta
)
