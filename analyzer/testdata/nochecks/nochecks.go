package nochecks

//optionset:bits 32
//optionset:compound web=png,bmp
type format int // want `compound web of format references unknown option "bmp"`

const (
	png  format = 0
	jpeg format = 2
)
