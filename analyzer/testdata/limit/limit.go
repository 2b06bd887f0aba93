package limit

//optionset:generate
type three int // want "type three needs 3 bits, more than 2"

const (
	a three = iota
	b
	c
)

//optionset:generate
type two int

const (
	x two = iota
	y
)
