// Package options contains the program options.
package options

// Program options of the lifter tool.
type Program struct {
	Input string // file with the raw flash image to decode

	Model     string // CPU model name, e.g. ATmega8
	Address   uint64 // base address of the image
	BigEndian bool   // instruction words are big-endian

	Debug bool
	Quiet bool
}

// Decoder defines options to control the instruction decoder.
type Decoder struct {
	Model     string // CPU model name, unknown names fall back to the default model
	BigEndian bool
}

// NewDecoder returns decoder options derived from the program options.
func NewDecoder(opts Program) Decoder {
	return Decoder{
		Model:     opts.Model,
		BigEndian: opts.BigEndian,
	}
}
