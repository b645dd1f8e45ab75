package avr

func liftCbi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CBI A, b
	if len(buf) < 1 {
		return
	}
	a := uint32(buf[0]) >> 3 & 0x1f
	b := uint32(buf[0]) & 0x07

	op.IsIO = true
	op.IOWrite = true
	op.setValue(uint64(a))

	// read port a and clear bit b
	op.esil.Appendf("0xff,%d,1,<<,^,%s,&,", b, d.ioDest(a, false))

	// write result to port a
	op.esil.Appendf("%s,", d.ioDest(a, true))
}

func liftIn(d *Decoder, op *Instruction, buf []byte, fail *bool) { // IN Rd, A
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0x0f | uint32(buf[1])&0x01<<4
	a := uint32(buf[0])&0x0f | uint32(buf[1])&0x6<<3

	op.IsIO = true
	op.IOWrite = false
	op.setValue(uint64(a))
	op.MMIOPort = a

	op.esil.Appendf("%s,r%d,=,", d.ioDest(a, false), rd)
}

func liftOut(d *Decoder, op *Instruction, buf []byte, fail *bool) { // OUT A, Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[0])>>4&0x0f | uint32(buf[1])&0x01<<4
	a := uint32(buf[0])&0x0f | uint32(buf[1])&0x6<<3

	op.IsIO = true
	op.IOWrite = true
	op.setValue(uint64(a))
	op.MMIOPort = a

	op.esil.Appendf("r%d,%s,", rr, d.ioDest(a, true))
}

func liftSbi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBI A, b
	if len(buf) < 1 {
		return
	}
	a := uint32(buf[0]) >> 3 & 0x1f
	b := uint32(buf[0]) & 0x07

	op.IsIO = true
	op.IOWrite = true
	op.setValue(uint64(a))

	// read port a and set bit b
	op.esil.Appendf("0xff,%d,1,<<,|,%s,&,", b, d.ioDest(a, false))

	// write result to port a
	op.esil.Appendf("%s,", d.ioDest(a, true))
}
