package avr

func liftBclr(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BCLR s
	// CLC
	// CLH
	// CLI
	// CLN
	// CLR
	// CLS
	// CLT
	// CLV
	// CLZ
	if len(buf) < 1 {
		return
	}
	s := uint32(buf[0]) >> 4 & 0x7
	op.esil.Appendf("0xff,%d,1,<<,^,sreg,&=,", s)
}

func liftBld(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BLD Rd, b
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[1])&0x01<<4 | uint32(buf[0])>>4&0xf
	b := uint32(buf[0]) & 0x7
	op.esil.Appendf("r%d,%d,1,<<,0xff,^,&,", rd, b) // Rd/b = 0
	op.esil.Appendf("%d,tf,<<,|,r%d,=,", b, rd)     // Rd/b |= T<<b
}

func liftBreak(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BREAK
	op.esil.Append("BREAK")
}

func liftBset(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BSET s
	// SEC
	// SEH
	// SEI
	// SEN
	// SER
	// SES
	// SET
	// SEV
	// SEZ
	if len(buf) < 1 {
		return
	}
	s := uint32(buf[0]) >> 4 & 0x7
	op.esil.Appendf("%d,1,<<,sreg,|=,", s)
}

func liftBst(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BST Rd, b
	if len(buf) < 2 {
		return
	}
	op.esil.Appendf("r%d,%d,1,<<,&,!,!,tf,=,", // tf = Rd/b
		uint32(buf[1])&1<<4|uint32(buf[0])>>4&0xf, // r
		uint32(buf[0])&0x7)                        // b
}

func liftDes(d *Decoder, op *Instruction, buf []byte, fail *bool) { // DES k
	op.Cycles = 1
	round := uint32(buf[0]) >> 4
	op.esil.Appendf("%d,des", round)
}

func liftNop(d *Decoder, op *Instruction, buf []byte, fail *bool) { // NOP
	op.esil.Append(",,")
}

func liftSleep(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SLEEP
	op.esil.Append("BREAK")
}
