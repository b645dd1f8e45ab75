package avr

func liftAdc(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ADC Rd, Rr
	// ROL Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,cf,+,r%d,+=,", rr, rd) // Rd + Rr + C
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$c,hf,:=,")
	op.esil.Append("7,$c,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=", rd)
}

func liftAdd(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ADD Rd, Rr
	// LSL Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,r%d,+=,", rr, rd) // Rd + Rr
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$c,hf,:=,")
	op.esil.Append("7,$c,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=,", rd)
}

func liftAdiw(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ADIW Rd+1:Rd, K
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])&0x30>>3 + 24
	k := uint32(buf[0])&0x0f | uint32(buf[0])>>2&0x30
	op.setValue(uint64(k))
	op.esil.Appendf("7,r%d,>>,", rd+1) // remember previous highest bit
	op.esil.Appendf("8,%d,8,r%d,<<,r%d,|,+,DUP,r%d,=,>>,r%d,=,", k, rd+1, rd, rd, rd+1) // Rd+1_Rd + k
	// FLAGS:
	op.esil.Appendf("DUP,!,7,r%d,>>,&,vf,:=,", rd+1)      // V
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd+1)        // N
	op.esil.Appendf("8,r%d,<<,r%d,|,!,zf,:=,", rd+1, rd)  // Z
	op.esil.Appendf("7,r%d,>>,!,&,cf,:=,", rd+1)          // C
	op.esil.Append("vf,nf,^,sf,:=")                       // S
}

func liftAnd(d *Decoder, op *Instruction, buf []byte, fail *bool) { // AND Rd, Rr
	// TST Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,r%d,&=,$z,zf,:=,r%d,0x80,&,!,!,nf,:=,0,vf,:=,nf,sf,:=,", rr, rd, rd)
}

func liftAndi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ANDI Rd, K
	// CBR Rd, K (= ANDI Rd, 1-K)
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf + 16
	k := uint32(buf[1])&0x0f<<4 | uint32(buf[0])&0x0f
	op.setValue(uint64(k))
	op.esil.Appendf("%d,r%d,&=,$z,zf,:=,r%d,0x80,&,!,!,nf,:=,0,vf,:=,nf,sf,:=,", k, rd, rd)
}

func liftAsr(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ASR Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	op.esil.Appendf("r%d,0x1,&,cf,:=,0x1,r%d,>>,r%d,0x80,&,|,", rd, rd, rd)
	// 0: R=(Rd >> 1) | Rd7
	op.esil.Append("$z,zf,:=,")                     // Z
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd)    // N
	op.esil.Append("nf,cf,^,vf,:=,")                // V
	op.esil.Append("nf,vf,^,sf,:=,")                // S
}

func liftCom(d *Decoder, op *Instruction, buf []byte, fail *bool) { // COM Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0x0f | uint32(buf[1])&1<<4
	op.esil.Appendf("r%d,0xff,-,r%d,=,$z,zf,:=,0,cf,:=,0,vf,:=,r%d,0x80,&,!,!,nf,:=,vf,nf,^,sf,:=", rd, rd, rd)
	// Rd = 0xFF-Rd
}

func liftCp(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CP Rd, Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[0])&0x0f | uint32(buf[1])<<3&0x10
	rd := uint32(buf[0])>>4&0x0f | uint32(buf[1])<<4&0x10
	op.esil.Appendf("r%d,r%d,-,0x80,&,!,!,nf,:=,", rr, rd)
	op.esil.Appendf("r%d,r%d,==,", rr, rd)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftCpc(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CPC Rd, Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[0])&0x0f | uint32(buf[1])<<3&0x10
	rd := uint32(buf[0])>>4&0x0f | uint32(buf[1])<<4&0x10
	op.esil.Appendf("cf,r%d,+,DUP,r%d,-,0x80,&,!,!,nf,:=,", rr, rd) // Rd - Rr - C
	op.esil.Appendf("r%d,==,", rd)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftCpi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CPI Rd, K
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf + 16
	k := uint32(buf[0])&0xf | uint32(buf[1])&0xf<<4
	op.esil.Appendf("%d,r%d,-,0x80,&,!,!,nf,:=,", k, rd) // Rd - k
	op.esil.Appendf("%d,r%d,==,", k, rd)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftDec(d *Decoder, op *Instruction, buf []byte, fail *bool) { // DEC Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	op.esil.Appendf("0x1,r%d,-=,", rd) // Rd--
	// FLAGS:
	op.esil.Append("7,$o,vf,:=,")                // V
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd) // N
	op.esil.Append("$z,zf,:=,")                  // Z
	op.esil.Append("vf,nf,^,sf,:=,")             // S
}

func liftEor(d *Decoder, op *Instruction, buf []byte, fail *bool) { // EOR Rd, Rr
	// CLR Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,r%d,^=,$z,zf,:=,0,vf,:=,r%d,0x80,&,!,!,nf,:=,nf,sf,:=", rr, rd, rd)
	// 0: Rd ^= Rr
}

func liftFmul(d *Decoder, op *Instruction, buf []byte, fail *bool) { // FMUL Rd, Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])>>4&0x7 + 16
	rr := uint32(buf[0])&0x7 + 16
	op.esil.Append("8,")
	op.esil.Appendf("0xffff,1,r%d,r%d,*,<<,&,DUP,r0,=,>>,r1,=,", rr, rd) // 0: r1_r0 = (rd * rr) << 1
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,")               // C = R/15
	op.esil.Append("!,zf,:=")                                            // Z = !R
}

func liftFmuls(d *Decoder, op *Instruction, buf []byte, fail *bool) { // FMULS Rd, Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])>>4&0x7 + 16
	rr := uint32(buf[0])&0x7 + 16
	op.esil.Append("8,1,")
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rd) // sign extension Rd
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rr) // sign extension Rr
	op.esil.Append("*,<<,DUP,r0,=,>>,r1,=,")             // 0: (Rd*Rr)<<1
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,") // C = R/16
	op.esil.Append("!,zf,:=")                              // Z = !R
}

func liftFmulsu(d *Decoder, op *Instruction, buf []byte, fail *bool) { // FMULSU Rd, Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])>>4&0x7 + 16
	rr := uint32(buf[0])&0x7 + 16
	op.esil.Append("8,1,")
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rd) // sign extension Rd
	op.esil.Appendf("r%d,*,<<,DUP,r0,=,>>,r1,=,", rr)    // 0: (Rd*Rr)<<1
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,") // C = R/16
	op.esil.Append("!,zf,:=")                              // Z = !R
}

func liftInc(d *Decoder, op *Instruction, buf []byte, fail *bool) { // INC Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	op.esil.Appendf("1,r%d,+=,", rd) // Rd++
	// FLAGS:
	op.esil.Append("7,$o,vf,:=,")                // V
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd) // N
	op.esil.Append("$z,zf,:=,")                  // Z
	op.esil.Append("vf,nf,^,sf,:=,")             // S
}

func liftLsr(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LSR Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	op.esil.Appendf("r%d,0x1,&,cf,:=,", rd) // C = Rd0
	op.esil.Appendf("1,r%d,>>=,", rd)       // 0: R=(Rd >> 1)
	op.esil.Append("$z,zf,:=,")             // Z
	op.esil.Append("0,nf,:=,")              // N
	op.esil.Append("cf,vf,:=,")             // V
	op.esil.Append("cf,sf,:=,")             // S
}

func liftMov(d *Decoder, op *Instruction, buf []byte, fail *bool) { // MOV Rd, Rr
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[1])<<4&0x10 | uint32(buf[0])>>4&0x0f
	rr := uint32(buf[1])<<3&0x10 | uint32(buf[0])&0x0f
	op.esil.Appendf("r%d,r%d,=,", rr, rd)
}

func liftMovw(d *Decoder, op *Instruction, buf []byte, fail *bool) { // MOVW Rd+1:Rd, Rr+1:Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0]) & 0xf0 >> 3
	rr := uint32(buf[0]) & 0x0f << 1
	op.esil.Appendf("r%d,r%d,=,r%d,r%d,=,", rr, rd, rr+1, rd+1)
}

func liftMul(d *Decoder, op *Instruction, buf []byte, fail *bool) { // MUL Rd, Rr
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[1])<<4&0x10 | uint32(buf[0])>>4&0x0f
	rr := uint32(buf[1])<<3&0x10 | uint32(buf[0])&0x0f
	op.esil.Appendf("8,r%d,r%d,*,DUP,r0,=,>>,r1,=,", rr, rd) // 0: r1_r0 = rd * rr
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,")   // C = R/15
	op.esil.Append("!,zf,:=")                                // Z = !R
}

func liftMuls(d *Decoder, op *Instruction, buf []byte, fail *bool) { // MULS Rd, Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])>>4&0x0f + 16
	rr := uint32(buf[0])&0x0f + 16
	op.esil.Append("8,")
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rd) // sign extension Rd
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rr) // sign extension Rr
	op.esil.Append("*,DUP,r0,=,>>,r1,=,")                // 0: (Rd*Rr)
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,") // C = R/16
	op.esil.Append("!,zf,:=")                              // Z = !R
}

func liftMulsu(d *Decoder, op *Instruction, buf []byte, fail *bool) { // MULSU Rd, Rr
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])>>4&0x07 + 16
	rr := uint32(buf[0])&0x07 + 16
	op.esil.Append("8,")
	op.esil.Appendf("r%d,DUP,0x80,&,?{,0xff00,|,},", rd) // sign extension Rd
	op.esil.Appendf("r%d,*,DUP,r0,=,>>,r1,=,", rr)       // 0: (Rd*Rr)
	op.esil.Append("8,r1,<<,r0,|,DUP,0x8000,&,!,!,cf,:=,") // C = R/16
	op.esil.Append("!,zf,:=")                              // Z = !R
}

func liftNeg(d *Decoder, op *Instruction, buf []byte, fail *bool) { // NEG Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	op.esil.Appendf("r%d,0x00,-,0xff,&,", rd)                // 0: (0-Rd)
	op.esil.Appendf("DUP,r%d,0xff,^,|,0x08,&,!,!,hf,=,", rd) // H
	op.esil.Append("DUP,0x80,-,!,vf,=,")                     // V
	op.esil.Append("DUP,0x80,&,!,!,nf,=,")                   // N
	op.esil.Append("DUP,!,zf,=,")                            // Z
	op.esil.Append("DUP,!,!,cf,=,")                          // C
	op.esil.Append("vf,nf,^,sf,=,")                          // S
	op.esil.Appendf("r%d,=,", rd)                            // Rd = result
}

func liftOr(d *Decoder, op *Instruction, buf []byte, fail *bool) { // OR Rd, Rr
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,r%d,|=,", rr, rd)  // 0: (Rd | Rr)
	op.esil.Append("$z,zf,:=,")             // Z
	op.esil.Appendf("r%d,&,!,!,nf,:=,", rd) // N
	op.esil.Append("0,vf,:=,")              // V
	op.esil.Append("nf,sf,:=")              // S
}

func liftOri(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ORI Rd, K
	// SBR Rd, K
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf + 16
	k := uint32(buf[0])&0xf | uint32(buf[1])&0xf<<4
	op.setValue(uint64(k))
	op.esil.Appendf("%d,r%d,|=,", k, rd)         // 0: (Rd | k)
	op.esil.Append("$z,zf,:=,")                  // Z
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd) // N
	op.esil.Append("0,vf,:=,")                   // V
	op.esil.Append("nf,sf,:=")                   // S
}

func liftRor(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ROR Rd
	rd := uint32(buf[0])>>4&0x0f | uint32(buf[1])<<4&0x10
	op.esil.Append("cf,nf,:=,")                              // N
	op.esil.Appendf("r%d,0x1,&,", rd)                        // C
	op.esil.Appendf("1,r%d,>>,7,cf,<<,|,r%d,=,cf,:=,", rd, rd) // 0: (Rd>>1) | (cf<<7)
	op.esil.Append("$z,zf,:=,")                              // Z
	op.esil.Append("nf,cf,^,vf,:=,")                         // V
	op.esil.Append("vf,nf,^,sf,:=")                          // S
}

func liftSbc(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBC Rd, Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[0])&0x0f | uint32(buf[1])&0x2<<3
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	op.esil.Appendf("cf,r%d,+,r%d,-=,", rr, rd) // 0: (Rd-Rr-C)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=,", rd)
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftSbci(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBCI Rd, k
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf + 16
	k := uint32(buf[1])&0xf<<4 | uint32(buf[0])&0xf
	op.setValue(uint64(k))
	op.esil.Appendf("cf,%d,+,r%d,-=,", k, rd) // 0: (Rd-k-C)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=,", rd)
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftSub(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SUB Rd, Rr
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&1<<4
	rr := uint32(buf[0])&0xf | uint32(buf[1])&2<<3
	op.esil.Appendf("r%d,r%d,-=,", rr, rd) // 0: (Rd-Rr)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=,", rd)
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftSubi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SUBI Rd, k
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf + 16
	k := uint32(buf[1])&0xf<<4 | uint32(buf[0])&0xf
	op.setValue(uint64(k))
	op.esil.Appendf("%d,r%d,-=,", k, rd) // 0: (Rd-k)
	op.esil.Append("$z,zf,:=,")
	op.esil.Append("3,$b,hf,:=,")
	op.esil.Append("8,$b,cf,:=,")
	op.esil.Append("7,$o,vf,:=,")
	op.esil.Appendf("0x80,r%d,&,!,!,nf,:=,", rd)
	op.esil.Append("vf,nf,^,sf,:=")
}

func liftSbiw(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBIW Rd+1:Rd, K
	if len(buf) < 1 {
		return
	}
	rd := uint32(buf[0])&0x30>>3 + 24
	k := uint32(buf[0])&0xf | uint32(buf[0])>>2&0x30
	op.setValue(uint64(k))
	op.esil.Appendf("7,r%d,>>,", rd+1) // remember previous highest bit
	op.esil.Appendf("8,%d,8,r%d,<<,r%d,|,-,DUP,r%d,=,>>,r%d,=,", k, rd+1, rd, rd, rd+1) // 0(Rd+1_Rd - k)
	op.esil.Append("$z,zf,:=,")
	op.esil.Appendf("DUP,!,7,r%d,>>,&,cf,:=,", rd+1) // C
	op.esil.Appendf("r%d,0x80,&,!,!,nf,:=,", rd+1)   // N
	op.esil.Appendf("7,r%d,>>,!,&,vf,:=,", rd+1)     // V
	op.esil.Append("vf,nf,^,sf,:=")                  // S
}

func liftSwap(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SWAP Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[1])&0x1<<4 | uint32(buf[0])>>4&0xf
	op.esil.Appendf("4,r%d,>>,0x0f,&,", rd) // (Rd >> 4) & 0xf
	op.esil.Appendf("4,r%d,<<,0xf0,&,", rd) // (Rd << 4) & 0xf0
	op.esil.Append("|,")                    // S[0] | S[1]
	op.esil.Appendf("r%d,=,", rd)           // Rd = result
}
