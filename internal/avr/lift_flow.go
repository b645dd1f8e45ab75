package avr

func liftBrbx(d *Decoder, op *Instruction, buf []byte, fail *bool) { // BRBC s, k
	// BRBS s, k
	// BRBC/S 0:		BRCC		BRCS
	//			BRSH		BRLO
	// BRBC/S 1:		BREQ		BRNE
	// BRBC/S 2:		BRPL		BRMI
	// BRBC/S 3:		BRVC		BRVS
	// BRBC/S 4:		BRGE		BRLT
	// BRBC/S 5:		BRHC		BRHS
	// BRBC/S 6:		BRTC		BRTS
	// BRBC/S 7:		BRID		BRIE
	if len(buf) < 2 {
		return
	}
	s := uint32(buf[0]) & 0x7
	k := int32(uint32(buf[1])&0x03<<6 | uint32(buf[0])&0xf8>>2)
	if buf[1]&0x2 != 0 { // sign extend the 7 bit offset
		k |= ^int32(0x7f)
	}
	op.Jump = op.Address + uint64(int64(k)+2)
	op.Fail = op.Address + uint64(op.Size)
	op.Cycles = 1 // depends on evaluator state: a taken branch needs 2
	// cycles, a not taken one only 1, which cannot be known at decode time
	op.esil.Appendf("%d,1,<<,sreg,&,", s) // SREG(s)
	if buf[1]&0x4 != 0 {
		op.esil.Append("!,") // BRBC => branch if cleared
	} else {
		op.esil.Append("!,!,") // BRBS => branch if set
	}
	op.esil.Appendf("?{,%d,pc,=,},", op.Jump) // ?true => jmp
}

func liftCall(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CALL k
	if len(buf) < 4 {
		return
	}
	op.Jump = uint64(buf[2])<<1 | uint64(buf[3])<<9 |
		uint64(buf[1]&0x01)<<23 | uint64(buf[0]&0x01)<<17 | uint64(buf[0]&0xf0)<<14
	op.Fail = op.Address + uint64(op.Size)
	if d.model.PC <= 16 {
		op.Cycles = 3
	} else {
		op.Cycles = 4
	}
	if isXmega(d.model) {
		op.Cycles-- // ATxmega optimizes one cycle
	}
	op.esil.Append("pc,") // esil is already pointing to
	// next instruction (@ret)
	genericPush(op, d.model.PCSize())    // push @ret in stack
	op.esil.Appendf("%d,pc,=,", op.Jump) // jump!
}

func liftCpse(d *Decoder, op *Instruction, buf []byte, fail *bool) { // CPSE Rd, Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[0])&0xf | uint32(buf[1])&0x2<<3
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4

	// decode the next instruction only to learn its size, its semantic
	// output is discarded
	next := &Instruction{}
	d.analyze(next, op.Address+uint64(op.Size), buf[op.Size:])
	op.Jump = op.Address + uint64(next.Size) + 2
	op.Fail = op.Address + 2

	op.Cycles = 1 // depends on evaluator state: a taken skip needs 2/3
	// cycles, a not taken one only 1, which cannot be known at decode time
	op.esil.Appendf("r%d,r%d,^,!,", rr, rd)   // Rr == Rd
	op.esil.Appendf("?{,%d,pc,=,},", op.Jump) // ?true => jmp
}

func liftEijmp(d *Decoder, op *Instruction, buf []byte, fail *bool) { // EIJMP
	// the real target address may change during execution, the snapshot of
	// z and eind gives a best effort advisory target
	if d.eval != nil {
		z := d.regRead("z")
		eind := d.regRead("eind")
		op.Jump = (eind<<16 + z) << 1
	}
	op.esil.Append("1,z,16,eind,<<,+,<<,pc,=,") // jump
	op.Cycles = 2
}

func liftEicall(d *Decoder, op *Instruction, buf []byte, fail *bool) { // EICALL
	// push pc in stack
	op.esil.Append("pc,") // esil is already pointing to
	// next instruction (@ret)
	genericPush(op, d.model.PCSize()) // push @ret in stack
	// do a standard EIJMP
	liftEijmp(d, op, buf, fail)
	// fix cycles
	if isXmega(d.model) {
		op.Cycles = 3
	} else {
		op.Cycles = 4
	}
}

func liftIjmp(d *Decoder, op *Instruction, buf []byte, fail *bool) { // IJMP
	// the real target address may change during execution, the snapshot of
	// z gives a best effort advisory target
	if d.eval != nil {
		op.Jump = d.regRead("z") << 1
	}
	op.Cycles = 2
	op.esil.Append("1,z,<<,pc,=,") // jump!
}

func liftIcall(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ICALL
	// push pc in stack
	op.esil.Append("pc,") // esil is already pointing to
	// next instruction (@ret)
	genericPush(op, d.model.PCSize()) // push @ret in stack
	// do a standard IJMP
	liftIjmp(d, op, buf, fail)
	// fix cycles
	if isXmega(d.model) {
		op.Cycles-- // ATxmega optimizes one cycle
	}
}

func liftJmp(d *Decoder, op *Instruction, buf []byte, fail *bool) { // JMP k
	if len(buf) < 4 {
		return
	}
	op.Jump = uint64(buf[2])<<1 | uint64(buf[3])<<9 |
		uint64(buf[1]&0x01)<<23 | uint64(buf[0]&0x01)<<17 | uint64(buf[0]&0xf0)<<14
	op.Cycles = 3
	op.esil.Appendf("%d,pc,=,", op.Jump) // jump!
}

func liftRcall(d *Decoder, op *Instruction, buf []byte, fail *bool) { // RCALL k
	if len(buf) < 2 {
		return
	}
	// target address
	k := int32((uint32(buf[1])&0xf<<8 | uint32(buf[0])) << 1)
	if buf[1]&0x8 != 0 { // sign extend the 12 bit offset
		k |= ^int32(0x1fff)
	}
	op.Jump = op.Address + uint64(int64(k)+2)
	op.Fail = op.Address + uint64(op.Size)
	// esil
	op.esil.Append("pc,") // esil already points to next
	// instruction (@ret)
	genericPush(op, d.model.PCSize())    // push @ret addr
	op.esil.Appendf("%d,pc,=,", op.Jump) // jump!
	// cycles
	if isTiny(d.model) {
		op.Cycles = 4 // ATtiny is always slow
	} else {
		// PC size decides required runtime!
		if d.model.PC <= 16 {
			op.Cycles = 3
		} else {
			op.Cycles = 4
		}
		if isXmega(d.model) {
			op.Cycles-- // ATxmega optimizes one cycle
		}
	}
}

func liftRet(d *Decoder, op *Instruction, buf []byte, fail *bool) { // RET
	op.EndOfBlock = true
	// esil
	genericPop(op, d.model.PCSize())
	op.esil.Append("pc,=,") // jump!
	// cycles
	if d.model.PCSize() > 2 { // if we have a bus bigger than 16 bit
		op.Cycles++ // (i.e. a 22-bit bus), add one extra cycle
	}
}

func liftReti(d *Decoder, op *Instruction, buf []byte, fail *bool) { // RETI
	// first perform a standard 'ret'
	liftRet(d, op, buf, fail)

	// RETI: The I-bit is cleared by hardware after an interrupt
	// has occurred, and is set by the RETI instruction to enable
	// subsequent interrupts
	op.esil.Append("1,if,=,")
}

func liftRjmp(d *Decoder, op *Instruction, buf []byte, fail *bool) { // RJMP k
	k := int32(uint32(buf[1])&0xf<<9 | uint32(buf[0])<<1)
	if buf[1]&0x8 != 0 { // sign extend the 12 bit offset
		k |= ^int32(0x1fff)
	}
	op.Jump = op.Address + uint64(int64(k)+2)
	op.esil.Appendf("%d,pc,=,", op.Jump)
}

func liftSbix(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBIC A, b
	// SBIS A, b
	if len(buf) < 2 {
		return
	}
	a := uint32(buf[0]) >> 3 & 0x1f
	b := uint32(buf[0]) & 0x07

	op.IsIO = true
	op.IOWrite = false
	op.setValue(uint64(a))

	// decode the next instruction only to learn its size, its semantic
	// output is discarded
	next := &Instruction{}
	d.analyze(next, op.Address+uint64(op.Size), buf[op.Size:])
	op.Jump = op.Address + uint64(next.Size) + 2
	op.Fail = op.Address + uint64(op.Size)

	op.Cycles = 1 // depends on evaluator state: a taken skip needs 2/3
	// cycles, a not taken one only 1, which cannot be known at decode time

	ioPort := d.ioDest(a, false)
	op.esil.Appendf("%d,1,<<,%s,&,", b, ioPort) // IO(A,b)
	if buf[1]&0xe == 0xc {
		op.esil.Append("!,") // SBIC => branch if 0
	} else {
		op.esil.Append("!,!,") // SBIS => branch if 1
	}
	op.esil.Appendf("?{,%d,pc,=,},", op.Jump) // ?true => jmp
}

func liftSbrx(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SBRC Rr, b
	// SBRS Rr, b
	if len(buf) < 2 {
		return
	}
	b := uint32(buf[0]) & 0x7
	rr := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x01<<4

	// decode the next instruction only to learn its size, its semantic
	// output is discarded
	next := &Instruction{}
	d.analyze(next, op.Address+uint64(op.Size), buf[op.Size:])
	op.Jump = op.Address + uint64(next.Size) + 2
	op.Fail = op.Address + 2

	op.Cycles = 1 // depends on evaluator state: a taken skip needs 2/3
	// cycles, a not taken one only 1, which cannot be known at decode time
	op.esil.Appendf("%d,1,<<,r%d,&,", b, rr) // Rr(b)
	if buf[1]&0xe == 0xc {
		op.esil.Append("!,") // SBRC => branch if cleared
	} else {
		op.esil.Append("!,!,") // SBRS => branch if set
	}
	op.esil.Appendf("?{,%d,pc,=,},", op.Jump) // ?true => jmp
}
