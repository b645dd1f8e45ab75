package avr

import (
	"github.com/retroenv/retrogolib/log"
)

func liftElpm(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ELPM
	// ELPM Rd
	// ELPM Rd, Z+
	if len(buf) < 2 {
		return
	}
	var rd uint32
	if buf[1]&0xfe == 0x90 {
		rd = uint32(buf[1])&1<<4 | uint32(buf[0])>>4&0xf // Rd
	} else {
		rd = 0 // R0
	}
	op.esil.Append("16,rampz,<<,z,+,_prog,+,[1],") // read RAMPZ:Z
	op.esil.Appendf("r%d,=,", rd)                  // Rd = [1]
	if buf[1]&0xfe == 0x90 && buf[0]&0xf == 0x7 {
		op.esil.Append("16,1,z,+,DUP,z,=,>>,1,&,rampz,+=,") // ++(rampz:z)
	}
}

func liftLac(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LAC Z, Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4

	// read memory from RAMPZ:Z
	genericLdSt(op, "ram", 'z', true, 0, 0, false) // 0: Read (RAMPZ:Z)
	op.esil.Appendf("r%d,0xff,^,&,", rd)           // 0: (Z) & ~Rd
	op.esil.Appendf("DUP,r%d,=,", rd)              // Rd = [0]
	genericLdSt(op, "ram", 'z', true, 0, 0, true)  // Store in RAM
}

func liftLas(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LAS Z, Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4

	// read memory from RAMPZ:Z
	genericLdSt(op, "ram", 'z', true, 0, 0, false) // 0: Read (RAMPZ:Z)
	op.esil.Appendf("r%d,|,", rd)                  // 0: (Z) | Rd
	op.esil.Appendf("DUP,r%d,=,", rd)              // Rd = [0]
	genericLdSt(op, "ram", 'z', true, 0, 0, true)  // Store in RAM
}

func liftLat(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LAT Z, Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4

	// read memory from RAMPZ:Z
	genericLdSt(op, "ram", 'z', true, 0, 0, false) // 0: Read (RAMPZ:Z)
	op.esil.Appendf("r%d,^,", rd)                  // 0: (Z) ^ Rd
	op.esil.Appendf("DUP,r%d,=,", rd)              // Rd = [0]
	genericLdSt(op, "ram", 'z', true, 0, 0, true)  // Store in RAM
}

func liftLd(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LD Rd, X
	// LD Rd, X+
	// LD Rd, -X
	if len(buf) < 2 {
		return
	}
	prepostdec := 0
	switch buf[0] & 0xf {
	case 0xe:
		prepostdec = -1 // pre decremented
	case 0xd:
		prepostdec = 1 // post incremented
	}
	// read memory
	genericLdSt(op, "ram", 'x', false, prepostdec, 0, false)
	// load register
	op.esil.Appendf("r%d,=,", uint32(buf[1])&1<<4|uint32(buf[0])>>4&0xf)
	// cycles
	if buf[0]&0x3 == 2 {
		op.Cycles = 3 // LD Rd, -X
	} else {
		op.Cycles = 2 // LD Rd, X and LD Rd, X+
	}
	if isXmega(d.model) && op.Cycles > 1 {
		op.Cycles-- // ATxmega optimizes one cycle
	}
}

func liftLdd(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LD Rd, Y	LD Rd, Z
	// LD Rd, Y+	LD Rd, Z+
	// LD Rd, -Y	LD Rd, -Z
	// LD Rd, Y+q	LD Rd, Z+q
	if len(buf) < 2 {
		return
	}
	// calculate offset (this value only has sense in some opcodes,
	// but we are optimistic and we calculate it always)
	offset := int(uint32(buf[1])&0x20 | uint32(buf[1])&0xc<<1 | uint32(buf[0])&0x7)
	ireg := byte('z')
	if buf[0]&0x8 != 0 {
		ireg = 'y'
	}
	prepostdec := 0
	useOffset := offset
	if buf[1]&0x10 != 0 {
		if buf[0]&0x1 != 0 {
			prepostdec = 1 // post incremented
		} else {
			prepostdec = -1 // pre decremented
		}
		useOffset = 0
	}
	// read memory
	genericLdSt(op, "ram", ireg, false, prepostdec, useOffset, false)
	// load register
	op.esil.Appendf("r%d,=,", uint32(buf[1])&1<<4|uint32(buf[0])>>4&0xf)
	// cycles
	switch {
	case buf[1]&0x10 == 0:
		if offset == 0 {
			op.Cycles = 1 // LDD Rd, Y
		} else {
			op.Cycles = 3 // LDD Rd, Y+q
		}
	case buf[0]&0x3 == 0:
		op.Cycles = 1
	case buf[0]&0x3 == 1:
		op.Cycles = 2 // LD Rd, Y+
	default:
		op.Cycles = 3 // LD Rd, -Y
	}
	if isXmega(d.model) && op.Cycles > 1 {
		op.Cycles-- // ATxmega optimizes one cycle
	}
}

func liftLdi(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LDI Rd, K
	if len(buf) < 2 {
		return
	}
	k := uint32(buf[0])&0xf | uint32(buf[1])&0xf<<4
	rd := uint32(buf[0])>>4&0xf + 16
	op.setValue(uint64(k))
	op.esil.Appendf("0x%x,r%d,=,", k, rd)
}

func liftLds(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LDS Rd, k
	if len(buf) < 4 {
		return
	}
	rd := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	k := int(uint32(buf[3])<<8 | uint32(buf[2]))
	op.Ptr = uint64(k)

	// load value from RAMPD:k
	genericLdSt(op, "ram", 0, true, 0, k, false)
	op.esil.Appendf("r%d,=,", rd)
}

func liftLpm(d *Decoder, op *Instruction, buf []byte, fail *bool) { // LPM
	// LPM Rd, Z
	// LPM Rd, Z+
	if len(buf) < 2 {
		return
	}
	ins := uint16(buf[1])<<8 | uint16(buf[0])
	prepostdec := 0
	if ins&0xfe0f == 0x9005 {
		prepostdec = 1 // post incremented
	}
	// read program memory
	genericLdSt(op, "prog", 'z', true, prepostdec, 0, false)
	// load register
	var rd uint32
	if ins != 0x95c8 { // LPM (r0) keeps rd at 0
		rd = uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	}
	op.esil.Appendf("r%d,=,", rd)
}

func liftPop(d *Decoder, op *Instruction, buf []byte, fail *bool) { // POP Rd
	if len(buf) < 2 {
		return
	}
	rd := uint32(buf[1])&0x1<<4 | uint32(buf[0])>>4&0xf
	genericPop(op, 1)
	op.esil.Appendf("r%d,=,", rd) // store in Rd
}

func liftPush(d *Decoder, op *Instruction, buf []byte, fail *bool) { // PUSH Rr
	if len(buf) < 2 {
		return
	}
	rr := uint32(buf[1])&0x1<<4 | uint32(buf[0])>>4&0xf
	op.esil.Appendf("r%d,", rr) // load Rr
	genericPush(op, 1)          // push it into stack
	// cycles
	if isXmega(d.model) {
		op.Cycles = 1 // ATxmega optimizes one cycle
	} else {
		op.Cycles = 2
	}
}

func liftSpm(d *Decoder, op *Instruction, buf []byte, fail *bool) { // SPM Z+
	// read SPM control register
	spmcsr := d.regRead("spmcsr")

	// clear SPMCSR
	op.esil.Append("0x7c,spmcsr,&=,")

	// decide action depending on the old value of SPMCSR
	switch spmcsr & 0x7f {
	case 0x03: // page erase
		op.esil.Append("16,rampz,<<,z,+,") // push target address
		op.esil.Append("SPM_PAGE_ERASE,")

	case 0x01: // fill temporary buffer
		op.esil.Append("r1,r0,") // push data
		op.esil.Append("z,")     // push target address
		op.esil.Append("SPM_PAGE_FILL,")

	case 0x05: // write page
		op.esil.Append("16,rampz,<<,z,+,") // push target address
		op.esil.Append("SPM_PAGE_WRITE,")

	default:
		d.logger.Warn("unknown spm mode", log.Hex("spmcsr", spmcsr))
	}

	op.Cycles = 1 // datasheets do not publish the cycle count of the
	// different spm operation modes, and it varies between MCU types
}

func liftSt(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ST X, Rr
	// ST X+, Rr
	// ST -X, Rr
	if len(buf) < 2 {
		return
	}
	// load register
	op.esil.Appendf("r%d,", uint32(buf[1])&1<<4|uint32(buf[0])>>4&0xf)
	prepostdec := 0
	switch buf[0] & 0xf {
	case 0xe:
		prepostdec = -1 // pre decremented
	case 0xd:
		prepostdec = 1 // post incremented
	}
	// write in memory
	genericLdSt(op, "ram", 'x', false, prepostdec, 0, true)
}

func liftStd(d *Decoder, op *Instruction, buf []byte, fail *bool) { // ST Y, Rr	ST Z, Rr
	// ST Y+, Rr	ST Z+, Rr
	// ST -Y, Rr	ST -Z, Rr
	// ST Y+q, Rr	ST Z+q, Rr
	if len(buf) < 2 {
		return
	}
	// load register
	op.esil.Appendf("r%d,", uint32(buf[1])&1<<4|uint32(buf[0])>>4&0xf)
	ireg := byte('z')
	if buf[0]&0x8 != 0 {
		ireg = 'y'
	}
	prepostdec := 0
	offset := 0
	if buf[1]&0x10 != 0 {
		if buf[0]&0x1 != 0 {
			prepostdec = 1 // post incremented
		} else {
			prepostdec = -1 // pre decremented
		}
	} else {
		offset = int(uint32(buf[1])&0x20 | uint32(buf[1])&0xc<<1 | uint32(buf[0])&0x7)
	}
	// write in memory
	genericLdSt(op, "ram", ireg, false, prepostdec, offset, true)
}

func liftSts(d *Decoder, op *Instruction, buf []byte, fail *bool) { // STS k, Rr
	if len(buf) < 4 {
		return
	}
	rr := uint32(buf[0])>>4&0xf | uint32(buf[1])&0x1<<4
	k := int(uint32(buf[3])<<8 | uint32(buf[2]))
	op.Ptr = uint64(k)

	op.esil.Appendf("r%d,", rr)
	genericLdSt(op, "ram", 0, true, 0, k, true)

	op.Cycles = 2
}
