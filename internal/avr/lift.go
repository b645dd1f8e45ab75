package avr

import (
	"fmt"
	"strings"
)

// hasPrefixFold reports whether s starts with prefix, case-insensitively.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// isXmega reports whether the model is an ATxmega variant, which has
// different cycle timings for several instructions.
func isXmega(m *Model) bool {
	return hasPrefixFold(m.Name, "ATxmega")
}

// isTiny reports whether the model is an ATtiny variant.
func isTiny(m *Model) bool {
	return hasPrefixFold(m.Name, "ATtiny")
}

// ioDest returns the ESIL destination for an I/O port access: the symbolic
// register name when the port number resolves against the model's
// constants, otherwise an indexed access into the I/O memory window.
func (d *Decoder) ioDest(port uint32, write bool) string {
	if c, ok := d.registry.ConstByValue(d.model, KindRegister, port); ok {
		if write {
			return c.Name + ",="
		}
		return c.Name
	}
	if write {
		return fmt.Sprintf("_io,%d,+,=[1]", port)
	}
	return fmt.Sprintf("_io,%d,+,[1]", port)
}

// genericLdSt appends a load or store through an index register or an
// absolute offset. ireg is the index register name ('x', 'y', 'z') or 0
// for absolute addressing, prepostdec selects pre-decrement (-1) or
// post-increment (1) of the index register.
func genericLdSt(op *Instruction, mem string, ireg byte, useRamp bool, prepostdec, offset int, store bool) {
	if ireg != 0 {
		// preincrement index register
		if prepostdec < 0 {
			op.esil.Appendf("1,%c,-,%c,=,", ireg, ireg)
		}
		// set register index address
		op.esil.Appendf("%c,", ireg)
		// add offset
		if offset != 0 {
			op.esil.Appendf("%d,+,", offset)
		}
	} else {
		op.esil.Appendf("%d,", offset)
	}
	if useRamp {
		r := ireg
		if r == 0 {
			r = 'd'
		}
		op.esil.Appendf("16,ramp%c,<<,+,", r)
	}
	// set memory region base address
	op.esil.Appendf("_%s,+,", mem)
	// read/write a byte
	if store {
		op.esil.Append("=[1],")
	} else {
		op.esil.Append("[1],")
	}
	// postincrement index register
	if ireg != 0 && prepostdec > 0 {
		op.esil.Appendf("1,%c,+,%c,=,", ireg, ireg)
	}
}

// genericPop appends popping sz bytes off the stack.
func genericPop(op *Instruction, sz int) {
	if sz > 1 {
		op.esil.Append("1,sp,+,_ram,+,") // calc SRAM(sp+1)
		op.esil.Appendf("[%d],", sz)     // read value
		op.esil.Appendf("%d,sp,+=,", sz) // sp += item_size
	} else {
		op.esil.Append("1,sp,+=," + // increment stack pointer
			"sp,_ram,+,[1],") // load SRAM[sp]
	}
}

// genericPush appends pushing sz bytes onto the stack.
func genericPush(op *Instruction, sz int) {
	op.esil.Append("sp,_ram,+,") // calc pointer SRAM(sp)
	if sz > 1 {
		op.esil.Appendf("-%d,+,", sz-1) // dec SP by 'sz'
	}
	op.esil.Appendf("=[%d],", sz)     // store value in stack
	op.esil.Appendf("-%d,sp,+=,", sz) // decrement stack pointer
}
