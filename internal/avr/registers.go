package avr

// Architecture facts used by consumers that walk instruction streams.
const (
	InstructionAlignment = 2
	MinInstructionSize   = 2
	MaxInstructionSize   = 4
)

// AddressBits maps the register width in bits to the address bus width, -1
// for unsupported widths.
func AddressBits(bits int) int {
	if bits == 8 {
		return 16
	}
	return -1
}

// hookRegWrite crops values written to the program counter registers to the
// model's program counter width.
func (d *Decoder) hookRegWrite(name string, val *uint64) {
	switch name {
	case "pc":
		*val &= uint64(d.model.PCMask())
	case "pcl":
		if d.model.PC < 8 {
			*val &= 0xff
		}
	case "pch":
		if d.model.PC > 8 {
			*val &= uint64(bitmask(d.model.PC - 8))
		} else {
			*val = 0
		}
	}
}

// RegisterProfile describes the register file for the evaluator: 32 8-bit
// general purpose registers, the 16-bit X/Y/Z pairs overlapping r26..r31,
// the program counter and stack pointer with their byte halves, the SREG
// flag bits, the RAMP and EIND segment registers, the synthetic memory
// layout registers and SPMCSR.
func RegisterProfile() string {
	return `=PC	pcl
=SN	r24
=SP	sp
=BP	y
=A0	r25
=A1	r24
=A2	r23
=A3	r22
=R0	r24
gpr	r0	.8	0	0
gpr	r1	.8	1	0
gpr	r2	.8	2	0
gpr	r3	.8	3	0
gpr	r4	.8	4	0
gpr	r5	.8	5	0
gpr	r6	.8	6	0
gpr	r7	.8	7	0
gpr	r8	.8	8	0
gpr	r9	.8	9	0
gpr	r10	.8	10	0
gpr	r11	.8	11	0
gpr	r12	.8	12	0
gpr	r13	.8	13	0
gpr	r14	.8	14	0
gpr	r15	.8	15	0
gpr	r16	.8	16	0
gpr	r17	.8	17	0
gpr	r18	.8	18	0
gpr	r19	.8	19	0
gpr	r20	.8	20	0
gpr	r21	.8	21	0
gpr	r22	.8	22	0
gpr	r23	.8	23	0
gpr	r24	.8	24	0
gpr	r25	.8	25	0
gpr	r26	.8	26	0
gpr	r27	.8	27	0
gpr	r28	.8	28	0
gpr	r29	.8	29	0
gpr	r30	.8	30	0
gpr	r31	.8	31	0
gpr	x	.16	26	0
gpr	y	.16	28	0
gpr	z	.16	30	0
gpr	pc	.32	32	0
gpr	pcl	.16	32	0
gpr	pch	.16	34	0
gpr	sp	.16	36	0
gpr	spl	.8	36	0
gpr	sph	.8	37	0
gpr	sreg	.8	38	0
gpr	cf	.1	38.0	0
gpr	zf	.1	38.1	0
gpr	nf	.1	38.2	0
gpr	vf	.1	38.3	0
gpr	sf	.1	38.4	0
gpr	hf	.1	38.5	0
gpr	tf	.1	38.6	0
gpr	if	.1	38.7	0
gpr	rampx	.8	39	0
gpr	rampy	.8	40	0
gpr	rampz	.8	41	0
gpr	rampd	.8	42	0
gpr	eind	.8	43	0
gpr	_prog	.32	44	0
gpr	_page	.32	48	0
gpr	_eeprom	.32	52	0
gpr	_ram	.32	56	0
gpr	_io	.32	56	0
gpr	_sram	.32	60	0
gpr	spmcsr	.8	64	0
`
}
