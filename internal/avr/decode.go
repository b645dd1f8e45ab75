package avr

import (
	"github.com/retroenv/avrlift/internal/esil"
	"github.com/retroenv/avrlift/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// NoAddress marks an unset address field of an instruction.
const NoAddress = ^uint64(0)

// invalidExpression is the ESIL emitted for undecodable words: a trap that
// signals an error if the evaluator ever executes it, instead of silently
// treating garbage as a no-op.
const invalidExpression = "1,$"

// Instruction is the result of decoding a single instruction. A fresh value
// is produced per decode call and fully owned by the caller.
type Instruction struct {
	Address  uint64
	Size     int // instruction size in bytes
	Cycles   int
	Category Category

	Jump uint64 // jump target, NoAddress if none
	Fail uint64 // fallthrough target of conditional flow, NoAddress if none
	Ptr  uint64 // memory operand address, NoAddress if none

	Value    uint64 // immediate operand
	HasValue bool

	MMIOPort uint32 // I/O port number for port access instructions
	IsIO     bool
	IOWrite  bool // direction of the port access

	EndOfBlock bool
	NoOpcode   bool
	Failed     bool // decode failed, canonical invalid result

	// Esil is the semantic expression describing the instruction's effect.
	Esil string

	esil esil.Builder
}

// setValue records an immediate operand.
func (op *Instruction) setValue(v uint64) {
	op.Value = v
	op.HasValue = true
}

// Decoder decodes AVR instructions for one CPU model. It is not safe for
// concurrent use: it shares the registry's single slot model cache.
type Decoder struct {
	logger    *log.Logger
	registry  *Registry
	model     *Model
	bigEndian bool

	eval esil.Evaluator // optional, enables advisory runtime metadata
}

// NewDecoder returns a decoder for the CPU model named in the options.
// Unknown model names fall back to the default model.
func NewDecoder(logger *log.Logger, registry *Registry, opts options.Decoder) *Decoder {
	return &Decoder{
		logger:    logger,
		registry:  registry,
		model:     registry.Lookup(opts.Model),
		bigEndian: opts.BigEndian,
	}
}

// Model returns the decoder's resolved CPU model.
func (d *Decoder) Model() *Model {
	return d.model
}

// SetEvaluator attaches the external expression evaluator. With an
// evaluator attached, decode seeds the memory layout registers, indirect
// jumps and calls carry an advisory target snapshot, and SPM decodes
// against the live SPMCSR value.
func (d *Decoder) SetEvaluator(e esil.Evaluator) {
	d.eval = e
}

// RegisterOps registers the custom ESIL operations and the program counter
// write hook with an evaluator.
func (d *Decoder) RegisterOps(e esil.Evaluator) {
	e.SetOp("des", d.customDes)
	e.SetOp("SPM_PAGE_ERASE", d.customSpmPageErase)
	e.SetOp("SPM_PAGE_FILL", d.customSpmPageFill)
	e.SetOp("SPM_PAGE_WRITE", d.customSpmPageWrite)
	e.SetRegWriteHook(d.hookRegWrite)
}

// Decode decodes the instruction at addr. It returns the decode result and
// the matched opcode descriptor, or nil when no opcode matches or the input
// is malformed; the result then carries the canonical invalid instruction.
// Decode never fails fatally.
func (d *Decoder) Decode(addr uint64, buf []byte) (*Instruction, *Descriptor) {
	op := &Instruction{}
	d.setInvalid(op, addr)

	if d.eval != nil {
		d.seedLayoutRegisters()
	}

	desc := d.analyze(op, addr, d.normalize(buf))
	return op, desc
}

// analyze runs the opcode scan and lifting for one instruction. The skip
// instruction lifters call back into it recursively to learn the size of
// the following instruction.
func (d *Decoder) analyze(op *Instruction, addr uint64, buf []byte) *Descriptor {
	if len(buf) < 2 {
		return nil
	}
	word := d.word(buf)

	for i := range opcodes {
		desc := &opcodes[i]
		if desc.lift == nil {
			break
		}
		if word&desc.Mask != desc.Selector {
			continue
		}

		*op = Instruction{
			Address:  addr,
			Size:     desc.Size,
			Cycles:   desc.Cycles,
			Category: desc.Category,
			Jump:     NoAddress,
			Fail:     NoAddress,
			Ptr:      NoAddress,
		}

		fail := false
		desc.lift(d, op, buf, &fail)
		if fail {
			d.setInvalid(op, addr)
			return nil
		}

		if op.Cycles <= 0 {
			// several conditional instructions cannot know their true
			// cycle count before evaluation, fall back to a coarse default
			op.Cycles = 2
		}
		op.NoOpcode = op.Category == CategoryUnknown
		op.Esil = op.esil.Expression()
		return desc
	}

	d.setInvalid(op, addr)
	return nil
}

// word assembles the 16 bit instruction word from the buffer.
func (d *Decoder) word(buf []byte) uint16 {
	return uint16(buf[1])<<8 | uint16(buf[0])
}

// normalize returns buf with each 16 bit instruction word in little-endian
// byte order, which is what the operand field extraction expects. For
// big-endian input the words are swapped pairwise into a copy.
func (d *Decoder) normalize(buf []byte) []byte {
	if !d.bigEndian {
		return buf
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

// setInvalid fills op with the canonical invalid instruction result.
func (d *Decoder) setInvalid(op *Instruction, addr uint64) {
	*op = Instruction{
		Address:  addr,
		Size:     2, // safe minimum, matches the instruction alignment
		Cycles:   1,
		Category: CategoryUnknown,
		Jump:     NoAddress,
		Fail:     NoAddress,
		Ptr:      NoAddress,
		NoOpcode: true,
		Failed:   true,
		Esil:     invalidExpression,
	}
}

// seedLayoutRegisters writes the memory region base addresses derived from
// the model's constants into the evaluator's synthetic registers. The
// evaluator addresses program memory, I/O, SRAM, EEPROM and the temporary
// flash page as one linear space.
func (d *Decoder) seedLayoutRegisters() {
	offset := uint64(0)
	d.regWrite("_prog", offset)

	offset += uint64(1) << d.model.PC
	d.regWrite("_io", offset)
	d.regWrite("_ram", offset)

	offset += uint64(d.paramValue("sram_start"))
	d.regWrite("_sram", offset)

	offset += uint64(d.paramValue("sram_size"))
	d.regWrite("_eeprom", offset)

	offset += uint64(d.paramValue("eeprom_size"))
	d.regWrite("_page", offset)
}

// paramValue returns the masked value of a parameter constant, 0 on a
// configuration miss.
func (d *Decoder) paramValue(name string) uint32 {
	c, err := d.registry.ConstByName(d.model, KindParameter, name)
	if err != nil {
		return 0
	}
	return c.MaskedValue()
}

func (d *Decoder) regWrite(name string, value uint64) {
	if err := d.eval.RegWrite(name, value); err != nil {
		d.logger.Debug("Register write failed",
			log.String("register", name), log.Err(err))
	}
}

// regRead returns a register snapshot from the evaluator, 0 when no
// evaluator is attached or the read fails.
func (d *Decoder) regRead(name string) uint64 {
	if d.eval == nil {
		return 0
	}
	v, err := d.eval.RegRead(name)
	if err != nil {
		d.logger.Debug("Register read failed",
			log.String("register", name), log.Err(err))
		return 0
	}
	return v
}

// Mask produces a byte mask for the buffer marking which bytes belong to
// the fixed opcode encoding and which are variable operand bytes. It is
// used for fuzzy structural matching of code sequences.
func (d *Decoder) Mask(addr uint64, data []byte) []byte {
	ret := make([]byte, len(data))
	for i := range ret {
		ret[i] = 0xff
	}
	data = d.normalize(data)

	op := &Instruction{}
	for idx := 0; idx+1 < len(data); idx += op.Size {
		desc := d.analyze(op, addr+uint64(idx), data[idx:])
		if op.Size < 1 {
			break
		}
		if desc == nil { // invalid instruction
			continue
		}

		// the trailing operand bytes of 4 byte instructions hold memory
		// offsets or jump targets, never opcode bits
		if op.Size == 4 && idx+3 < len(ret) {
			ret[idx+2] = 0
			ret[idx+3] = 0
		}

		if op.Ptr != NoAddress || op.Jump != NoAddress {
			ret[idx] = byte(desc.Mask)
			ret[idx+1] = byte(desc.Mask >> 8)
		}
	}

	return ret
}
