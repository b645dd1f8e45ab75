package avr

// liftFunc lifts one matched instruction: it extracts the operand fields
// from buf and appends the instruction's ESIL fragment to op. Lifters no-op
// on input shorter than their instruction and set fail on malformed
// operands.
type liftFunc func(d *Decoder, op *Instruction, buf []byte, fail *bool)

// Descriptor is one entry of the opcode table: an instruction family
// selected by (word & Mask) == Selector.
type Descriptor struct {
	Name     string
	Mask     uint16
	Selector uint16
	Cycles   int
	Size     int
	Category Category

	lift liftFunc
}

// opcodes is the instruction matching table. Matching is first match wins
// in declaration order: entries with narrower masks come first so that more
// specific encodings take priority, but the contract is purely positional.
// The final sentinel entry never matches and terminates the scan.
//
// The table is filled in init: the skip instruction lifters scan the table
// recursively, which a package-level initializer expression is not allowed
// to depend on.
var opcodes []Descriptor

func init() {
	opcodes = []Descriptor{
		{"break", 0xffff, 0x9698, 1, 2, CategoryTrap, liftBreak},
		{"eicall", 0xffff, 0x9519, 0, 2, CategoryUCall, liftEicall},
		{"eijmp", 0xffff, 0x9419, 0, 2, CategoryUJmp, liftEijmp},
		{"icall", 0xffff, 0x9509, 0, 2, CategoryUCall, liftIcall},
		{"ijmp", 0xffff, 0x9409, 0, 2, CategoryUJmp, liftIjmp},
		{"lpm", 0xffff, 0x95c8, 3, 2, CategoryLoad, liftLpm},
		{"nop", 0xffff, 0x0000, 1, 2, CategoryNop, liftNop},
		{"ret", 0xffff, 0x9508, 4, 2, CategoryRet, liftRet},
		{"reti", 0xffff, 0x9518, 4, 2, CategoryRet, liftReti},
		{"sleep", 0xffff, 0x9588, 1, 2, CategoryNop, liftSleep},
		{"spm", 0xffff, 0x95e8, 1, 2, CategoryTrap, liftSpm},
		{"bclr", 0xff8f, 0x9488, 1, 2, CategoryMov, liftBclr},
		{"bset", 0xff8f, 0x9408, 1, 2, CategoryMov, liftBset},
		{"fmul", 0xff88, 0x0308, 2, 2, CategoryMul, liftFmul},
		{"fmuls", 0xff88, 0x0380, 2, 2, CategoryMul, liftFmuls},
		{"fmulsu", 0xff88, 0x0388, 2, 2, CategoryMul, liftFmulsu},
		{"mulsu", 0xff88, 0x0300, 2, 2, CategoryMul, liftMulsu},
		{"des", 0xff0f, 0x940b, 0, 2, CategoryCrypto, liftDes},
		{"adiw", 0xff00, 0x9600, 2, 2, CategoryAdd, liftAdiw},
		{"sbiw", 0xff00, 0x9700, 2, 2, CategorySub, liftSbiw},
		{"cbi", 0xff00, 0x9800, 1, 2, CategoryIO, liftCbi},
		{"sbi", 0xff00, 0x9a00, 1, 2, CategoryIO, liftSbi},
		{"movw", 0xff00, 0x0100, 1, 2, CategoryMov, liftMovw},
		{"muls", 0xff00, 0x0200, 2, 2, CategoryMul, liftMuls},
		{"asr", 0xfe0f, 0x9405, 1, 2, CategorySar, liftAsr},
		{"com", 0xfe0f, 0x9400, 1, 2, CategoryNot, liftCom},
		{"dec", 0xfe0f, 0x940a, 1, 2, CategorySub, liftDec},
		{"elpm", 0xfe0f, 0x9006, 0, 2, CategoryLoad, liftElpm},
		{"elpm", 0xfe0f, 0x9007, 0, 2, CategoryLoad, liftElpm},
		{"inc", 0xfe0f, 0x9403, 1, 2, CategoryAdd, liftInc},
		{"lac", 0xfe0f, 0x9206, 2, 2, CategoryLoad, liftLac},
		{"las", 0xfe0f, 0x9205, 2, 2, CategoryLoad, liftLas},
		{"lat", 0xfe0f, 0x9207, 2, 2, CategoryLoad, liftLat},
		{"ld", 0xfe0f, 0x900c, 0, 2, CategoryLoad, liftLd},
		{"ld", 0xfe0f, 0x900d, 0, 2, CategoryLoad, liftLd},
		{"ld", 0xfe0f, 0x900e, 0, 2, CategoryLoad, liftLd},
		{"lds", 0xfe0f, 0x9000, 0, 4, CategoryLoad, liftLds},
		{"sts", 0xfe0f, 0x9200, 2, 4, CategoryStore, liftSts},
		{"lpm", 0xfe0f, 0x9004, 3, 2, CategoryLoad, liftLpm},
		{"lpm", 0xfe0f, 0x9005, 3, 2, CategoryLoad, liftLpm},
		{"lsr", 0xfe0f, 0x9406, 1, 2, CategoryShr, liftLsr},
		{"neg", 0xfe0f, 0x9401, 2, 2, CategorySub, liftNeg},
		{"pop", 0xfe0f, 0x900f, 2, 2, CategoryPop, liftPop},
		{"push", 0xfe0f, 0x920f, 0, 2, CategoryPush, liftPush},
		{"ror", 0xfe0f, 0x9407, 1, 2, CategorySar, liftRor},
		{"st", 0xfe0f, 0x920c, 2, 2, CategoryStore, liftSt},
		{"st", 0xfe0f, 0x920d, 0, 2, CategoryStore, liftSt},
		{"st", 0xfe0f, 0x920e, 0, 2, CategoryStore, liftSt},
		{"swap", 0xfe0f, 0x9402, 1, 2, CategorySar, liftSwap},
		{"call", 0xfe0e, 0x940e, 0, 4, CategoryCall, liftCall},
		{"jmp", 0xfe0e, 0x940c, 2, 4, CategoryJmp, liftJmp},
		{"bld", 0xfe08, 0xf800, 1, 2, CategoryMov, liftBld},
		{"bst", 0xfe08, 0xfa00, 1, 2, CategoryMov, liftBst},
		{"sbic", 0xff00, 0x9900, 2, 2, CategoryCJmp, liftSbix},
		{"sbis", 0xff00, 0x9b00, 2, 2, CategoryCJmp, liftSbix},
		{"sbrc", 0xfe08, 0xfc00, 2, 2, CategoryCJmp, liftSbrx},
		{"sbrs", 0xfe08, 0xfe00, 2, 2, CategoryCJmp, liftSbrx},
		{"ldd", 0xfe07, 0x9001, 0, 2, CategoryLoad, liftLdd},
		{"ldd", 0xfe07, 0x9002, 0, 2, CategoryLoad, liftLdd},
		{"std", 0xfe07, 0x9201, 0, 2, CategoryStore, liftStd},
		{"std", 0xfe07, 0x9202, 0, 2, CategoryStore, liftStd},
		{"adc", 0xfc00, 0x1c00, 1, 2, CategoryAdd, liftAdc},
		{"add", 0xfc00, 0x0c00, 1, 2, CategoryAdd, liftAdd},
		{"and", 0xfc00, 0x2000, 1, 2, CategoryAnd, liftAnd},
		{"brbs", 0xfc00, 0xf000, 0, 2, CategoryCJmp, liftBrbx},
		{"brbc", 0xfc00, 0xf400, 0, 2, CategoryCJmp, liftBrbx},
		{"cp", 0xfc00, 0x1400, 1, 2, CategoryCmp, liftCp},
		{"cpc", 0xfc00, 0x0400, 1, 2, CategoryCmp, liftCpc},
		{"cpse", 0xfc00, 0x1000, 0, 2, CategoryCJmp, liftCpse},
		{"eor", 0xfc00, 0x2400, 1, 2, CategoryXor, liftEor},
		{"mov", 0xfc00, 0x2c00, 1, 2, CategoryMov, liftMov},
		{"mul", 0xfc00, 0x9c00, 2, 2, CategoryMul, liftMul},
		{"or", 0xfc00, 0x2800, 1, 2, CategoryOr, liftOr},
		{"sbc", 0xfc00, 0x0800, 1, 2, CategorySub, liftSbc},
		{"sub", 0xfc00, 0x1800, 1, 2, CategorySub, liftSub},
		{"in", 0xf800, 0xb000, 1, 2, CategoryIO, liftIn},
		{"out", 0xf800, 0xb800, 1, 2, CategoryIO, liftOut},
		{"andi", 0xf000, 0x7000, 1, 2, CategoryAnd, liftAndi},
		{"cpi", 0xf000, 0x3000, 1, 2, CategoryCmp, liftCpi},
		{"ldi", 0xf000, 0xe000, 1, 2, CategoryLoad, liftLdi},
		{"ori", 0xf000, 0x6000, 1, 2, CategoryOr, liftOri},
		{"rcall", 0xf000, 0xd000, 0, 2, CategoryCall, liftRcall},
		{"rjmp", 0xf000, 0xc000, 2, 2, CategoryJmp, liftRjmp},
		{"sbci", 0xf000, 0x4000, 1, 2, CategorySub, liftSbci},
		{"subi", 0xf000, 0x5000, 1, 2, CategorySub, liftSubi},
		{"ldd", 0xd200, 0x8000, 0, 2, CategoryLoad, liftLdd},
		{"std", 0xd200, 0x8200, 0, 2, CategoryStore, liftStd},

		// sentinel, never matches
		{Name: "unknown", Cycles: 2, Size: 1, Category: CategoryUnknown},
	}
}
