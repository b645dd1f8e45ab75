package avr

// Category classifies a decoded instruction for control flow and data flow
// analysis purposes.
type Category uint8

// Instruction categories.
const (
	CategoryUnknown Category = iota
	CategoryNop
	CategoryMov
	CategoryAdd
	CategorySub
	CategoryMul
	CategoryAnd
	CategoryOr
	CategoryXor
	CategoryNot
	CategoryShr
	CategorySar
	CategoryCmp
	CategoryJmp
	CategoryUJmp
	CategoryCJmp
	CategoryCall
	CategoryUCall
	CategoryRet
	CategoryPush
	CategoryPop
	CategoryLoad
	CategoryStore
	CategoryIO
	CategoryTrap
	CategoryCrypto
)

var categoryNames = map[Category]string{
	CategoryUnknown: "unknown",
	CategoryNop:     "nop",
	CategoryMov:     "mov",
	CategoryAdd:     "add",
	CategorySub:     "sub",
	CategoryMul:     "mul",
	CategoryAnd:     "and",
	CategoryOr:      "or",
	CategoryXor:     "xor",
	CategoryNot:     "not",
	CategoryShr:     "shr",
	CategorySar:     "sar",
	CategoryCmp:     "cmp",
	CategoryJmp:     "jmp",
	CategoryUJmp:    "ujmp",
	CategoryCJmp:    "cjmp",
	CategoryCall:    "call",
	CategoryUCall:   "ucall",
	CategoryRet:     "ret",
	CategoryPush:    "push",
	CategoryPop:     "pop",
	CategoryLoad:    "load",
	CategoryStore:   "store",
	CategoryIO:      "io",
	CategoryTrap:    "trap",
	CategoryCrypto:  "crypto",
}

// String returns the category name.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}
