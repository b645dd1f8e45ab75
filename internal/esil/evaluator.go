package esil

// OpFunc implements a custom ESIL operation. It is invoked by the evaluator
// when the operation's name is encountered during expression evaluation and
// operates directly on the evaluator's register and memory state.
type OpFunc func(e Evaluator) error

// RegWriteHook is invoked before every register write and may adjust the
// value in place, for example to mask the program counter to the CPU
// model's width.
type RegWriteHook func(name string, value *uint64)

// Evaluator is the interface of the external expression evaluator that the
// lifters emit expressions for. The core never evaluates expressions itself;
// it only reads evaluator state for advisory decode metadata and registers
// custom operations with it.
type Evaluator interface {
	// Pop removes and returns the numeric top of the evaluation stack.
	Pop() (uint64, error)
	// RegRead returns the current value of a register.
	RegRead(name string) (uint64, error)
	// RegWrite sets the value of a register.
	RegWrite(name string, value uint64) error
	// MemRead reads len(buf) bytes at addr into buf.
	MemRead(addr uint64, buf []byte) error
	// MemWrite writes buf at addr.
	MemWrite(addr uint64, buf []byte) error
	// SetOp registers a custom operation under the given name.
	SetOp(name string, op OpFunc)
	// SetRegWriteHook installs the register write hook.
	SetRegWriteHook(hook RegWriteHook)
}
