package avr

import (
	"errors"

	"github.com/retroenv/avrlift/internal/esil"
)

// fakeEvaluator implements esil.Evaluator over plain maps for testing the
// decoder's evaluator integration and the custom operations.
type fakeEvaluator struct {
	regs  map[string]uint64
	mem   map[uint64]byte
	stack []uint64
	ops   map[string]esil.OpFunc
	hook  esil.RegWriteHook
}

func newFakeEvaluator() *fakeEvaluator {
	return &fakeEvaluator{
		regs: map[string]uint64{},
		mem:  map[uint64]byte{},
		ops:  map[string]esil.OpFunc{},
	}
}

func (e *fakeEvaluator) push(v uint64) {
	e.stack = append(e.stack, v)
}

func (e *fakeEvaluator) Pop() (uint64, error) {
	if len(e.stack) == 0 {
		return 0, errors.New("stack empty")
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

func (e *fakeEvaluator) RegRead(name string) (uint64, error) {
	return e.regs[name], nil
}

func (e *fakeEvaluator) RegWrite(name string, value uint64) error {
	if e.hook != nil {
		e.hook(name, &value)
	}
	e.regs[name] = value
	return nil
}

func (e *fakeEvaluator) MemRead(addr uint64, buf []byte) error {
	for i := range buf {
		buf[i] = e.mem[addr+uint64(i)]
	}
	return nil
}

func (e *fakeEvaluator) MemWrite(addr uint64, buf []byte) error {
	for i, b := range buf {
		e.mem[addr+uint64(i)] = b
	}
	return nil
}

func (e *fakeEvaluator) SetOp(name string, op esil.OpFunc) {
	e.ops[name] = op
}

func (e *fakeEvaluator) SetRegWriteHook(hook esil.RegWriteHook) {
	e.hook = hook
}
