package avr

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSpmPageErase(t *testing.T) {
	d := testDecoder(t, "ATmega8") // 32 byte flash pages
	e := newFakeEvaluator()
	e.mem[0x120] = 0xaa
	e.mem[0x13f] = 0xbb

	e.push(0x123)
	assert.NoError(t, d.customSpmPageErase(e))

	// the whole enclosing page is erased
	for i := uint64(0); i < 32; i++ {
		assert.Equal(t, byte(0xff), e.mem[0x120+i])
	}
}

func TestSpmPageFill(t *testing.T) {
	d := testDecoder(t, "ATmega8")
	e := newFakeEvaluator()

	// the expression pushes r1, r0 and the target address in this order
	e.push(0xaa) // r1
	e.push(0xbb) // r0
	e.push(0x07)
	assert.NoError(t, d.customSpmPageFill(e))

	// the address is cropped to the word offset inside the page
	assert.Equal(t, byte(0xbb), e.mem[0x06])
	assert.Equal(t, byte(0xaa), e.mem[0x07])
}

func TestSpmPageFillMissingArguments(t *testing.T) {
	d := testDecoder(t, "ATmega8")
	e := newFakeEvaluator()

	e.push(0x07)
	assert.Error(t, d.customSpmPageFill(e))
}

func TestSpmPageWrite(t *testing.T) {
	d := testDecoder(t, "ATmega8")
	e := newFakeEvaluator()
	e.regs["_page"] = 0x4000
	for i := uint64(0); i < 32; i++ {
		e.mem[0x4000+i] = byte(i)
	}

	e.push(0x234)
	assert.NoError(t, d.customSpmPageWrite(e))

	// the buffer is committed to the enclosing page
	for i := uint64(0); i < 32; i++ {
		assert.Equal(t, byte(i), e.mem[0x220+i])
	}
}
