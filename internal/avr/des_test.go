package avr

import (
	"crypto/des"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// loadDesState writes an 8 byte block and key into r0-r15 using the
// register layout of the DES instruction: two little-endian 32 bit words
// each, most significant word first.
func loadDesState(e *fakeEvaluator, block, key []byte) {
	order := []int{3, 2, 1, 0, 7, 6, 5, 4}
	for i, src := range order {
		e.regs[fmt.Sprintf("r%d", i)] = uint64(block[src])
		e.regs[fmt.Sprintf("r%d", i+8)] = uint64(key[src])
	}
}

// desStateBlock reads the data block half of the DES register state back
// into standard byte order.
func desStateBlock(e *fakeEvaluator) []byte {
	order := []int{3, 2, 1, 0, 7, 6, 5, 4}
	block := make([]byte, 8)
	for i, dst := range order {
		block[dst] = byte(e.regs[fmt.Sprintf("r%d", i)])
	}
	return block
}

func TestDesEncryptChain(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9b, 0xbc, 0xdf, 0xf1}
	plain := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	cipher, err := des.NewCipher(key)
	assert.NoError(t, err)
	want := make([]byte, 8)
	cipher.Encrypt(want, plain)

	d := testDecoder(t, "ATxmega128a4u")
	e := newFakeEvaluator()
	loadDesState(e, plain, key)
	e.regs["hf"] = 0

	for round := uint64(0); round < 16; round++ {
		e.push(round)
		assert.NoError(t, d.customDes(e))
	}

	assert.Equal(t, want, desStateBlock(e))

	// the 16 rounds rotate the key halves by a full 28 bits and preserve
	// the parity bits, so r8-r15 hold the original key again
	for i, src := range []int{3, 2, 1, 0, 7, 6, 5, 4} {
		assert.Equal(t, uint64(key[src]), e.regs[fmt.Sprintf("r%d", i+8)])
	}
}

func TestDesDecryptChain(t *testing.T) {
	key := []byte{0x13, 0x34, 0x57, 0x79, 0x9b, 0xbc, 0xdf, 0xf1}
	plain := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	d := testDecoder(t, "ATxmega128a4u")
	e := newFakeEvaluator()
	loadDesState(e, plain, key)

	// encrypt, then decrypt with the half carry flag set; the key state
	// left behind by the encryption chain feeds the decryption chain
	e.regs["hf"] = 0
	for round := uint64(0); round < 16; round++ {
		e.push(round)
		assert.NoError(t, d.customDes(e))
	}
	e.regs["hf"] = 1
	for round := uint64(0); round < 16; round++ {
		e.push(round)
		assert.NoError(t, d.customDes(e))
	}

	assert.Equal(t, plain, desStateBlock(e))
}

func TestDesRoundOutOfRange(t *testing.T) {
	d := testDecoder(t, "ATxmega128a4u")
	e := newFakeEvaluator()

	e.push(16)
	assert.Error(t, d.customDes(e))
}

func TestDesPermutationsInverse(t *testing.T) {
	lo, hi := uint32(0x89abcdef), uint32(0x01234567)
	desPermuteBlock0(&lo, &hi)
	desPermuteBlock1(&lo, &hi)
	assert.Equal(t, uint32(0x89abcdef), lo)
	assert.Equal(t, uint32(0x01234567), hi)
}

func TestDesKeyShiftsFullRotation(t *testing.T) {
	// the 16 round shifts add up to a full 28 bit rotation
	lo, hi := uint32(0x0aabcde), uint32(0x1234567)
	for round := 0; round < 16; round++ {
		desShiftKey(round, false, &lo, &hi)
	}
	assert.Equal(t, uint32(0x0aabcde), lo)
	assert.Equal(t, uint32(0x1234567), hi)
}
