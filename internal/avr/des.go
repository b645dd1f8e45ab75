package avr

import (
	"encoding/binary"
	"fmt"

	"github.com/retroenv/avrlift/internal/esil"
)

// The DES instruction executes a single cipher round per invocation and
// keeps all intermediate state in r0-r15: the data block in r0-r7 and the
// key in r8-r15, each as two little-endian 32 bit words. The half carry
// flag selects decryption. The register contents between rounds match what
// the hardware stores, so a sequence of 16 DES instructions produces a
// full DES encryption or decryption.
func (d *Decoder) customDes(e esil.Evaluator) error {
	arg, err := e.Pop()
	if err != nil {
		return fmt.Errorf("popping round number: %w", err)
	}
	if arg > 15 {
		return fmt.Errorf("des round %d out of range", arg)
	}
	round := int(arg)

	decrypt, err := e.RegRead("hf")
	if err != nil {
		return fmt.Errorf("reading half carry flag: %w", err)
	}
	if decrypt != 0 {
		round = 15 - round
	}

	var regs [16]byte
	for i := range regs {
		v, err := e.RegRead(fmt.Sprintf("r%d", i))
		if err != nil {
			return fmt.Errorf("reading r%d: %w", i, err)
		}
		regs[i] = byte(v)
	}

	// r0-r3 hold the high word and r4-r7 the low word of the data block,
	// the key follows the same layout in r8-r15
	bufHi := binary.LittleEndian.Uint32(regs[0:])
	bufLo := binary.LittleEndian.Uint32(regs[4:])
	keyOrigHi := binary.LittleEndian.Uint32(regs[8:])
	keyOrigLo := binary.LittleEndian.Uint32(regs[12:])

	keyLo := keyOrigLo
	keyHi := keyOrigHi
	desPermuteKey(&keyLo, &keyHi)
	if decrypt == 0 {
		desShiftKey(round, false, &keyLo, &keyHi)
	}
	var roundKeyLo, roundKeyHi uint32
	desPC2(&roundKeyLo, &roundKeyHi, keyLo, keyHi)
	if decrypt != 0 {
		desShiftKey(round, true, &keyLo, &keyHi)
	}
	desPermuteBlock0(&bufLo, &bufHi)
	desRound(&bufLo, &bufHi, roundKeyLo, roundKeyHi)
	if arg < 15 {
		desPermuteBlock1(&bufLo, &bufHi)
	} else {
		// the last round skips the half swap
		desPermuteBlock1(&bufHi, &bufLo)
		bufLo, bufHi = bufHi, bufLo
	}
	// un-permute so the next round's key permutation restores the state
	desPermuteKeyInv(&keyLo, &keyHi)
	// restore the parity bits that PC-1 dropped
	keyHi |= keyOrigHi & 0x01010101
	keyLo |= keyOrigLo & 0x01010101

	binary.LittleEndian.PutUint32(regs[0:], bufHi)
	binary.LittleEndian.PutUint32(regs[4:], bufLo)
	binary.LittleEndian.PutUint32(regs[8:], keyHi)
	binary.LittleEndian.PutUint32(regs[12:], keyLo)
	for i := range regs {
		if err := e.RegWrite(fmt.Sprintf("r%d", i), uint64(regs[i])); err != nil {
			return fmt.Errorf("writing r%d: %w", i, err)
		}
	}
	return nil
}

// DES tables from FIPS 46-3. All positions are 1-based counting from the
// most significant bit.

var desPC1 = []byte{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

var desPC2Table = []byte{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var desIP = []byte{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

var desFP = []byte{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

var desE = []byte{
	32, 1, 2, 3, 4, 5,
	4, 5, 6, 7, 8, 9,
	8, 9, 10, 11, 12, 13,
	12, 13, 14, 15, 16, 17,
	16, 17, 18, 19, 20, 21,
	20, 21, 22, 23, 24, 25,
	24, 25, 26, 27, 28, 29,
	28, 29, 30, 31, 32, 1,
}

var desP = []byte{
	16, 7, 20, 21,
	29, 12, 28, 17,
	1, 15, 23, 26,
	5, 18, 31, 10,
	2, 8, 24, 14,
	32, 27, 3, 9,
	19, 13, 30, 6,
	22, 11, 4, 25,
}

var desSBox = [8][64]byte{
	{
		14, 4, 13, 1, 2, 15, 11, 8, 3, 10, 6, 12, 5, 9, 0, 7,
		0, 15, 7, 4, 14, 2, 13, 1, 10, 6, 12, 11, 9, 5, 3, 8,
		4, 1, 14, 8, 13, 6, 2, 11, 15, 12, 9, 7, 3, 10, 5, 0,
		15, 12, 8, 2, 4, 9, 1, 7, 5, 11, 3, 14, 10, 0, 6, 13,
	},
	{
		15, 1, 8, 14, 6, 11, 3, 4, 9, 7, 2, 13, 12, 0, 5, 10,
		3, 13, 4, 7, 15, 2, 8, 14, 12, 0, 1, 10, 6, 9, 11, 5,
		0, 14, 7, 11, 10, 4, 13, 1, 5, 8, 12, 6, 9, 3, 2, 15,
		13, 8, 10, 1, 3, 15, 4, 2, 11, 6, 7, 12, 0, 5, 14, 9,
	},
	{
		10, 0, 9, 14, 6, 3, 15, 5, 1, 13, 12, 7, 11, 4, 2, 8,
		13, 7, 0, 9, 3, 4, 6, 10, 2, 8, 5, 14, 12, 11, 15, 1,
		13, 6, 4, 9, 8, 15, 3, 0, 11, 1, 2, 12, 5, 10, 14, 7,
		1, 10, 13, 0, 6, 9, 8, 7, 4, 15, 14, 3, 11, 5, 2, 12,
	},
	{
		7, 13, 14, 3, 0, 6, 9, 10, 1, 2, 8, 5, 11, 12, 4, 15,
		13, 8, 11, 5, 6, 15, 0, 3, 4, 7, 2, 12, 1, 10, 14, 9,
		10, 6, 9, 0, 12, 11, 7, 13, 15, 1, 3, 14, 5, 2, 8, 4,
		3, 15, 0, 6, 10, 1, 13, 8, 9, 4, 5, 11, 12, 7, 2, 14,
	},
	{
		2, 12, 4, 1, 7, 10, 11, 6, 8, 5, 3, 15, 13, 0, 14, 9,
		14, 11, 2, 12, 4, 7, 13, 1, 5, 0, 15, 10, 3, 9, 8, 6,
		4, 2, 1, 11, 10, 13, 7, 8, 15, 9, 12, 5, 6, 3, 0, 14,
		11, 8, 12, 7, 1, 14, 2, 13, 6, 15, 0, 9, 10, 4, 5, 3,
	},
	{
		12, 1, 10, 15, 9, 2, 6, 8, 0, 13, 3, 4, 14, 7, 5, 11,
		10, 15, 4, 2, 7, 12, 9, 5, 6, 1, 13, 14, 0, 11, 3, 8,
		9, 14, 15, 5, 2, 8, 12, 3, 7, 0, 4, 10, 1, 13, 11, 6,
		4, 3, 2, 12, 9, 5, 15, 10, 11, 14, 1, 7, 6, 0, 8, 13,
	},
	{
		4, 11, 2, 14, 15, 0, 8, 13, 3, 12, 9, 7, 5, 10, 6, 1,
		13, 0, 11, 7, 4, 9, 1, 10, 14, 3, 5, 12, 2, 15, 8, 6,
		1, 4, 11, 13, 12, 3, 7, 14, 10, 15, 6, 8, 0, 5, 9, 2,
		6, 11, 13, 8, 1, 4, 10, 7, 9, 5, 0, 15, 14, 2, 3, 12,
	},
	{
		13, 2, 8, 4, 6, 15, 11, 1, 10, 9, 3, 14, 5, 0, 12, 7,
		1, 15, 13, 8, 10, 3, 7, 4, 12, 5, 6, 11, 0, 14, 9, 2,
		7, 11, 4, 1, 9, 12, 14, 2, 0, 6, 10, 13, 15, 3, 5, 8,
		2, 1, 14, 7, 4, 10, 8, 13, 15, 12, 9, 0, 3, 5, 6, 11,
	},
}

// per round key rotation amounts
var desKeyShifts = [16]uint{1, 1, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1}

// desPermute gathers the bits of v named by table into a new value, MSB
// first. width is the bit width of v.
func desPermute(v uint64, width int, table []byte) uint64 {
	var out uint64
	for _, pos := range table {
		out = out<<1 | v>>(width-int(pos))&1
	}
	return out
}

// desPermuteInv scatters the bits of v back to the positions named by
// table, the inverse of desPermute. Unnamed output bits are zero.
func desPermuteInv(v uint64, width int, table []byte) uint64 {
	var out uint64
	for i, pos := range table {
		bit := v >> (len(table) - 1 - i) & 1
		out |= bit << (width - int(pos))
	}
	return out
}

func rotl28(v uint32, n uint) uint32 {
	return (v<<n | v>>(28-n)) & 0x0fffffff
}

func rotr28(v uint32, n uint) uint32 {
	return (v>>n | v<<(28-n)) & 0x0fffffff
}

// desPermuteKey applies PC-1 to the 64 bit key, leaving the C half in
// keyHi and the D half in keyLo, 28 bits each.
func desPermuteKey(keyLo, keyHi *uint32) {
	key := uint64(*keyHi)<<32 | uint64(*keyLo)
	cd := desPermute(key, 64, desPC1)
	*keyHi = uint32(cd >> 28)
	*keyLo = uint32(cd) & 0x0fffffff
}

// desPermuteKeyInv reverses desPermuteKey. The parity bit positions that
// PC-1 drops come back as zero.
func desPermuteKeyInv(keyLo, keyHi *uint32) {
	cd := uint64(*keyHi)<<28 | uint64(*keyLo)&0x0fffffff
	key := desPermuteInv(cd, 64, desPC1)
	*keyHi = uint32(key >> 32)
	*keyLo = uint32(key)
}

// desShiftKey rotates both key halves by the round's shift amount, right
// instead of left when inverse is set.
func desShiftKey(round int, inverse bool, keyLo, keyHi *uint32) {
	if round < 0 || round > 15 {
		return
	}
	n := desKeyShifts[round]
	if inverse {
		*keyLo = rotr28(*keyLo, n)
		*keyHi = rotr28(*keyHi, n)
	} else {
		*keyLo = rotl28(*keyLo, n)
		*keyHi = rotl28(*keyHi, n)
	}
}

// desPC2 derives the 48 bit round key from the shifted key halves, split
// into two 24 bit words.
func desPC2(roundKeyLo, roundKeyHi *uint32, keyLo, keyHi uint32) {
	cd := uint64(keyHi)<<28 | uint64(keyLo)&0x0fffffff
	rk := desPermute(cd, 56, desPC2Table)
	*roundKeyHi = uint32(rk >> 24)
	*roundKeyLo = uint32(rk) & 0x00ffffff
}

// desPermuteBlock0 applies the initial permutation, leaving the left half
// in bufHi and the right half in bufLo.
func desPermuteBlock0(bufLo, bufHi *uint32) {
	block := uint64(*bufHi)<<32 | uint64(*bufLo)
	block = desPermute(block, 64, desIP)
	*bufHi = uint32(block >> 32)
	*bufLo = uint32(block)
}

// desPermuteBlock1 applies the final permutation, the inverse of
// desPermuteBlock0.
func desPermuteBlock1(bufLo, bufHi *uint32) {
	block := uint64(*bufHi)<<32 | uint64(*bufLo)
	block = desPermute(block, 64, desFP)
	*bufHi = uint32(block >> 32)
	*bufLo = uint32(block)
}

// desFeistel expands the right half, mixes in the round key, and runs the
// result through the S-boxes and the P permutation.
func desFeistel(r uint32, roundKeyLo, roundKeyHi uint32) uint32 {
	x := desPermute(uint64(r), 32, desE)
	x ^= uint64(roundKeyHi)<<24 | uint64(roundKeyLo)&0x00ffffff

	var s uint32
	for i := 0; i < 8; i++ {
		b := x >> (42 - 6*i) & 0x3f
		row := b>>4&0x2 | b&0x1
		col := b >> 1 & 0xf
		s = s<<4 | uint32(desSBox[i][row<<4|col])
	}
	return uint32(desPermute(uint64(s), 32, desP))
}

// desRound performs one Feistel round on the block halves.
func desRound(bufLo, bufHi *uint32, roundKeyLo, roundKeyHi uint32) {
	l, r := *bufHi, *bufLo
	*bufHi = r
	*bufLo = l ^ desFeistel(r, roundKeyLo, roundKeyHi)
}
