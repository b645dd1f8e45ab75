package avr

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAddressBits(t *testing.T) {
	assert.Equal(t, 16, AddressBits(8))
	assert.Equal(t, -1, AddressBits(16))
	assert.Equal(t, -1, AddressBits(32))
}

func TestHookRegWriteCropsProgramCounter(t *testing.T) {
	d := testDecoder(t, "ATmega2560")

	v := uint64(0xffffffff)
	d.hookRegWrite("pc", &v)
	assert.Equal(t, uint64(0x1ffff), v)

	v = 0xffff
	d.hookRegWrite("pch", &v)
	assert.Equal(t, uint64(0x1ff), v)

	v = 0x1234
	d.hookRegWrite("pcl", &v)
	assert.Equal(t, uint64(0x1234), v)
}

func TestHookRegWriteNarrowProgramCounter(t *testing.T) {
	d := testDecoder(t, "ATmega88") // 8 bit program counter

	v := uint64(0xffff)
	d.hookRegWrite("pch", &v)
	assert.Equal(t, uint64(0), v)
}

func TestHookRegWriteOtherRegisters(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	v := uint64(0x1234)
	d.hookRegWrite("r0", &v)
	assert.Equal(t, uint64(0x1234), v)
}

func TestRegisterProfile(t *testing.T) {
	profile := RegisterProfile()

	for _, reg := range []string{"r0", "r31", "x", "y", "z", "pc", "sp",
		"sreg", "cf", "if", "rampz", "eind", "_prog", "_page", "spmcsr"} {
		assert.True(t, strings.Contains(profile, "\t"+reg+"\t"))
	}
}
