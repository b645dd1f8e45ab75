package avr

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLiftAdd(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// add r0, r1
	ins, desc := d.Decode(0, []byte{0x01, 0x0c})
	assert.Equal(t, "add", desc.Name)
	assert.Equal(t, "r1,r0,+=,$z,zf,:=,3,$c,hf,:=,7,$c,cf,:=,7,$o,vf,:=,0x80,r0,&,!,!,nf,:=", ins.Esil)
}

func TestLiftClear(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// eor r0, r0 is the canonical clr r0
	ins, desc := d.Decode(0, []byte{0x00, 0x24})
	assert.Equal(t, "eor", desc.Name)
	assert.Equal(t, "r0,r0,^=,$z,zf,:=,0,vf,:=,r0,0x80,&,!,!,nf,:=,nf,sf,:=", ins.Esil)
}

func TestLiftMovw(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// movw r3:r2, r1:r0
	ins, desc := d.Decode(0, []byte{0x10, 0x01})
	assert.Equal(t, "movw", desc.Name)
	assert.Equal(t, "r0,r2,=,r1,r3,=", ins.Esil)
}

func TestLiftLdCycles(t *testing.T) {
	ld := []byte{0x0c, 0x90} // ld r0, X

	ins, desc := testDecoder(t, "ATmega8").Decode(0, ld)
	assert.Equal(t, "ld", desc.Name)
	assert.Equal(t, "x,_ram,+,[1],r0,=", ins.Esil)
	assert.Equal(t, 2, ins.Cycles)

	ins, _ = testDecoder(t, "ATxmega128a4u").Decode(0, ld)
	assert.Equal(t, 1, ins.Cycles)
}

func TestLiftLdPostIncrement(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// ld r0, X+
	ins, _ := d.Decode(0, []byte{0x0d, 0x90})
	assert.Equal(t, "x,_ram,+,[1],1,x,+,x,=,r0,=", ins.Esil)
}

func TestLiftLds(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// lds r0, 0x1234
	ins, desc := d.Decode(0, []byte{0x00, 0x90, 0x34, 0x12})
	assert.Equal(t, "lds", desc.Name)
	assert.Equal(t, 4, ins.Size)
	assert.Equal(t, uint64(0x1234), ins.Ptr)
	assert.Equal(t, "4660,16,rampd,<<,+,_ram,+,[1],r0,=", ins.Esil)
}

func TestLiftSts(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// sts 0x1234, r0
	ins, desc := d.Decode(0, []byte{0x00, 0x92, 0x34, 0x12})
	assert.Equal(t, "sts", desc.Name)
	assert.Equal(t, uint64(0x1234), ins.Ptr)
	assert.Equal(t, 2, ins.Cycles)
	assert.Equal(t, "r0,4660,16,rampd,<<,+,_ram,+,=[1]", ins.Esil)
}

func TestLiftSkipIORegister(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// sbic 0x1f, 7 followed by rjmp
	ins, desc := d.Decode(0x100, []byte{0xff, 0x99, 0x00, 0xc0})
	assert.Equal(t, "sbic", desc.Name)
	assert.True(t, ins.IsIO)
	assert.False(t, ins.IOWrite)
	assert.Equal(t, uint64(0x1f), ins.Value)
	assert.Equal(t, uint64(0x104), ins.Jump)
	assert.Equal(t, uint64(0x102), ins.Fail)
	assert.Equal(t, "7,1,<<,_io,31,+,[1],&,!,!,?{,260,pc,=,}", ins.Esil)
}

func TestLiftSbi(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// sbi 0x1f, 0 reads, modifies and writes back the port
	ins, desc := d.Decode(0, []byte{0xf8, 0x9a})
	assert.Equal(t, "sbi", desc.Name)
	assert.True(t, ins.IOWrite)
	assert.Equal(t, uint64(0x1f), ins.Value)
	assert.Equal(t, "0xff,0,1,<<,|,_io,31,+,[1],&,_io,31,+,=[1]", ins.Esil)
}

func TestLiftRjmp(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// rjmp .-2 loops to itself
	ins, desc := d.Decode(0x200, []byte{0xff, 0xcf})
	assert.Equal(t, "rjmp", desc.Name)
	assert.Equal(t, uint64(0x200), ins.Jump)
}

func TestLiftRcall(t *testing.T) {
	d := testDecoder(t, "ATmega8")

	// rcall .+4
	ins, desc := d.Decode(0x100, []byte{0x02, 0xd0})
	assert.Equal(t, "rcall", desc.Name)
	assert.Equal(t, uint64(0x106), ins.Jump)
	assert.Equal(t, uint64(0x102), ins.Fail)
	assert.Equal(t, 3, ins.Cycles)
	assert.Equal(t, "pc,sp,_ram,+,-1,+,=[2],-2,sp,+=,262,pc,=", ins.Esil)
}
