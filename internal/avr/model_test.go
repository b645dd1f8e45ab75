package avr

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLookupDefaultModel(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))

	m := r.Lookup("does-not-exist")
	assert.Equal(t, "ATmega8", m.Name)

	m = r.Lookup("")
	assert.Equal(t, "ATmega8", m.Name)
}

func TestLookupCaseInsensitive(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))

	m := r.Lookup("atxmega128a4u")
	assert.Equal(t, "ATxmega128a4u", m.Name)

	// repeated lookups hit the single slot cache
	cached := r.Lookup("ATXMEGA128A4U")
	assert.True(t, m == cached)
}

func TestModelInheritance(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))

	m := r.Lookup("ATmega1280")
	assert.Equal(t, 16, m.PC)

	// constants come from ATmega640
	c, err := r.ConstByName(m, KindParameter, "sram_start")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x200), c.MaskedValue())

	c, err = r.ConstByName(m, KindRegister, "spl")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x3d), c.Value)
}

func TestInheritUnknownParent(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))
	r.models = append(r.models, Model{
		Name:    "ATcustom",
		PC:      13,
		Inherit: "ATnothing",
		Consts:  [][]Constant{pagesize5Bits},
	})

	m := r.Lookup("ATcustom")
	assert.True(t, m.inheritFailed)
	assert.True(t, m.inherited == nil)

	// the failure is remembered, repeated resolution does not warn again
	r.resolveInheritance(m)
	assert.True(t, m.inheritFailed)
	assert.True(t, m.inherited == nil)

	// constant lookups behave as if the model had no parent
	_, err := r.ConstByName(m, KindRegister, "spl")
	assert.Error(t, err)

	c, err := r.ConstByName(m, KindParameter, "page_size")
	assert.NoError(t, err)
	assert.Equal(t, uint32(5), c.MaskedValue())
}

func TestConstByNameMiss(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))
	m := r.Lookup("ATmega8")

	_, err := r.ConstByName(m, KindParameter, "no_such_constant")
	assert.Error(t, err)
}

func TestConstByValue(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))
	m := r.Lookup("ATmega8")

	c, ok := r.ConstByValue(m, KindRegister, 0x3f)
	assert.True(t, ok)
	assert.Equal(t, "sreg", c.Name)

	_, ok = r.ConstByValue(m, KindRegister, 0x99)
	assert.False(t, ok)
}

func TestPCSize(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))

	assert.Equal(t, 2, r.Lookup("ATmega8").PCSize())
	assert.Equal(t, 2, r.Lookup("ATmega1280").PCSize())
	assert.Equal(t, 3, r.Lookup("ATmega2560").PCSize())
}

func TestPCMask(t *testing.T) {
	r := NewRegistry(log.NewTestLogger(t))

	assert.Equal(t, uint32(0x1fff), r.Lookup("ATmega8").PCMask())
	assert.Equal(t, uint32(0x1ffff), r.Lookup("ATmega2560").PCMask())
}
