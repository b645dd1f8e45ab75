package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"avrlift", "-m", "ATmega2560", "-a", "0x100", "-be", "test.bin"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "test.bin", opts.Input)
	assert.Equal(t, "ATmega2560", opts.Model)
	assert.Equal(t, uint64(0x100), opts.Address)
	assert.True(t, opts.BigEndian)
}

func TestParseFlagsDefaults(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"avrlift", "test.bin"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "ATmega8", opts.Model)
	assert.Equal(t, uint64(0), opts.Address)
	assert.False(t, opts.BigEndian)
	assert.False(t, opts.Debug)
}

func TestParseFlagsMissingInput(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"avrlift"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsInvalidAddress(t *testing.T) {
	restore := os.Args
	defer func() { os.Args = restore }()
	os.Args = []string{"avrlift", "-a", "nope", "test.bin"}

	_, err := ParseFlags()
	assert.Error(t, err)
}
