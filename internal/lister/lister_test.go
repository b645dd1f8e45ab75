package lister

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/avrlift/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.bin")
	// nop, ldi r21 0x05, ret
	code := []byte{0x00, 0x00, 0x55, 0xe0, 0x08, 0x95}
	assert.NoError(t, os.WriteFile(file, code, 0o644))

	var buf bytes.Buffer
	opts := options.Program{Input: file, Model: "ATmega8"}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), &buf, opts)
	assert.NoError(t, err)

	listing := buf.String()
	assert.True(t, strings.Contains(listing, "nop"))
	assert.True(t, strings.Contains(listing, "0x5,r21,="))
	assert.True(t, strings.Contains(listing, "ret"))
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{Input: "does-not-exist.bin", Model: "ATmega8"}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), &bytes.Buffer{}, opts)
	assert.Error(t, err)
}

func TestProcessFileCancelled(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.bin")
	assert.NoError(t, os.WriteFile(file, []byte{0x00, 0x00}, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options.Program{Input: file, Model: "ATmega8"}
	err := ProcessFile(ctx, log.NewTestLogger(t), &bytes.Buffer{}, opts)
	assert.Error(t, err)
}
