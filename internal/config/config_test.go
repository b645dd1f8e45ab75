package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.True(t, CreateLogger(false, false) != nil)
	assert.True(t, CreateLogger(true, false) != nil)
	assert.True(t, CreateLogger(false, true) != nil)
}
