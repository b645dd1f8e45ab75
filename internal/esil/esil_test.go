package esil

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestBuilderAppend(t *testing.T) {
	var b Builder
	b.Append("pc,")
	b.Appendf("%d,sp,+=,", 2)

	assert.Equal(t, "pc,2,sp,+=,", b.String())
	assert.Equal(t, "pc,2,sp,+=", b.Expression())
}

func TestBuilderExpressionKeepsShortExpression(t *testing.T) {
	var b Builder
	b.Append(",")

	// a single separator is a valid expression and stays untouched
	assert.Equal(t, ",", b.Expression())
}

func TestBuilderSet(t *testing.T) {
	var b Builder
	b.Append("pc,=,")
	b.Set("15,des")

	assert.Equal(t, "15,des", b.Expression())
}

func TestBuilderReset(t *testing.T) {
	var b Builder
	b.Append("pc,")
	b.Reset()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.Expression())
}
