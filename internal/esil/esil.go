// Package esil contains the primitives for building and hosting ESIL
// expressions, the postfix semantic encoding emitted by the instruction
// lifters and consumed by an external evaluator.
package esil

import (
	"fmt"
	"strings"
)

// Separator joins the tokens of an ESIL expression.
const Separator = ","

// Builder accumulates an ESIL expression fragment by fragment.
// The zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// Appendf appends a formatted fragment to the expression.
func (b *Builder) Appendf(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
}

// Append appends a literal fragment to the expression.
func (b *Builder) Append(s string) {
	b.sb.WriteString(s)
}

// Set replaces the whole expression.
func (b *Builder) Set(s string) {
	b.sb.Reset()
	b.sb.WriteString(s)
}

// Reset clears the expression.
func (b *Builder) Reset() {
	b.sb.Reset()
}

// Len returns the current expression length.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// String returns the expression built so far.
func (b *Builder) String() string {
	return b.sb.String()
}

// Expression returns the built expression with a trailing separator
// stripped. Lifters emit fragments that always end in a separator, the
// final expression must not.
func (b *Builder) Expression() string {
	s := b.sb.String()
	if len(s) > 1 && strings.HasSuffix(s, Separator) {
		return s[:len(s)-1]
	}
	return s
}
