// Package avr implements instruction decoding and semantic lifting for the
// AVR 8-bit microcontroller family. Each decoded instruction carries an ESIL
// expression describing its effect on machine state, to be executed by an
// external evaluator.
package avr

import (
	"errors"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// ErrNotFound is returned when a constant lookup misses in a model and all
// of its inherited models.
var ErrNotFound = errors.New("constant not found")

// ConstantKind classifies a CPU model constant.
type ConstantKind uint8

// Constant kinds.
const (
	KindNone ConstantKind = iota // matches any kind in lookups
	KindParameter
	KindRegister
)

// Constant is a named value attached to a CPU model, either an I/O register
// address or a sizing parameter.
type Constant struct {
	Name  string
	Kind  ConstantKind
	Value uint32
	Width int // width in bytes, values are masked to it
}

// MaskedValue returns the constant value masked to its declared width.
func (c Constant) MaskedValue() uint32 {
	return bitmask(c.Width*8) & c.Value
}

// bitmask returns a mask covering the low bits of the given width.
func bitmask(bits int) uint32 {
	if bits >= 32 {
		return 0xffffffff
	}
	return ^(^uint32(0) << bits)
}

// Model describes one CPU variant: its program counter width and its
// constant groups. A model can inherit the constants of another model,
// the program counter width is never inherited.
type Model struct {
	Name    string
	PC      int    // program counter width in bits
	Inherit string // name of the model to inherit constants from

	Consts [][]Constant

	inherited     *Model // resolved lazily, written once
	inheritFailed bool
}

// PCMask returns the bit mask of the program counter.
func (m *Model) PCMask() uint32 {
	return bitmask(m.PC)
}

// PCSize returns the byte width of the program counter, which also decides
// the width of return addresses pushed on the stack.
func (m *Model) PCSize() int {
	size := m.PC >> 3
	if m.PC&0x07 != 0 {
		size++
	}
	return size
}

// Register addresses shared by the ATmega8/ATmega88 style I/O layout.
var regCommon = []Constant{
	{"spl", KindRegister, 0x3d, 1},
	{"sph", KindRegister, 0x3e, 1},
	{"sreg", KindRegister, 0x3f, 1},
	{"spmcsr", KindRegister, 0x37, 1},
}

var memsizeCommon = []Constant{
	{"eeprom_size", KindParameter, 512, 4},
	{"io_size", KindParameter, 0x40, 4},
	{"sram_start", KindParameter, 0x60, 4},
	{"sram_size", KindParameter, 1024, 4},
}

var memsizeM640 = []Constant{
	{"eeprom_size", KindParameter, 512, 4},
	{"io_size", KindParameter, 0x1ff, 4},
	{"sram_start", KindParameter, 0x200, 4},
	{"sram_size", KindParameter, 0x2000, 4},
}

var memsizeXmega128a4u = []Constant{
	{"eeprom_size", KindParameter, 0x800, 4},
	{"io_size", KindParameter, 0x1000, 4},
	{"sram_start", KindParameter, 0x800, 4},
	{"sram_size", KindParameter, 0x2000, 4},
}

var pagesize5Bits = []Constant{
	{"page_size", KindParameter, 5, 1},
}

var pagesize7Bits = []Constant{
	{"page_size", KindParameter, 7, 1},
}

// models lists the supported CPU variants. The last entry is the default
// model returned for unknown names - ATmega8 forever!
var models = []Model{
	{Name: "ATmega640", PC: 15, Consts: [][]Constant{regCommon, memsizeM640, pagesize7Bits}},
	{Name: "ATxmega128a4u", PC: 17, Consts: [][]Constant{regCommon, memsizeXmega128a4u, pagesize7Bits}},
	{Name: "ATmega1280", PC: 16, Inherit: "ATmega640"},
	{Name: "ATmega1281", PC: 16, Inherit: "ATmega640"},
	{Name: "ATmega2560", PC: 17, Inherit: "ATmega640"},
	{Name: "ATmega2561", PC: 17, Inherit: "ATmega640"},
	{Name: "ATmega88", PC: 8, Inherit: "ATmega8"},
	{Name: "ATmega8", PC: 13, Consts: [][]Constant{regCommon, memsizeCommon, pagesize5Bits}},
}

// Registry resolves CPU model names and constants. It caches the single
// most recently resolved model, so it is not safe for concurrent use;
// create one registry per decode session.
type Registry struct {
	logger *log.Logger
	models []Model
	last   *Model // single slot cache of the most recent resolution
}

// NewRegistry returns a registry over the built-in model table. The models
// are copied so that lazy inheritance resolution never mutates shared state.
func NewRegistry(logger *log.Logger) *Registry {
	r := &Registry{
		logger: logger,
		models: make([]Model, len(models)),
	}
	copy(r.models, models)
	return r
}

// Lookup resolves a model by case-insensitive name. Unknown names fall back
// to the last entry of the model table. Repeated lookups of the same name
// return the cached model without scanning the table.
func (r *Registry) Lookup(name string) *Model {
	if r.last != nil && strings.EqualFold(name, r.last.Name) {
		return r.last
	}
	r.last = r.resolve(name)
	return r.last
}

// resolve scans the model table and fixes up the inheritance link of the
// found model.
func (r *Registry) resolve(name string) *Model {
	model := &r.models[len(r.models)-1]
	for i := range r.models {
		if strings.EqualFold(name, r.models[i].Name) {
			model = &r.models[i]
			break
		}
	}
	r.resolveInheritance(model)
	return model
}

// resolveInheritance links a model to its inherited model. A parent name
// that is not in the table is a configuration error: it is logged once and
// lookups behave as if the model had no parent.
func (r *Registry) resolveInheritance(model *Model) {
	if model.Inherit == "" || model.inherited != nil || model.inheritFailed {
		return
	}
	for i := range r.models {
		if strings.EqualFold(model.Inherit, r.models[i].Name) {
			model.inherited = &r.models[i]
			return
		}
	}
	model.inheritFailed = true
	r.logger.Warn("Cannot inherit from unknown CPU model",
		log.String("model", model.Name),
		log.String("inherit", model.Inherit))
}

// ConstByName looks up a constant by name, searching the model's own
// constant groups in order and then the inherited model. A miss is a
// configuration error and gets logged.
func (r *Registry) ConstByName(model *Model, kind ConstantKind, name string) (Constant, error) {
	if c, ok := constByName(model, kind, name); ok {
		return c, nil
	}
	r.logger.Warn("CPU constant not found", log.String("name", name))
	return Constant{}, ErrNotFound
}

func constByName(model *Model, kind ConstantKind, name string) (Constant, bool) {
	for _, group := range model.Consts {
		for _, c := range group {
			if c.Name == name && (kind == KindNone || kind == c.Kind) {
				return c, true
			}
		}
	}
	if model.inherited != nil {
		return constByName(model.inherited, kind, name)
	}
	return Constant{}, false
}

// ConstByValue looks up a constant by value, masked to each candidate's
// declared width. Unlike ConstByName a miss is silent: callers fall back to
// a numeric placeholder.
func (r *Registry) ConstByValue(model *Model, kind ConstantKind, value uint32) (Constant, bool) {
	for _, group := range model.Consts {
		for _, c := range group {
			if c.Value == bitmask(c.Width*8)&value && (kind == KindNone || kind == c.Kind) {
				return c, true
			}
		}
	}
	if model.inherited != nil {
		return r.ConstByValue(model.inherited, kind, value)
	}
	return Constant{}, false
}
