package asm

import (
	"iter"
	"slices"
	"strings"
)

// Slot selects an operand slot of an encoding, or none.
type Slot int

const (
	SLOT_NONE = Slot(0)
	SLOT_0    = Slot(1)
	SLOT_1    = Slot(2)
	SLOT_2    = Slot(3)
)

// Index returns the operand index of the slot.
func (slot Slot) Index() int {
	return int(slot) - 1
}

// Field is an operand value appended after the opcode byte.
type Field struct {
	Operand int // Operand index.
	Width   int // 8, or 16 for a big-endian word.
}

// Encoding is a single row of the dispatch table.
type Encoding struct {
	Mnemonic string
	Operands Shape   // LABEL operands match MODE_DIRECT.
	Opcode   byte    // Opcode byte, or base opcode if Register is set.
	Register Slot    // Operand whose register number is added to Opcode.
	Fields   []Field // Operand values following the opcode.
	Origin   bool    // ORG directive; emits no bytes.
}

// Len returns the encoded length in bytes.
func (enc *Encoding) Len() (size uint) {
	if enc.Origin {
		return
	}

	size = 1
	for _, field := range enc.Fields {
		size += uint(field.Width / 8)
	}

	return
}

// validate checks the internal consistency of an encoding.
func (enc *Encoding) validate() (err error) {
	if len(enc.Mnemonic) == 0 || strings.ToUpper(enc.Mnemonic) != enc.Mnemonic {
		return ErrEncodingInvalid
	}

	seen_none := false
	for _, mode := range enc.Operands {
		switch {
		case mode < MODE_NONE || mode >= MODE_LABEL:
			return ErrEncodingInvalid
		case mode == MODE_NONE:
			seen_none = true
		case seen_none:
			// Operands are positional; no gaps.
			return ErrEncodingInvalid
		}
	}

	if enc.Register != SLOT_NONE {
		if enc.Register < SLOT_0 || enc.Register > SLOT_2 {
			return ErrEncodingInvalid
		}
		switch enc.Operands[enc.Register.Index()] {
		case MODE_RN, MODE_INDIRECT:
		default:
			return ErrEncodingInvalid
		}
	}

	for _, field := range enc.Fields {
		if field.Operand < 0 || field.Operand >= len(enc.Operands) {
			return ErrEncodingInvalid
		}
		if field.Width != 8 && field.Width != 16 {
			return ErrEncodingInvalid
		}
		switch enc.Operands[field.Operand] {
		case MODE_DIRECT, MODE_IMMEDIATE:
		default:
			return ErrEncodingInvalid
		}
	}

	if enc.Origin && (enc.Operands != Shape{MODE_DIRECT} || enc.Register != SLOT_NONE || len(enc.Fields) != 0) {
		return ErrEncodingInvalid
	}

	return
}

// Encode emits the bytes for the operands, which must match the shape of
// the encoding. Label operands must already be resolved.
func (enc *Encoding) Encode(ops [3]Operand) (codes []byte, err error) {
	if enc.Origin {
		return
	}

	opcode := uint(enc.Opcode)
	if enc.Register != SLOT_NONE {
		opcode += ops[enc.Register.Index()].Value
	}
	codes = make([]byte, 0, enc.Len())
	codes = append(codes, byte(opcode))

	for _, field := range enc.Fields {
		value := ops[field.Operand].Value
		switch field.Width {
		case 16:
			if value > 0xffff {
				err = ErrOperandRange
				return
			}
			codes = append(codes, byte(value>>8), byte(value))
		default:
			if value > 0xff {
				err = ErrOperandRange
				return
			}
			codes = append(codes, byte(value))
		}
	}

	return
}

// ShapeOf returns the dispatch shape of a set of operands.
func ShapeOf(ops [3]Operand) (shape Shape) {
	for n, op := range ops {
		shape[n] = op.Mode
		if op.Mode == MODE_LABEL {
			shape[n] = MODE_DIRECT
		}
	}
	return
}

// tableKey is the dispatch key of an encoding.
type tableKey struct {
	mnemonic string
	shape    Shape
}

// Table is the instruction dispatch table.
type Table struct {
	encoding map[tableKey]*Encoding
	order    []*Encoding
}

// defaultEncodings is the built in instruction subset.
var defaultEncodings = []Encoding{
	{Mnemonic: "MOV", Operands: Shape{MODE_A, MODE_DIRECT}, Opcode: 0xe5, Fields: []Field{{1, 8}}},
	{Mnemonic: "MOV", Operands: Shape{MODE_A, MODE_IMMEDIATE}, Opcode: 0x74, Fields: []Field{{1, 8}}},
	{Mnemonic: "MOV", Operands: Shape{MODE_RN, MODE_DIRECT}, Opcode: 0xa8, Register: SLOT_0, Fields: []Field{{1, 8}}},
	{Mnemonic: "SETB", Operands: Shape{MODE_C}, Opcode: 0xd3},
	{Mnemonic: "ADD", Operands: Shape{MODE_A, MODE_DIRECT}, Opcode: 0x25, Fields: []Field{{1, 8}}},
	{Mnemonic: "SUBB", Operands: Shape{MODE_A, MODE_DIRECT}, Opcode: 0x95, Fields: []Field{{1, 8}}},
	{Mnemonic: "SUBB", Operands: Shape{MODE_A, MODE_RN}, Opcode: 0x98, Register: SLOT_1},
	{Mnemonic: "ORL", Operands: Shape{MODE_A, MODE_IMMEDIATE}, Opcode: 0x44, Fields: []Field{{1, 8}}},
	{Mnemonic: "ORL", Operands: Shape{MODE_DIRECT, MODE_A}, Opcode: 0x42, Fields: []Field{{0, 8}}},
	{Mnemonic: "ORG", Operands: Shape{MODE_DIRECT}, Origin: true},
}

// NewTable creates a dispatch table from a list of encodings.
func NewTable(encs ...Encoding) (table *Table, err error) {
	table = &Table{
		encoding: make(map[tableKey]*Encoding, len(encs)),
	}

	for _, enc := range encs {
		err = table.Add(enc)
		if err != nil {
			return
		}
	}

	return
}

// DefaultTable returns a new table holding the built in instruction subset.
func DefaultTable() *Table {
	table, err := NewTable(defaultEncodings...)
	if err != nil {
		panic(err)
	}
	return table
}

// Add adds an encoding row to the table.
func (table *Table) Add(enc Encoding) (err error) {
	err = enc.validate()
	if err != nil {
		return
	}

	key := tableKey{mnemonic: enc.Mnemonic, shape: enc.Operands}
	_, ok := table.encoding[key]
	if ok {
		err = ErrEncodingDuplicate
		return
	}

	row := &enc
	row.Fields = slices.Clone(enc.Fields)
	table.encoding[key] = row
	table.order = append(table.order, row)

	return
}

// Lookup finds the encoding for a mnemonic and its classified operands.
func (table *Table) Lookup(mnemonic string, ops [3]Operand) (enc *Encoding, err error) {
	shape := ShapeOf(ops)

	enc, ok := table.encoding[tableKey{mnemonic: mnemonic, shape: shape}]
	if ok {
		return
	}

	known := slices.ContainsFunc(table.order, func(row *Encoding) bool {
		return row.Mnemonic == mnemonic
	})
	err = &ErrInstruction{Mnemonic: mnemonic, Shape: shape, Known: known}

	return
}

// Encodings iterates over the rows of the table in the order they were added.
func (table *Table) Encodings() iter.Seq[*Encoding] {
	return slices.Values(table.order)
}
