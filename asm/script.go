package asm

import (
	"errors"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadScript runs a Starlark instruction set script, adding the rows it
// declares to the table. src may be nil to read the named file, or a
// string, []byte or io.Reader holding the script text.
//
// The script declares rows with:
//
//	instruction(mnemonic, operands, opcode, register=None, emit=[], origin=False)
//
// operands is a list of mode names ("a", "c", "rn", "@ri", "@a+base",
// "direct", "#imm"), register is the index of the operand whose register
// number is added to opcode, and each emit item is an operand index for an
// 8-bit field or an (index, 16) tuple for a big-endian 16-bit field.
func (table *Table) LoadScript(filename string, src any) (err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Script: filename, Err: err}
		}
	}()

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"instruction": starlark.NewBuiltin("instruction", table.scriptInstruction),
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)

	return
}

// scriptInstruction implements the instruction() builtin.
func (table *Table) scriptInstruction(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var mnemonic string
	var operands *starlark.List
	var opcode int
	var register starlark.Value = starlark.None
	var emit *starlark.List
	var origin bool

	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"mnemonic", &mnemonic,
		"operands", &operands,
		"opcode", &opcode,
		"register?", &register,
		"emit?", &emit,
		"origin?", &origin,
	)
	if err != nil {
		return nil, err
	}

	enc := Encoding{
		Mnemonic: strings.ToUpper(mnemonic),
		Origin:   origin,
	}

	if opcode < 0 || opcode > 0xff {
		return nil, errors.New(f("%v: opcode %v out of range", b.Name(), opcode))
	}
	enc.Opcode = byte(opcode)

	if operands.Len() > len(enc.Operands) {
		return nil, errors.New(f("%v: too many operands", b.Name()))
	}
	for n := range operands.Len() {
		name, ok := starlark.AsString(operands.Index(n))
		if !ok {
			return nil, errors.New(f("%v: operand %v is not a string", b.Name(), n))
		}
		mode, ok := ParseMode(name)
		if !ok {
			return nil, errors.New(f("%v: unknown mode %q", b.Name(), name))
		}
		enc.Operands[n] = mode
	}

	if register != starlark.None {
		index, err := starlark.AsInt32(register)
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(enc.Operands) {
			return nil, errors.New(f("%v: register %v: %v", b.Name(), index, ErrEncodingInvalid))
		}
		enc.Register = Slot(index + 1)
	}

	if emit != nil {
		for n := range emit.Len() {
			field, err := scriptField(emit.Index(n))
			if err != nil {
				return nil, errors.New(f("%v: emit[%v]: %v", b.Name(), n, err))
			}
			enc.Fields = append(enc.Fields, field)
		}
	}

	err = table.Add(enc)
	if err != nil {
		return nil, errors.New(f("%v %v: %v", enc.Mnemonic, enc.Operands, err))
	}

	return starlark.None, nil
}

// scriptField converts an emit item to a Field.
func scriptField(item starlark.Value) (field Field, err error) {
	field.Width = 8

	switch value := item.(type) {
	case starlark.Int:
		field.Operand, err = starlark.AsInt32(value)
	case starlark.Tuple:
		if value.Len() != 2 {
			err = ErrEncodingInvalid
			return
		}
		field.Operand, err = starlark.AsInt32(value.Index(0))
		if err != nil {
			return
		}
		field.Width, err = starlark.AsInt32(value.Index(1))
	default:
		err = ErrEncodingInvalid
	}

	return
}
