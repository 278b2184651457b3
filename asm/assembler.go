// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"
	"strings"
)

// OriginMode selects how the ORG directive operand is interpreted.
type OriginMode int

//go:generate go tool stringer -linecomment -type=OriginMode
const (
	ORIGIN_GAP      = OriginMode(0) // gap
	ORIGIN_ABSOLUTE = OriginMode(1) // absolute
)

// ParseOriginMode returns the origin mode with the given name.
func ParseOriginMode(name string) (mode OriginMode, err error) {
	for _, mode = range []OriginMode{ORIGIN_GAP, ORIGIN_ABSOLUTE} {
		if strings.EqualFold(mode.String(), name) {
			return
		}
	}
	mode = ORIGIN_GAP
	err = ErrOriginMode
	return
}

// Assembler is a two pass assembler for the 8051 instruction subset.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Origin  OriginMode // ORG operand interpretation; the gap between instructions by default.
	Table   *Table     // Dispatch table; DefaultTable() if nil.
}

// table returns the dispatch table in use.
func (asm *Assembler) table() *Table {
	if asm.Table == nil {
		asm.Table = DefaultTable()
	}
	return asm.Table
}

// decode splits and classifies a line, and selects its encoding.
// enc is nil for a label definition.
func (asm *Assembler) decode(line Line) (stmt Statement, ops [3]Operand, enc *Encoding, err error) {
	stmt, err = Split(line.Text)
	if err != nil || stmt.IsLabel() {
		return
	}

	for n, word := range stmt.Operands {
		ops[n], err = Classify(word)
		if err != nil {
			return
		}
	}

	enc, err = asm.table().Lookup(stmt.Mnemonic, ops)
	if err != nil {
		return
	}

	// The origin must be known in pass one.
	if enc.Origin && ops[0].Mode != MODE_DIRECT {
		err = &ErrInstruction{Mnemonic: stmt.Mnemonic, Shape: Shape{ops[0].Mode}, Known: true}
	}

	return
}

// ADDRESS_LIMIT is the size of the code address space.
const ADDRESS_LIMIT = 0x10000

// origin applies an ORG directive to the state.
func (asm *Assembler) origin(state *State, value uint) (err error) {
	var pad uint

	switch asm.Origin {
	case ORIGIN_ABSOLUTE:
		if value < state.Address {
			err = ErrOriginBackwards
			return
		}
		pad = value - state.Address
	default:
		pad = value
	}

	if state.Address+pad >= ADDRESS_LIMIT {
		err = ErrOperandRange
		return
	}

	state.origin(pad)

	return
}

// Pass1 assigns an address to every label in lines.
func (asm *Assembler) Pass1(state *State, lines []Line) (err error) {
	var line Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	state.rewind()

	for _, line = range lines {
		var stmt Statement
		var ops [3]Operand
		var enc *Encoding
		stmt, ops, enc, err = asm.decode(line)
		if err != nil {
			return
		}

		switch {
		case stmt.IsLabel():
			err = state.Symbols.Define(stmt.Label, state.Address)
		case enc.Origin:
			err = asm.origin(state, ops[0].Value)
		default:
			state.advance(enc.Len())
		}
		if err != nil {
			return
		}
	}

	return
}

// Pass2 emits the instructions of lines, resolving labels from the
// symbol table built by Pass1.
func (asm *Assembler) Pass2(state *State, lines []Line) (err error) {
	var line Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	state.rewind()

	for _, line = range lines {
		if asm.Verbose {
			log.Printf("%v: %v\n", line.LineNo, line.Text)
		}

		var stmt Statement
		var ops [3]Operand
		var enc *Encoding
		stmt, ops, enc, err = asm.decode(line)
		if err != nil {
			return
		}

		if stmt.IsLabel() {
			continue
		}

		if enc.Origin {
			err = asm.origin(state, ops[0].Value)
			if err != nil {
				return
			}
			continue
		}

		for n := range ops {
			if ops[n].Mode != MODE_LABEL {
				continue
			}
			ops[n].Value, err = state.Symbols.Lookup(ops[n].Name)
			if err != nil {
				return
			}
		}

		var codes []byte
		codes, err = enc.Encode(ops)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v %v => % X\n", stmt.Mnemonic, ops, codes)
		}

		state.Instructions = append(state.Instructions, Instruction{
			LineNo:  line.LineNo,
			Line:    line.Text,
			Address: state.Address,
			Offset:  state.Offset,
			Bytes:   codes,
		})
		state.advance(uint(len(codes)))
	}

	return
}

// Assemble runs both passes over a fully read source.
func (asm *Assembler) Assemble(lines []Line) (prog *Program, err error) {
	state := NewState()

	err = asm.Pass1(state, lines)
	if err != nil {
		return
	}

	err = asm.Pass2(state, lines)
	if err != nil {
		return
	}

	if asm.Verbose {
		for label, addr := range state.Symbols.Sorted() {
			log.Printf("%v = %v\n", label, FormatLiteral(addr, BASE_HEX))
		}
	}

	prog = &Program{
		Instructions: slices.Clone(state.Instructions),
		Symbols:      state.Symbols,
	}

	return
}

// Parse reads and assembles a source.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}
