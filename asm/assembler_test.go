package asm

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, asm *Assembler, program ...string) *Program {
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))
	assert.Equal(0, len(prog.Symbols))
	assert.Equal([]byte(nil), prog.Binary())
}

func TestAssemblerSequence(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog := assemble(t, asm,
		"MOV A, 30h",
		"SETB C",
		"ADD A, 10",
	)

	expected := []Instruction{
		{1, "MOV A, 30h", 0, 0, []byte{0xe5, 0x30}},
		{2, "SETB C", 2, 0, []byte{0xd3}},
		{3, "ADD A, 10", 3, 0, []byte{0x25, 0x0a}},
	}

	assert.Equal(expected, prog.Instructions)
	assert.Equal([]byte{0xe5, 0x30, 0xd3, 0x25, 0x0a}, prog.Binary())
}

func TestAssemblerSingle(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		line  string
		codes []byte
	}){
		{"SUBB A, R3", []byte{0x9b}},
		{"MOV A, #5", []byte{0x74, 0x05}},
		{"MOV R1, 7Fh", []byte{0xa9, 0x7f}},
		{"ORL A, #11110000b", []byte{0x44, 0xf0}},
		{"ORL 20h, A ; set bits", []byte{0x42, 0x20}},
		{"subb a, 0", nil},
	}

	for _, entry := range table {
		prog, err := asm.Parse(strings.NewReader(entry.line))
		if entry.codes == nil {
			assert.Error(err, entry.line)
			continue
		}
		assert.NoError(err, entry.line)
		if err == nil {
			assert.Equal(entry.codes, prog.Binary(), entry.line)
		}
	}
}

func TestAssemblerOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog := assemble(t, asm,
		"ORG 10h",
		"SETB C",
	)

	expected := append(make([]byte, 16), 0xd3)
	assert.Equal(expected, prog.Binary())
	assert.Equal(uint(16), prog.Instructions[0].Offset)
	assert.Equal(uint(16), prog.Instructions[0].Address)

	// Consecutive directives accumulate; padding belongs to the next instruction only.
	prog = assemble(t, asm,
		"SETB C",
		"ORG 2",
		"ORG 3",
		"here:",
		"SETB C",
		"SETB C",
		"ORG 5",
	)

	assert.Equal([]byte{0xd3, 0, 0, 0, 0, 0, 0xd3, 0xd3}, prog.Binary())
	assert.Equal(uint(6), prog.Symbols["here"])
}

func TestAssemblerOriginAbsolute(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Origin: ORIGIN_ABSOLUTE}

	prog := assemble(t, asm,
		"SETB C",
		"ORG 4",
		"here:",
		"MOV A, here",
		"ORG 6",
		"SETB C",
	)

	assert.Equal([]byte{0xd3, 0, 0, 0, 0xe5, 0x04, 0xd3}, prog.Binary())
	assert.Equal(uint(4), prog.Symbols["here"])

	_, err := asm.Parse(strings.NewReader("ORG 10000h\nSETB C\n"))
	assert.True(errors.Is(err, ErrOperandRange))

	_, err = asm.Parse(strings.NewReader("MOV A, 1\nSETB C\nORG 1\n"))
	assert.True(errors.Is(err, ErrOriginBackwards))
	var se *ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(3, se.LineNo)
		assert.Equal("ORG 1", se.Line)
	}
}

func TestParseOriginMode(t *testing.T) {
	assert := assert.New(t)

	mode, err := ParseOriginMode("gap")
	assert.NoError(err)
	assert.Equal(ORIGIN_GAP, mode)

	mode, err = ParseOriginMode("ABSOLUTE")
	assert.NoError(err)
	assert.Equal(ORIGIN_ABSOLUTE, mode)

	_, err = ParseOriginMode("relative")
	assert.Equal(ErrOriginMode, err)
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"MOV A, data    ; forward reference",
		"SETB C",
		"data:",
		"ADD A, data",
		"ORG 4",
		"far:",
		"SUBB A, far",
		"ORL far, A",
	}

	prog := assemble(t, asm, program...)

	assert.Equal(SymbolTable{"data": 3, "far": 9}, prog.Symbols)
	assert.Equal([]byte{
		0xe5, 0x03,
		0xd3,
		0x25, 0x03,
		0, 0, 0, 0,
		0x95, 0x09,
		0x42, 0x09,
	}, prog.Binary())

	// Same source, same output.
	again := assemble(t, asm, program...)
	assert.Equal(prog.Binary(), again.Binary())
	assert.Equal(prog.Symbols, again.Symbols)
}

func TestAssemblerPasses(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	lines, err := ReadLines(strings.NewReader("start:\nSETB C\nORG 2\nend:\nMOV A, ext\n"))
	assert.NoError(err)

	state := NewState()
	err = asm.Pass1(state, lines)
	assert.NoError(err)
	assert.Equal(SymbolTable{"start": 0, "end": 3}, state.Symbols)
	assert.Equal(uint(5), state.Address)
	assert.Equal(0, len(state.Instructions))

	// Pass two resolves against whatever symbols are injected.
	state.Symbols["ext"] = 0x40
	err = asm.Pass2(state, lines)
	assert.NoError(err)
	assert.Equal(uint(5), state.Address)
	assert.Equal(uint(0), state.Offset)
	assert.Equal([]Instruction{
		{2, "SETB C", 0, 0, []byte{0xd3}},
		{5, "MOV A, ext", 3, 2, []byte{0xe5, 0x40}},
	}, state.Instructions)
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	asm := &Assembler{Verbose: true}
	assemble(t, asm, "loop:", "MOV A, loop")

	assert.Contains(logged.String(), "2: MOV A, loop")
	assert.Contains(logged.String(), "E5 00")
	assert.Contains(logged.String(), "loop = 0h")
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrDuplicateLabel},
		{"SETB C\nx:\nSETB C\nx:\nMOV A, x", 4, ErrDuplicateLabel},
		{"MOV A, nowhere", 1, ErrUndefinedLabel},
		{"SETB C\n\n; comment\nMOV A, missing ; here", 4, ErrUndefinedLabel},
		{"MOV A, 30h\nLJMP start\nstart:", 2, ErrUnsupportedInstruction},
		{"FOO A", 1, ErrUnsupportedInstruction},
		{"SETB A", 1, ErrUnsupportedInstruction},
		{"mov a, 30h", 1, ErrUnsupportedInstruction},
		{"ORG start\nstart:", 1, ErrUnsupportedInstruction},
		{"ORG 10h, 1", 1, ErrUnsupportedInstruction},
		{"ORG #10h", 1, ErrUnsupportedInstruction},
		{"MOV A, [1]", 1, ErrInvalidSyntax},
		{"start: SETB C", 1, ErrInvalidSyntax},
		{"MOV A,", 1, ErrInvalidSyntax},
		{"SETB C\nMOV A, 12b", 2, ErrMalformedLiteral},
		{"MOV A, 1zh", 1, ErrInvalidSyntax},
		{"MOV A, 256", 1, ErrOperandRange},
		{"ORG 10000h\nSETB C", 1, ErrOperandRange},
		{"ORG 0FFFFFFFFh\nSETB C", 1, ErrOperandRange},
		{"SETB C\nORG 0FFFFh\nSETB C", 2, ErrOperandRange},
		{"far:\nMOV A, far\nORG 0FFh\nnear:\nMOV A, near", 5, ErrOperandRange},
	}

	for _, entry := range table {
		prog, err := asm.Parse(strings.NewReader(entry.prog))
		assert.Nil(prog, entry.prog)
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			assert.True(errors.Is(err, entry.err), entry.prog)
		}
	}
}
