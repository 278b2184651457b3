// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/asm51/translate"
)

var f = translate.From

var (
	// Assembler error kinds.
	ErrInvalidSyntax          = errors.New(f("assembly not valid"))
	ErrDuplicateLabel         = errors.New(f("label duplicated"))
	ErrUnsupportedInstruction = errors.New(f("instruction not supported"))
	ErrUndefinedLabel         = errors.New(f("label undefined"))
	ErrMalformedLiteral       = errors.New(f("literal malformed"))

	// Operand and directive errors.
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrOriginBackwards = errors.New(f("origin before current address"))
	ErrOriginMode      = errors.New(f("origin mode unknown"))

	// Dispatch table errors.
	ErrEncodingDuplicate = errors.New(f("encoding duplicated"))
	ErrEncodingInvalid   = errors.New(f("encoding invalid"))
)

// ErrLabelMissing is a reference to a label that is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) bool {
	return err == ErrUndefinedLabel
}

// ErrLabelDuplicate is a label defined more than once.
type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(el))
}

func (el ErrLabelDuplicate) Is(err error) bool {
	return err == ErrDuplicateLabel
}

// ErrParseNumber is a numeric literal whose digits do not fit its base.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrMalformedLiteral || target == ErrInvalidSyntax
}

// ErrInstruction is a mnemonic and operand shape with no dispatch table row.
type ErrInstruction struct {
	Mnemonic string
	Shape    Shape
	Known    bool // Mnemonic has rows for some other shape.
}

func (err *ErrInstruction) Error() string {
	if !err.Known {
		return f("opcode not valid: %v", err.Mnemonic)
	}
	return f("%v %v not implemented", err.Mnemonic, err.Shape)
}

func (err *ErrInstruction) Is(target error) bool {
	return target == ErrUnsupportedInstruction
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrScript is a failure while running an instruction set script.
type ErrScript struct {
	Script string
	Err    error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Script, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
