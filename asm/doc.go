// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements a two pass assembler for a subset of the 8051
// microcontroller instruction set.
//
// Source lines are split into a label definition or a mnemonic with up to
// three operands. Each operand is classified into an addressing mode, and
// the (mnemonic, operand modes) tuple selects a row of a dispatch Table
// that describes the encoded bytes. Pass one assigns addresses to labels,
// pass two emits the byte stream with forward references resolved.
//
// The dispatch table can be extended at run time with Starlark scripts,
// see Table.LoadScript.
package asm
