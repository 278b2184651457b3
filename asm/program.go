package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/asm51/internal"
)

// Instruction is an assembled source line.
type Instruction struct {
	LineNo  int    // Source line number.
	Line    string // Source text.
	Address uint   // Address of the first byte of Bytes.
	Offset  uint   // Zero padding emitted before Bytes.
	Bytes   []byte // Encoded instruction.
}

// Program is the result of an assembly run.
type Program struct {
	Instructions []Instruction
	Symbols      SymbolTable
}

type Debug struct {
	*Instruction
	Index int
}

// Debug finds the instruction whose bytes cover addr.
func (prog *Program) Debug(addr uint) (dbg Debug) {
	for n, inst := range prog.Instructions {
		if addr >= inst.Address && addr < inst.Address+uint(len(inst.Bytes)) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       int(addr - inst.Address),
			}
			break
		}
	}

	return
}

// Bytes iterates over the output byte stream, padding included.
func (prog *Program) Bytes() iter.Seq[byte] {
	seqs := make([]iter.Seq[byte], 0, 2*len(prog.Instructions))
	for _, inst := range prog.Instructions {
		seqs = append(seqs,
			internal.IterSeqRepeat(byte(0), inst.Offset),
			slices.Values(inst.Bytes),
		)
	}

	return internal.IterSeqConcat(seqs...)
}

// Binary returns the output byte stream.
func (prog *Program) Binary() []byte {
	return slices.Collect(prog.Bytes())
}

// WriteHex writes the output byte stream as space separated upper case
// hex pairs.
func (prog *Program) WriteHex(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	n := 0
	for b := range prog.Bytes() {
		if n > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%02X", b)
		n++
	}
	if n > 0 {
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteListing writes an address, bytes and source listing followed by
// the symbol table.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	for _, inst := range prog.Instructions {
		if inst.Offset > 0 {
			fmt.Fprintf(bw, "%04X  %-9s %5s  ; %v\n", inst.Address-inst.Offset, "", "",
				f("%v bytes padding", inst.Offset))
		}
		hex := strings.TrimSpace(fmt.Sprintf("% X", inst.Bytes))
		fmt.Fprintf(bw, "%04X  %-9s %5d  %v\n", inst.Address, hex, inst.LineNo, inst.Line)
	}

	if len(prog.Symbols) > 0 {
		fmt.Fprintln(bw)
		for label, addr := range prog.Symbols.Sorted() {
			fmt.Fprintf(bw, "%-16s %v\n", label, FormatLiteral(addr, BASE_HEX))
		}
	}

	return bw.Flush()
}
