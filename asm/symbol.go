package asm

import (
	"iter"
	"maps"
	"slices"
)

// SymbolTable maps label names to byte addresses.
type SymbolTable map[string]uint

// Define records a label at an address. A label may only be defined once.
func (st SymbolTable) Define(label string, addr uint) (err error) {
	_, ok := st[label]
	if ok {
		err = ErrLabelDuplicate(label)
		return
	}

	st[label] = addr
	return
}

// Lookup resolves a label to its address.
func (st SymbolTable) Lookup(label string) (addr uint, err error) {
	addr, ok := st[label]
	if !ok {
		err = ErrLabelMissing(label)
	}
	return
}

// Sorted iterates over the symbols in label order.
func (st SymbolTable) Sorted() iter.Seq2[string, uint] {
	return func(yield func(string, uint) bool) {
		for _, label := range slices.Sorted(maps.Keys(st)) {
			if !yield(label, st[label]) {
				return
			}
		}
	}
}
