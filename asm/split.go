package asm

import (
	"regexp"
	"strings"
)

var (
	reLabel       = regexp.MustCompile(`(?i)^([a-z][a-z0-9]*):$`)
	reInstruction = regexp.MustCompile(`(?i)^([a-z]+)\s*([a-z#@0-9+]*)\s*(?:,\s*([a-z#@0-9+]*)\s*)?(?:,\s*([a-z#@0-9+]*)\s*)?$`)
)

// Statement is a split source line: either a label definition, or a
// mnemonic with up to three operand tokens.
type Statement struct {
	Label    string    // Label defined by this line, if any.
	Mnemonic string    // Upper case mnemonic.
	Operands [3]string // Operand tokens, empty when absent.
}

// Split decomposes a comment-free, trimmed source line.
func Split(line string) (stmt Statement, err error) {
	if match := reLabel.FindStringSubmatch(line); match != nil {
		stmt.Label = match[1]
		return
	}

	index := reInstruction.FindStringSubmatchIndex(line)
	if index == nil {
		err = ErrInvalidSyntax
		return
	}

	stmt.Mnemonic = strings.ToUpper(line[index[2]:index[3]])

	// Slots after a comma participate in the match even when empty.
	present := 0
	for n := range stmt.Operands {
		start, end := index[4+2*n], index[5+2*n]
		if start < 0 {
			continue
		}
		stmt.Operands[n] = line[start:end]
		if n > 0 {
			present = n + 1
		}
	}

	for n := range present {
		if len(stmt.Operands[n]) == 0 {
			err = ErrInvalidSyntax
			return
		}
	}

	return
}

// IsLabel returns true if the statement is a label definition.
func (stmt Statement) IsLabel() bool {
	return len(stmt.Label) != 0
}
