package asm

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_NONE      = Mode(0) // none
	MODE_A         = Mode(1) // a
	MODE_C         = Mode(2) // c
	MODE_RN        = Mode(3) // rn
	MODE_INDIRECT  = Mode(4) // @ri
	MODE_INDEXED   = Mode(5) // @a+base
	MODE_DIRECT    = Mode(6) // direct
	MODE_IMMEDIATE = Mode(7) // #imm
	MODE_LABEL     = Mode(8) // label
)

// ParseMode returns the mode named by its String() form.
func ParseMode(name string) (mode Mode, ok bool) {
	for mode = MODE_NONE; mode <= MODE_LABEL; mode++ {
		if mode.String() == name {
			return mode, true
		}
	}
	return MODE_NONE, false
}

// Shape is the addressing modes of the three operand slots.
type Shape [3]Mode

func (shape Shape) String() string {
	var names []string
	for _, mode := range shape {
		if mode == MODE_NONE {
			break
		}
		names = append(names, mode.String())
	}
	return strings.Join(names, ",")
}

// Operand is a classified operand.
type Operand struct {
	Mode  Mode
	Value uint   // Register number, address, immediate or resolved label address.
	Name  string // Label name, or the base register of an indexed operand.
}

func (op Operand) String() string {
	switch op.Mode {
	case MODE_NONE:
		return ""
	case MODE_A:
		return "A"
	case MODE_C:
		return "C"
	case MODE_RN:
		return fmt.Sprintf("R%d", op.Value)
	case MODE_INDIRECT:
		return fmt.Sprintf("@R%d", op.Value)
	case MODE_INDEXED:
		return "@A+" + op.Name
	case MODE_DIRECT:
		return FormatLiteral(op.Value, BASE_HEX)
	case MODE_IMMEDIATE:
		return "#" + FormatLiteral(op.Value, BASE_HEX)
	default:
		return op.Name
	}
}

var (
	reRegister = regexp.MustCompile(`^R([0-7])$`)
	reIndirect = regexp.MustCompile(`^@R([01])$`)
)

// Classify determines the addressing mode of a single operand token.
// An empty token is an absent operand. Every token has a mode: anything
// not otherwise recognized is a label reference. err is only set for a
// token shaped like a numeric literal whose digits do not fit its base.
func Classify(word string) (op Operand, err error) {
	switch word {
	case "":
		return
	case "@A+DPTR":
		op = Operand{Mode: MODE_INDEXED, Name: "DPTR"}
		return
	case "@A+PC":
		op = Operand{Mode: MODE_INDEXED, Name: "PC"}
		return
	case "A":
		op = Operand{Mode: MODE_A}
		return
	case "C":
		op = Operand{Mode: MODE_C}
		return
	}

	if match := reRegister.FindStringSubmatch(word); match != nil {
		op = Operand{Mode: MODE_RN, Value: uint(match[1][0] - '0')}
		return
	}

	if value, ok, lerr := parseLiteral(word); ok {
		op = Operand{Mode: MODE_DIRECT, Value: value}
		err = lerr
		return
	}

	if rest, found := strings.CutPrefix(word, "#"); found {
		if value, ok, lerr := parseLiteral(rest); ok {
			op = Operand{Mode: MODE_IMMEDIATE, Value: value}
			err = lerr
			return
		}
	}

	if match := reIndirect.FindStringSubmatch(word); match != nil {
		op = Operand{Mode: MODE_INDIRECT, Value: uint(match[1][0] - '0')}
		return
	}

	op = Operand{Mode: MODE_LABEL, Name: word}
	return
}
