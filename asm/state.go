package asm

// State is the mutable state of a single assembly run.
type State struct {
	Address      uint          // Address of the next emitted byte.
	Offset       uint          // Zero padding pending before the next instruction.
	Instructions []Instruction // Emitted instructions, in program order.
	Symbols      SymbolTable   // Labels defined in pass one.
}

// NewState returns an empty assembly state.
func NewState() *State {
	return &State{
		Symbols: make(SymbolTable, 16),
	}
}

// rewind resets the address counter for the start of a pass.
func (state *State) rewind() {
	state.Address = 0
	state.Offset = 0
	state.Instructions = state.Instructions[:0]
}

// origin moves the address counter forward by pad zero bytes.
func (state *State) origin(pad uint) {
	state.Address += pad
	state.Offset += pad
}

// advance moves the address counter past an instruction of size bytes.
func (state *State) advance(size uint) {
	state.Address += size
	state.Offset = 0
}
