package bytecode

// Instruction is one operation plus a single operand. The operand's
// meaning depends on the opcode: a constant pool index for OpConstant,
// an absolute instruction index for jumps, a symbol table index for the
// variable opcodes, and zero elsewhere.
type Instruction struct {
	Op      OpCode
	Operand int
}

// Program is the compiled form of a source program: a linear instruction
// sequence, the integer constant pool it references, and the interned
// identifier names referenced by variable instructions. A finished
// Program always ends with OpHalt; the only mutation after emission is
// jump back-patching while compilation is still in progress.
type Program struct {
	Instructions []Instruction
	Constants    []int64
	Symbols      []string
}

func NewProgram() *Program {
	return &Program{
		Instructions: []Instruction{},
		Constants:    []int64{},
		Symbols:      []string{},
	}
}

// Emit appends an instruction and returns its index.
func (p *Program) Emit(op OpCode, operand int) int {
	p.Instructions = append(p.Instructions, Instruction{Op: op, Operand: operand})
	return len(p.Instructions) - 1
}

// AddConstant appends a literal to the pool and returns its index.
// Duplicates get their own slot; indices are stable once assigned.
func (p *Program) AddConstant(value int64) int {
	p.Constants = append(p.Constants, value)
	return len(p.Constants) - 1
}

// Intern returns the symbol index for name, adding it on first use.
func (p *Program) Intern(name string) int {
	for i, s := range p.Symbols {
		if s == name {
			return i
		}
	}
	p.Symbols = append(p.Symbols, name)
	return len(p.Symbols) - 1
}

// Patch rewrites the operand of a previously emitted instruction.
// Used to resolve jump placeholders once their target is known.
func (p *Program) Patch(at int, operand int) {
	p.Instructions[at].Operand = operand
}

// Len returns the number of instructions, i.e. the index the next
// emitted instruction would get.
func (p *Program) Len() int {
	return len(p.Instructions)
}
