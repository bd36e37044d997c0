package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a readable assembly-style dump of the program:
// one line per instruction with the operand resolved against the
// constant pool or symbol table where that applies.
func Disassemble(p *Program, w io.Writer) {
	for i, instr := range p.Instructions {
		fmt.Fprintf(w, "%04d  %-8s %d%s\n", i, instr.Op, instr.Operand, operandNote(p, i, instr))
	}
	if len(p.Constants) > 0 {
		fmt.Fprintln(w, "constants:")
		for i, c := range p.Constants {
			fmt.Fprintf(w, "  [%d] %d\n", i, c)
		}
	}
	if len(p.Symbols) > 0 {
		fmt.Fprintln(w, "symbols:")
		for i, s := range p.Symbols {
			fmt.Fprintf(w, "  [%d] %s\n", i, s)
		}
	}
}

func operandNote(p *Program, at int, instr Instruction) string {
	switch instr.Op {
	case OpConstant:
		if instr.Operand >= 0 && instr.Operand < len(p.Constants) {
			return fmt.Sprintf("  ; %d", p.Constants[instr.Operand])
		}
	case OpLoadVar, OpSetVar, OpDefineVar:
		if instr.Operand >= 0 && instr.Operand < len(p.Symbols) {
			return fmt.Sprintf("  ; %s", p.Symbols[instr.Operand])
		}
	case OpJump, OpJumpIfFalse:
		return fmt.Sprintf("  ; -> %04d", instr.Operand)
	case OpLoop:
		// Relative backward jump; the operand counts from the next ip.
		return fmt.Sprintf("  ; -> %04d", at+1-instr.Operand)
	}
	return ""
}
