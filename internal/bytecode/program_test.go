package bytecode

import "testing"

func TestEmitReturnsIndex(t *testing.T) {
	p := NewProgram()
	if got := p.Emit(OpConstant, 0); got != 0 {
		t.Errorf("first emit: got %d, want 0", got)
	}
	if got := p.Emit(OpHalt, 0); got != 1 {
		t.Errorf("second emit: got %d, want 1", got)
	}
	if p.Len() != 2 {
		t.Errorf("len: got %d, want 2", p.Len())
	}
}

func TestAddConstantKeepsDuplicates(t *testing.T) {
	p := NewProgram()
	first := p.AddConstant(5)
	second := p.AddConstant(5)
	if first == second {
		t.Errorf("duplicate literal shared a slot: %d", first)
	}
	if len(p.Constants) != 2 {
		t.Errorf("pool size: got %d, want 2", len(p.Constants))
	}
}

func TestInternDeduplicates(t *testing.T) {
	p := NewProgram()
	first := p.Intern("x")
	p.Intern("y")
	again := p.Intern("x")
	if first != again {
		t.Errorf("re-interning returned %d, want %d", again, first)
	}
	if len(p.Symbols) != 2 {
		t.Errorf("symbol table size: got %d, want 2", len(p.Symbols))
	}
}

func TestPatchRewritesOperand(t *testing.T) {
	p := NewProgram()
	at := p.Emit(OpJumpIfFalse, 0)
	p.Emit(OpConstant, 0)
	p.Patch(at, 7)
	if p.Instructions[at].Operand != 7 {
		t.Errorf("patched operand: got %d, want 7", p.Instructions[at].Operand)
	}
	if p.Instructions[at].Op != OpJumpIfFalse {
		t.Errorf("patch changed opcode to %s", p.Instructions[at].Op)
	}
}

func TestOpCodeNames(t *testing.T) {
	tests := []struct {
		op   OpCode
		want string
	}{
		{OpConstant, "CONST"},
		{OpAdd, "ADD"},
		{OpJumpIfFalse, "JMPF"},
		{OpHalt, "HALT"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.op, got, tt.want)
		}
	}
}
