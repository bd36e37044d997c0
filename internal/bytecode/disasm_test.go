package bytecode

import (
	"strings"
	"testing"
)

func TestDisassembleResolvesOperands(t *testing.T) {
	var sb strings.Builder
	Disassemble(sampleProgram(), &sb)
	out := sb.String()

	wantLines := []string{
		"0000  CONST    0  ; 5",
		"0001  DEFINE   0  ; x",
		"0003  PRINT    0",
		"0004  HALT     0",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q\ngot:\n%s", line, out)
		}
	}
	if !strings.Contains(out, "constants:") || !strings.Contains(out, "symbols:") {
		t.Errorf("output missing pool dumps:\n%s", out)
	}
}

func TestDisassembleShowsJumpTargets(t *testing.T) {
	p := NewProgram()
	p.Emit(OpConstant, p.AddConstant(0))
	p.Emit(OpJumpIfFalse, 3)
	p.Emit(OpJump, 0)
	p.Emit(OpHalt, 0)

	var sb strings.Builder
	Disassemble(p, &sb)
	if !strings.Contains(sb.String(), "; -> 0003") {
		t.Errorf("jump target not annotated:\n%s", sb.String())
	}
}

func TestDisassembleResolvesLoopTarget(t *testing.T) {
	p := NewProgram()
	p.Emit(OpConstant, p.AddConstant(1)) // 0
	p.Emit(OpPrint, 0)                   // 1
	p.Emit(OpLoop, 3)                    // 2: back to 0

	var sb strings.Builder
	Disassemble(p, &sb)
	if !strings.Contains(sb.String(), "LOOP     3  ; -> 0000") {
		t.Errorf("loop target not annotated:\n%s", sb.String())
	}
}

func TestDisassembleEmptyProgram(t *testing.T) {
	var sb strings.Builder
	Disassemble(NewProgram(), &sb)
	if sb.String() != "" {
		t.Errorf("empty program produced output: %q", sb.String())
	}
}
