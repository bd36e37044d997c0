package vm

import (
	"fmt"
	"os"

	"jminus/internal/bytecode"
	"jminus/internal/env"
	"jminus/internal/errors"
)

// OutputFunc receives each value printed by OpPrint.
type OutputFunc func(value int64)

func defaultOutput(value int64) {
	fmt.Fprintf(os.Stdout, "%d\n", value)
}

// VM executes a compiled Program against an operand stack and a scope
// chain. It is single-threaded and non-reentrant: one stack and one
// scope chain per VM, and the Program is read-only during execution.
type VM struct {
	program *bytecode.Program
	ip      int
	stack   []int64
	globals *env.Env
	output  OutputFunc
}

func New(program *bytecode.Program) *VM {
	return &VM{
		program: program,
		stack:   []int64{},
		globals: env.New(nil),
		output:  defaultOutput,
	}
}

// SetOutput redirects OpPrint values, e.g. to a test harness. Must not
// be called while Run is in flight.
func (vm *VM) SetOutput(out OutputFunc) {
	vm.output = out
}

// Reset swaps in a new program while keeping the global scope, so a
// REPL session retains its bindings across lines.
func (vm *VM) Reset(program *bytecode.Program) {
	vm.program = program
	vm.ip = 0
	vm.stack = vm.stack[:0]
}

func (vm *VM) push(v int64) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() int64 {
	if len(vm.stack) == 0 {
		panic("stack underflow: attempted to pop from an empty stack")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

// Run executes until OpHalt, the only normal exit. Undefined variables
// and division by zero return errors; a malformed program (unknown
// opcode, stack underflow) is a compiler contract breach and panics.
func (vm *VM) Run() error {
	for {
		instr := vm.program.Instructions[vm.ip]
		vm.ip++

		switch instr.Op {
		case bytecode.OpConstant:
			vm.push(vm.program.Constants[instr.Operand])

		case bytecode.OpAdd:
			b := vm.pop()
			a := vm.pop()
			vm.push(a + b)

		case bytecode.OpSub:
			b := vm.pop()
			a := vm.pop()
			vm.push(a - b)

		case bytecode.OpMul:
			b := vm.pop()
			a := vm.pop()
			vm.push(a * b)

		case bytecode.OpDiv:
			b := vm.pop()
			a := vm.pop()
			if b == 0 {
				return errors.New(errors.RuntimeError, "division by zero")
			}
			vm.push(a / b)

		case bytecode.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a == b))

		case bytecode.OpNotEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a != b))

		case bytecode.OpLess:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a < b))

		case bytecode.OpLessEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a <= b))

		case bytecode.OpGreater:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a > b))

		case bytecode.OpGreaterEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(boolToInt(a >= b))

		case bytecode.OpLoadVar:
			name := vm.program.Symbols[instr.Operand]
			value, err := vm.globals.Lookup(name)
			if err != nil {
				return err
			}
			vm.push(value)

		case bytecode.OpSetVar:
			name := vm.program.Symbols[instr.Operand]
			if err := vm.globals.Assign(name, vm.pop()); err != nil {
				return err
			}

		case bytecode.OpDefineVar:
			name := vm.program.Symbols[instr.Operand]
			vm.globals.Define(name, vm.pop())

		case bytecode.OpPrint:
			vm.output(vm.pop())

		case bytecode.OpJumpIfFalse:
			if vm.pop() == 0 {
				vm.ip = instr.Operand
			}

		case bytecode.OpJump:
			vm.ip = instr.Operand

		case bytecode.OpLoop:
			vm.ip -= instr.Operand

		case bytecode.OpPop:
			_ = vm.pop()

		case bytecode.OpHalt:
			return nil

		default:
			panic(fmt.Sprintf("unknown opcode: %d", instr.Op))
		}
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
