// internal/compiler/compiler.go
package compiler

import (
	"strconv"

	"jminus/internal/bytecode"
	"jminus/internal/errors"
	"jminus/internal/parser"
)

// AST recursion beyond this depth aborts compilation instead of risking
// native stack exhaustion on pathologically nested input.
const maxDepth = 512

// Compiler translates a statement tree into a bytecode Program. It is
// single-use: one Compile call per instance.
type Compiler struct {
	program *bytecode.Program
	depth   int
	err     *errors.Error
}

func NewCompiler() *Compiler {
	return &Compiler{
		program: bytecode.NewProgram(),
	}
}

// Compile emits code for the statements in order, terminated by OpHalt.
// Any structural error aborts the whole compilation; no partial Program
// is returned.
func (c *Compiler) Compile(stmts []parser.Stmt) (*bytecode.Program, error) {
	for _, stmt := range stmts {
		stmt.Accept(c)
		if c.err != nil {
			return nil, c.err
		}
	}
	c.program.Emit(bytecode.OpHalt, 0)
	return c.program, nil
}

func (c *Compiler) fail(e *errors.Error) {
	if c.err == nil {
		c.err = e
	}
}

func (c *Compiler) enter() bool {
	c.depth++
	if c.depth > maxDepth {
		c.fail(errors.New(errors.CompileError, "program nesting too deep"))
		return false
	}
	return true
}

func (c *Compiler) leave() {
	c.depth--
}

// --- statements ---

func (c *Compiler) VisitLetStmt(stmt *parser.LetStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	stmt.Init.Accept(c)
	if c.err != nil {
		return nil
	}
	idx := c.program.Intern(stmt.Name)
	c.program.Emit(bytecode.OpDefineVar, idx)
	return nil
}

func (c *Compiler) VisitYapStmt(stmt *parser.YapStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	stmt.Expr.Accept(c)
	if c.err != nil {
		return nil
	}
	c.program.Emit(bytecode.OpPrint, 0)
	return nil
}

func (c *Compiler) VisitExpressionStmt(stmt *parser.ExpressionStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	stmt.Expr.Accept(c)
	return nil
}

func (c *Compiler) VisitIfStmt(stmt *parser.IfStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	stmt.Condition.Accept(c)
	if c.err != nil {
		return nil
	}

	// Placeholder; patched once the then branch length is known.
	jumpIfFalse := c.program.Emit(bytecode.OpJumpIfFalse, 0)

	stmt.Then.Accept(c)
	if c.err != nil {
		return nil
	}

	if stmt.Else != nil {
		jumpEnd := c.program.Emit(bytecode.OpJump, 0)
		c.program.Patch(jumpIfFalse, c.program.Len())
		stmt.Else.Accept(c)
		if c.err != nil {
			return nil
		}
		c.program.Patch(jumpEnd, c.program.Len())
	} else {
		c.program.Patch(jumpIfFalse, c.program.Len())
	}
	return nil
}

func (c *Compiler) VisitWhileStmt(stmt *parser.WhileStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	loopStart := c.program.Len()
	stmt.Condition.Accept(c)
	if c.err != nil {
		return nil
	}

	jumpOut := c.program.Emit(bytecode.OpJumpIfFalse, 0)

	stmt.Body.Accept(c)
	if c.err != nil {
		return nil
	}

	c.program.Emit(bytecode.OpJump, loopStart)
	c.program.Patch(jumpOut, c.program.Len())
	return nil
}

func (c *Compiler) VisitBlockStmt(stmt *parser.BlockStmt) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	for _, s := range stmt.Statements {
		s.Accept(c)
		if c.err != nil {
			return nil
		}
	}
	return nil
}

// --- expressions ---

func (c *Compiler) VisitLiteralExpr(expr *parser.Literal) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	value, err := strconv.ParseInt(expr.Value, 10, 64)
	if err != nil {
		c.fail(errors.NewAt(errors.CompileError, "invalid integer literal: "+expr.Value, expr.Line))
		return nil
	}
	idx := c.program.AddConstant(value)
	c.program.Emit(bytecode.OpConstant, idx)
	return nil
}

func (c *Compiler) VisitVariableExpr(expr *parser.Variable) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	idx := c.program.Intern(expr.Name)
	c.program.Emit(bytecode.OpLoadVar, idx)
	return nil
}

func (c *Compiler) VisitBinaryExpr(expr *parser.Binary) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	// Assignment is special-cased before operand compilation: the left
	// side must already be a variable reference and is never evaluated.
	if expr.Operator == "=" {
		target, ok := expr.Left.(*parser.Variable)
		if !ok {
			c.fail(errors.NewAt(errors.CompileError, "invalid assignment target", expr.Line))
			return nil
		}
		expr.Right.Accept(c)
		if c.err != nil {
			return nil
		}
		idx := c.program.Intern(target.Name)
		c.program.Emit(bytecode.OpSetVar, idx)
		return nil
	}

	expr.Left.Accept(c)
	if c.err != nil {
		return nil
	}
	expr.Right.Accept(c)
	if c.err != nil {
		return nil
	}

	switch expr.Operator {
	case "+":
		c.program.Emit(bytecode.OpAdd, 0)
	case "-":
		c.program.Emit(bytecode.OpSub, 0)
	case "*":
		c.program.Emit(bytecode.OpMul, 0)
	case "/":
		c.program.Emit(bytecode.OpDiv, 0)
	case "==":
		c.program.Emit(bytecode.OpEqual, 0)
	case "!=":
		c.program.Emit(bytecode.OpNotEqual, 0)
	case "<":
		c.program.Emit(bytecode.OpLess, 0)
	case "<=":
		c.program.Emit(bytecode.OpLessEqual, 0)
	case ">":
		c.program.Emit(bytecode.OpGreater, 0)
	case ">=":
		c.program.Emit(bytecode.OpGreaterEqual, 0)
	default:
		c.fail(errors.NewAt(errors.CompileError, "unknown binary operator: "+expr.Operator, expr.Line))
	}
	return nil
}

func (c *Compiler) VisitGroupingExpr(expr *parser.Grouping) interface{} {
	if !c.enter() {
		return nil
	}
	defer c.leave()

	expr.Expression.Accept(c)
	return nil
}
