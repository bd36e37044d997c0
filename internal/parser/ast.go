package parser

type Expr interface {
	Accept(visitor ExprVisitor) interface{}
}

// Literal expression: an integer constant
type Literal struct {
	Value string
	Line  int
}

func (l *Literal) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitLiteralExpr(l)
}

// Variable expression: x
type Variable struct {
	Name string
	Line int
}

func (v *Variable) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitVariableExpr(v)
}

// Binary expression: a + b. Assignment is parsed as a Binary with
// operator "=" and special-cased by the compiler, matching the grammar.
type Binary struct {
	Left     Expr
	Operator string
	Right    Expr
	Line     int
}

func (b *Binary) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitBinaryExpr(b)
}

// Grouping expression: (expr)
type Grouping struct {
	Expression Expr
}

func (g *Grouping) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitGroupingExpr(g)
}

// ExprVisitor handles all expression types.
type ExprVisitor interface {
	VisitLiteralExpr(expr *Literal) interface{}
	VisitVariableExpr(expr *Variable) interface{}
	VisitBinaryExpr(expr *Binary) interface{}
	VisitGroupingExpr(expr *Grouping) interface{}
}
