package parser

// Stmt represents a top-level statement.
type Stmt interface {
	Accept(visitor StmtVisitor) interface{}
}

// LetStmt represents a variable declaration: let x = expr;
type LetStmt struct {
	Name string
	Init Expr
	Line int
}

func (l *LetStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitLetStmt(l)
}

// YapStmt prints the value of an expression: yap(expr);
type YapStmt struct {
	Expr Expr
}

func (y *YapStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitYapStmt(y)
}

// ExpressionStmt wraps a raw expression as a statement.
type ExpressionStmt struct {
	Expr Expr
}

func (e *ExpressionStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitExpressionStmt(e)
}

// IfStmt represents a conditional with an optional else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (i *IfStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitIfStmt(i)
}

// WhileStmt represents a condition-guarded loop.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (w *WhileStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitWhileStmt(w)
}

// BlockStmt groups statements: { ... }
type BlockStmt struct {
	Statements []Stmt
}

func (b *BlockStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitBlockStmt(b)
}

// StmtVisitor handles all statement types.
type StmtVisitor interface {
	VisitLetStmt(stmt *LetStmt) interface{}
	VisitYapStmt(stmt *YapStmt) interface{}
	VisitExpressionStmt(stmt *ExpressionStmt) interface{}
	VisitIfStmt(stmt *IfStmt) interface{}
	VisitWhileStmt(stmt *WhileStmt) interface{}
	VisitBlockStmt(stmt *BlockStmt) interface{}
}
