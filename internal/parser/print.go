package parser

import (
	"fmt"
	"strings"
)

// Print renders a statement tree as an indented outline, for the
// --debug dump.
func Print(stmt Stmt) string {
	var sb strings.Builder
	printStmt(&sb, stmt, 0)
	return sb.String()
}

func printStmt(sb *strings.Builder, stmt Stmt, indent int) {
	pad := strings.Repeat("  ", indent)
	switch s := stmt.(type) {
	case *LetStmt:
		fmt.Fprintf(sb, "%sLet %s =\n", pad, s.Name)
		printExpr(sb, s.Init, indent+1)
	case *YapStmt:
		fmt.Fprintf(sb, "%sYap\n", pad)
		printExpr(sb, s.Expr, indent+1)
	case *ExpressionStmt:
		fmt.Fprintf(sb, "%sExprStmt\n", pad)
		printExpr(sb, s.Expr, indent+1)
	case *IfStmt:
		fmt.Fprintf(sb, "%sIf\n", pad)
		printExpr(sb, s.Condition, indent+1)
		fmt.Fprintf(sb, "%sThen\n", pad)
		printStmt(sb, s.Then, indent+1)
		if s.Else != nil {
			fmt.Fprintf(sb, "%sElse\n", pad)
			printStmt(sb, s.Else, indent+1)
		}
	case *WhileStmt:
		fmt.Fprintf(sb, "%sWhile\n", pad)
		printExpr(sb, s.Condition, indent+1)
		printStmt(sb, s.Body, indent+1)
	case *BlockStmt:
		fmt.Fprintf(sb, "%sBlock\n", pad)
		for _, child := range s.Statements {
			printStmt(sb, child, indent+1)
		}
	default:
		fmt.Fprintf(sb, "%s<unknown stmt>\n", pad)
	}
}

func printExpr(sb *strings.Builder, expr Expr, indent int) {
	pad := strings.Repeat("  ", indent)
	switch e := expr.(type) {
	case *Literal:
		fmt.Fprintf(sb, "%sLiteral %s\n", pad, e.Value)
	case *Variable:
		fmt.Fprintf(sb, "%sVariable %s\n", pad, e.Name)
	case *Binary:
		fmt.Fprintf(sb, "%sBinary %s\n", pad, e.Operator)
		printExpr(sb, e.Left, indent+1)
		printExpr(sb, e.Right, indent+1)
	case *Grouping:
		printExpr(sb, e.Expression, indent)
	default:
		fmt.Fprintf(sb, "%s<unknown expr>\n", pad)
	}
}
