package lexer

import (
	"strings"
	"testing"

	"jminus/internal/errors"
)

func scan(input string) []Token {
	return NewScanner(input).ScanTokens()
}

func TestScanTokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			"let declaration",
			"let x = 5;",
			[]TokenType{TokenLet, TokenIdent, TokenEqual, TokenInt, TokenSemicolon, TokenEOF},
		},
		{
			"yap statement",
			"yap(x);",
			[]TokenType{TokenYap, TokenLParen, TokenIdent, TokenRParen, TokenSemicolon, TokenEOF},
		},
		{
			"comparison operators",
			"== != < <= > >=",
			[]TokenType{TokenDoubleEqual, TokenNotEqual, TokenLT, TokenLE, TokenGT, TokenGE, TokenEOF},
		},
		{
			"arithmetic operators",
			"+ - * /",
			[]TokenType{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenEOF},
		},
		{
			"keywords",
			"if else while",
			[]TokenType{TokenIf, TokenElse, TokenWhile, TokenEOF},
		},
		{
			"braces and parens",
			"{ ( ) }",
			[]TokenType{TokenLBrace, TokenLParen, TokenRParen, TokenRBrace, TokenEOF},
		},
		{
			"comment is skipped",
			"let x = 1; // trailing comment\nyap(x);",
			[]TokenType{TokenLet, TokenIdent, TokenEqual, TokenInt, TokenSemicolon,
				TokenYap, TokenLParen, TokenIdent, TokenRParen, TokenSemicolon, TokenEOF},
		},
		{
			"empty input",
			"",
			[]TokenType{TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.want), tokens)
			}
			for i, want := range tt.want {
				if tokens[i].Type != want {
					t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, want)
				}
			}
		})
	}
}

func TestScanLexemes(t *testing.T) {
	tokens := scan("let count = 42;")
	if tokens[1].Lexeme != "count" {
		t.Errorf("identifier lexeme: got %q, want %q", tokens[1].Lexeme, "count")
	}
	if tokens[3].Lexeme != "42" {
		t.Errorf("int lexeme: got %q, want %q", tokens[3].Lexeme, "42")
	}
}

func TestScanLineTracking(t *testing.T) {
	tokens := scan("let x = 1;\nlet y = 2;\nyap(y);")
	if tokens[0].Line != 1 {
		t.Errorf("first let on line %d, want 1", tokens[0].Line)
	}
	// Second let is token index 5.
	if tokens[5].Line != 2 {
		t.Errorf("second let on line %d, want 2", tokens[5].Line)
	}
	// yap is token index 10.
	if tokens[10].Line != 3 {
		t.Errorf("yap on line %d, want 3", tokens[10].Line)
	}
}

func TestUnexpectedCharacterReported(t *testing.T) {
	tests := []struct {
		name  string
		input string
		char  string
		line  int
	}{
		{"dollar in identifier position", "let x$ = 5;", "'$'", 1},
		{"lone bang", "yap(1); !", "'!'", 1},
		{"hash on later line", "let x = 1;\nyap(x) #;", "'#'", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.input)
			s.ScanTokens()
			if len(s.Errors) == 0 {
				t.Fatalf("scanning %q produced no errors", tt.input)
			}
			err := s.Errors[0]
			if !errors.IsKind(err, errors.SyntaxError) {
				t.Errorf("got %v, want SyntaxError", err)
			}
			if !strings.Contains(err.Error(), tt.char) {
				t.Errorf("error %q does not name the character %s", err.Error(), tt.char)
			}
			if e, ok := err.(*errors.Error); ok && e.Line != tt.line {
				t.Errorf("error line: got %d, want %d", e.Line, tt.line)
			}
		})
	}
}

func TestValidSourceScansClean(t *testing.T) {
	s := NewScanner("let x = 1; if (x != 0) { yap(x / 2); } // ok")
	s.ScanTokens()
	if len(s.Errors) > 0 {
		t.Errorf("unexpected errors: %v", s.Errors)
	}
}

func TestMultiCharIdentifier(t *testing.T) {
	tokens := scan("total_sum2")
	if tokens[0].Type != TokenIdent || tokens[0].Lexeme != "total_sum2" {
		t.Errorf("got %v, want IDENT 'total_sum2'", tokens[0])
	}
}
