// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"jminus/internal/bytecode"
	"jminus/internal/compiler"
	"jminus/internal/lexer"
	"jminus/internal/parser"
	"jminus/internal/vm"
)

func Start() {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("jminus REPL | type ':help' for commands, ':exit' to quit")
	}
	scanner := bufio.NewScanner(os.Stdin)

	// One VM for the whole session; globals survive across lines.
	machine := vm.New(emptyProgram())

	for {
		if interactive {
			fmt.Print("jminus> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		switch line {
		case "":
			continue
		case ":exit", "exit":
			return
		case ":help":
			printHelp()
			continue
		}

		lex := lexer.NewScanner(line)
		tokens := lex.ScanTokens()
		if len(lex.Errors) > 0 {
			for _, err := range lex.Errors {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		p := parser.NewParser(tokens)
		stmts := p.Parse()
		if len(p.Errors) > 0 {
			for _, err := range p.Errors {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}

		c := compiler.NewCompiler()
		program, err := c.Compile(stmts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		machine.Reset(program)
		if err := machine.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  :help         Show this help message")
	fmt.Println("  :exit         Exit the REPL")
	fmt.Println("  let x = 3;    Declare variables")
	fmt.Println("  yap(x);       Print variables or expressions")
	fmt.Println("  Supports: if, while, blocks {}")
}

func emptyProgram() *bytecode.Program {
	p := bytecode.NewProgram()
	p.Emit(bytecode.OpHalt, 0)
	return p
}
