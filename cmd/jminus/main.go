// cmd/jminus/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"jminus/cmd/jminus/commands"
	"jminus/internal/build"
	"jminus/internal/bytecode"
	"jminus/internal/lexer"
	"jminus/internal/parser"
	"jminus/internal/repl"
	"jminus/internal/vm"
)

const VERSION = "1.0.0"

func main() {
	args := os.Args[1:]

	// Strip global flags before command dispatch.
	debug := false
	verbosity := 0
	var rest []string
	for _, arg := range args {
		switch arg {
		case "--debug":
			debug = true
		case "--verbose", "-V":
			verbosity = 1
		default:
			rest = append(rest, arg)
		}
	}
	args = rest
	commonlog.Configure(verbosity, nil)

	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
		return
	case "--version", "-v", "version":
		fmt.Printf("jminus %s\n", VERSION)
		return
	case "init":
		if err := commands.InitCommand(args[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "build":
		if err := commands.BuildCommand(args[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "clean":
		if err := commands.CleanCommand(args[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "repl":
		repl.Start()
		return
	case "disasm":
		if len(args) < 2 {
			log.Fatal("Error: disasm requires a file argument")
		}
		program, err := loadProgram(args[1], debug)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		bytecode.Disassemble(program, os.Stdout)
		return
	case "run":
		args = args[1:]
		if len(args) == 0 {
			log.Fatal("Error: run requires a file argument")
		}
	}

	// Default: treat the argument as a file to run.
	runFile(args[0], debug)
}

func runFile(path string, debug bool) {
	program, err := loadProgram(path, debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := vm.New(program).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadProgram reads a source file or a compiled .jmb image and returns
// the executable Program.
func loadProgram(path string, debug bool) (*bytecode.Program, error) {
	if strings.HasSuffix(path, ".jmb") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return bytecode.DecodeImage(data)
	}

	if debug {
		return compileWithDump(path)
	}
	return build.CompileFile(path)
}

// compileWithDump mirrors CompileFile but prints the token stream and
// AST along the way.
func compileWithDump(path string) (*bytecode.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scanner := lexer.NewScanner(string(source))
	tokens := scanner.ScanTokens()
	if len(scanner.Errors) > 0 {
		return nil, scanner.Errors[0]
	}
	fmt.Println("--- Tokens ---")
	for _, tok := range tokens {
		fmt.Printf("[Line %d] %s\n", tok.Line, tok)
	}

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	if len(p.Errors) > 0 {
		return nil, p.Errors[0]
	}
	fmt.Println("--- AST ---")
	for _, stmt := range stmts {
		fmt.Print(parser.Print(stmt))
	}

	return build.CompileSource(string(source))
}

func showUsage() {
	fmt.Println("jminus - a bytecode-compiled toy language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  jminus <file.jm>          Run a source file")
	fmt.Println("  jminus run <file.jm|jmb>  Run a source file or compiled image")
	fmt.Println("  jminus repl               Start an interactive session")
	fmt.Println("  jminus build [dir]        Compile a project to a .jmb image")
	fmt.Println("  jminus disasm <file>      Dump bytecode for a file")
	fmt.Println("  jminus init [name]        Scaffold a new project")
	fmt.Println("  jminus clean [dir]        Remove build output")
	fmt.Println("  jminus version            Print the version")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --debug      Dump tokens and AST before running")
	fmt.Println("  --verbose    Enable build diagnostics")
}
