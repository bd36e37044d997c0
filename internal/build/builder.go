// internal/build/builder.go
package build

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"jminus/internal/bytecode"
	"jminus/internal/compiler"
	"jminus/internal/lexer"
	"jminus/internal/parser"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jminus.build")

// Builder compiles a project's entry source into a bytecode image.
type Builder struct {
	manifest *Manifest
}

// NewBuilder loads the manifest for projectRoot.
func NewBuilder(projectRoot string) (*Builder, error) {
	manifest, err := LoadManifest(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return &Builder{manifest: manifest}, nil
}

// Build compiles the entry source file and writes the .jmb image.
func (b *Builder) Build() error {
	m := b.manifest
	log.Infof("building %s v%s", m.Project.Name, m.Project.Version)

	entry := filepath.Join(m.Dir, m.Project.Entry)
	program, err := CompileFile(entry)
	if err != nil {
		return err
	}

	data, err := bytecode.EncodeImage(program)
	if err != nil {
		return err
	}

	checksum := sha256.Sum256(data)
	log.Infof("image checksum %s", hex.EncodeToString(checksum[:8]))

	outputPath := m.Build.OutputPath
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(m.Dir, outputPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	fmt.Printf("Build complete: %s (%d instructions, %d bytes)\n",
		outputPath, program.Len(), len(data))
	return nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	outputPath := b.manifest.Build.OutputPath
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(b.manifest.Dir, outputPath)
	}
	dir := filepath.Dir(outputPath)
	log.Infof("removing %s", dir)
	return os.RemoveAll(dir)
}

// CompileFile runs the lex/parse/compile pipeline over one source file.
func CompileFile(path string) (*bytecode.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return CompileSource(string(source))
}

// CompileSource runs the lex/parse/compile pipeline over source text.
func CompileSource(source string) (*bytecode.Program, error) {
	scanner := lexer.NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.Errors) > 0 {
		return nil, scanner.Errors[0]
	}
	p := parser.NewParser(tokens)
	stmts := p.Parse()
	if len(p.Errors) > 0 {
		return nil, p.Errors[0]
	}
	return compiler.NewCompiler().Compile(stmts)
}

// Init scaffolds a new project directory with a manifest and entry file.
func Init(name string) error {
	if err := os.MkdirAll(name, 0755); err != nil {
		return err
	}

	base := filepath.Base(name)
	manifest := fmt.Sprintf(`[project]
name = %q
version = "0.1.0"
entry = "main.jm"

[build]
output_path = "dist/%s.jmb"
`, base, base)
	if err := os.WriteFile(filepath.Join(name, "jminus.toml"), []byte(manifest), 0644); err != nil {
		return err
	}

	main := `// Entry point
let x = 5;
x = x + 3;
yap(x);
`
	return os.WriteFile(filepath.Join(name, "main.jm"), []byte(main), 0644)
}
