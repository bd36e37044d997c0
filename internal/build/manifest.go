// internal/build/manifest.go
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a jminus.toml project configuration.
type Manifest struct {
	Project Project     `toml:"project"`
	Build   BuildConfig `toml:"build"`

	// Dir is the directory containing the jminus.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Entry   string `toml:"entry"`
}

// BuildConfig configures image output.
type BuildConfig struct {
	OutputPath string `toml:"output_path"`
}

// LoadManifest parses a jminus.toml file from the given directory and
// applies defaults for missing fields.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "jminus.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Project.Name == "" {
		m.Project.Name = filepath.Base(m.Dir)
	}
	if m.Project.Entry == "" {
		m.Project.Entry = "main.jm"
	}
	if m.Build.OutputPath == "" {
		m.Build.OutputPath = filepath.Join("dist", m.Project.Name+".jmb")
	}

	return &m, nil
}
