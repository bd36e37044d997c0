// cmd/jminus/commands/build.go
package commands

import (
	"fmt"

	"jminus/internal/build"
)

// BuildCommand handles the build command.
func BuildCommand(args []string) error {
	projectRoot := "."
	if len(args) > 0 {
		projectRoot = args[0]
	}

	builder, err := build.NewBuilder(projectRoot)
	if err != nil {
		return fmt.Errorf("failed to initialize builder: %w", err)
	}
	return builder.Build()
}

// CleanCommand handles the clean command.
func CleanCommand(args []string) error {
	projectRoot := "."
	if len(args) > 0 {
		projectRoot = args[0]
	}

	builder, err := build.NewBuilder(projectRoot)
	if err != nil {
		return fmt.Errorf("failed to initialize builder: %w", err)
	}
	return builder.Clean()
}

// InitCommand initializes a new jminus project.
func InitCommand(args []string) error {
	projectName := "jminus-project"
	if len(args) > 0 {
		projectName = args[0]
	}

	fmt.Printf("Initializing new jminus project: %s\n", projectName)
	return build.Init(projectName)
}
