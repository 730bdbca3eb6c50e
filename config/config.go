// Package config loads the optional c2en.toml project file that sits beside
// a source file and carries default compiler settings.  Command-line flags
// always take precedence over values loaded here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProjectFileName is the name of the project file searched for next to the
// input source file.
const ProjectFileName = "c2en.toml"

// tomlProject represents the project file as it is encoded in TOML
type tomlProject struct {
	Output   *tomlOutput   `toml:"output"`
	Compiler *tomlCompiler `toml:"compiler"`
	Format   *tomlFormat   `toml:"format"`
}

type tomlOutput struct {
	Path       string `toml:"path,omitempty"`
	ShowTokens bool   `toml:"show-tokens"`
	ShowAST    bool   `toml:"show-ast"`
}

type tomlCompiler struct {
	LogLevel string `toml:"log-level,omitempty"`
}

type tomlFormat struct {
	Spelling string `toml:"spelling,omitempty"`
}

// Project holds the merged, validated project settings.
type Project struct {
	OutputPath      string
	ShowTokens      bool
	ShowAST         bool
	LogLevel        string
	BritishSpelling bool
}

// defaultProject returns the settings used when no project file exists.
func defaultProject() *Project {
	return &Project{
		LogLevel:        "warn",
		BritishSpelling: true,
	}
}

// Find locates the project file for a given input source path.  It returns
// the empty string if no project file is present.
func Find(inputPath string) string {
	dir := filepath.Dir(inputPath)
	pfPath := filepath.Join(dir, ProjectFileName)

	if fi, err := os.Stat(pfPath); err == nil && !fi.IsDir() {
		return pfPath
	}

	return ""
}

// Load reads and validates a project file.  An empty path yields the default
// settings with no error.
func Load(path string) (*Project, error) {
	proj := defaultProject()
	if path == "" {
		return proj, nil
	}

	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tp := &tomlProject{}
	if err := toml.Unmarshal(buff, tp); err != nil {
		return nil, fmt.Errorf("malformed project file at %s: %s", path, err)
	}

	if tp.Output != nil {
		proj.OutputPath = tp.Output.Path
		proj.ShowTokens = tp.Output.ShowTokens
		proj.ShowAST = tp.Output.ShowAST
	}

	if tp.Compiler != nil && tp.Compiler.LogLevel != "" {
		switch tp.Compiler.LogLevel {
		case "silent", "error", "warn", "verbose":
			proj.LogLevel = tp.Compiler.LogLevel
		default:
			return nil, fmt.Errorf("invalid log-level `%s` in %s", tp.Compiler.LogLevel, path)
		}
	}

	if tp.Format != nil && tp.Format.Spelling != "" {
		switch tp.Format.Spelling {
		case "british":
			proj.BritishSpelling = true
		case "none":
			proj.BritishSpelling = false
		default:
			return nil, fmt.Errorf("invalid spelling mode `%s` in %s", tp.Format.Spelling, path)
		}
	}

	return proj, nil
}
