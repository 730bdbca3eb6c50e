package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/config"
	"github.com/DannyBimma/gb-en-compiler/format"
	"github.com/DannyBimma/gb-en-compiler/report"
	"github.com/DannyBimma/gb-en-compiler/syntax"
	"github.com/DannyBimma/gb-en-compiler/trans"
	"github.com/DannyBimma/gb-en-compiler/walk"
)

// compilerID is the official identifier of this compiler build.
const compilerID = "c2en (C to British English compiler) v1.0.0"

// Compiler represents one invocation of the compiler: the input file, the
// resolved settings, and the state accumulated while running the pipeline.
type Compiler struct {
	// The path to the C source file being compiled.
	inputPath string

	// The path the description file is written to.
	outputPath string

	// The path to the project file, if one was given explicitly.
	configPath string

	// The selected log level name; empty until a flag or project file sets it.
	logLevelName string

	// Debug dump switches.  The *Set fields record that a command-line flag
	// supplied the value, so that the project file does not override it.
	showTokens    bool
	showTokensSet bool
	showAST       bool
	showASTSet    bool

	// The formatting configuration applied to the rendered text.
	formatOpts format.Options
}

// RunCompiler parses the command line and runs the full compilation pipeline.
// It returns the process exit code.
func RunCompiler() int {
	c := NewCompilerFromArgs()

	if !c.resolveSettings() {
		return 1
	}

	return c.Compile()
}

// resolveSettings merges the project file (if any) with the command-line
// arguments and initializes the global reporter.  Command-line values win.
func (c *Compiler) resolveSettings() bool {
	pfPath := c.configPath
	if pfPath == "" {
		pfPath = config.Find(c.inputPath)
	}

	proj, err := config.Load(pfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %s\n", err)
		return false
	}

	if c.logLevelName == "" {
		c.logLevelName = proj.LogLevel
	}

	switch c.logLevelName {
	case "silent":
		report.InitReporter(report.LogLevelSilent)
	case "error":
		report.InitReporter(report.LogLevelError)
	case "verbose":
		report.InitReporter(report.LogLevelVerbose)
	default:
		report.InitReporter(report.LogLevelWarn)
	}

	if c.outputPath == "" {
		c.outputPath = proj.OutputPath
	}
	if c.outputPath == "" {
		c.outputPath = defaultOutputPath(c.inputPath)
	}

	if !c.showTokensSet {
		c.showTokens = proj.ShowTokens
	}
	if !c.showASTSet {
		c.showAST = proj.ShowAST
	}

	c.formatOpts = format.Options{BritishSpelling: proj.BritishSpelling}

	return true
}

// defaultOutputPath derives the description file path from the input path by
// replacing its extension with .txt.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
}

// Compile runs every compilation stage in order, stopping at the first stage
// that reports errors.  It returns the process exit code.
func (c *Compiler) Compile() int {
	report.LogStage("Starting compilation of %s", c.inputPath)

	report.LogStage("Reading source file...")
	src, err := os.ReadFile(c.inputPath)
	if err != nil {
		report.ReportError("Could not read source file %s: %s", c.inputPath, err)
		return 1
	}

	report.LogStage("Performing lexical analysis...")
	tokens := syntax.Tokenize(string(src), c.inputPath)
	if last := tokens[len(tokens)-1]; last.Kind == syntax.TOK_ERROR {
		report.ReportLexicalError(c.inputPath, last.Line, last.Col, last.Lexeme)
		return 1
	}

	if c.showTokens {
		dumpTokens(tokens)
	}

	report.LogStage("Performing syntax analysis...")
	program, ok := syntax.Parse(tokens, c.inputPath)
	if !ok || !report.ShouldProceed() {
		return 1
	}

	if c.showAST {
		fmt.Print(ast.Dump(program))
	}

	report.LogStage("Performing semantic analysis...")
	if !walk.Check(program, c.inputPath) || !report.ShouldProceed() {
		return 1
	}

	report.LogStage("Translating to British English...")
	text := trans.Translate(program)

	report.LogStage("Formatting output...")
	text = format.Format(text, c.formatOpts)

	report.LogStage("Writing output to %s", c.outputPath)
	if err := os.WriteFile(c.outputPath, []byte(text), 0644); err != nil {
		report.ReportError("Could not write output file %s: %s", c.outputPath, err)
		return 1
	}

	report.LogStage("Compilation completed successfully!")
	report.LogFinished("Successfully compiled %s to %s", c.inputPath, c.outputPath)

	return 0
}

// dumpTokens prints the token stream produced by lexical analysis.
func dumpTokens(tokens []syntax.Token) {
	fmt.Println("Tokens:")
	for _, tok := range tokens {
		fmt.Printf("  %3d:%-3d %-12s %s\n", tok.Line, tok.Col, syntax.KindString(tok.Kind), tok.Lexeme)
	}
}
