package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

const usage = `Usage: c2en <path to C source file> [flags|options]

Flags:
------
-h, --help          Displays usage information (ie. this text).
-V, --version       Displays the current compiler version.
-v, --verbose       Logs every compilation stage as it runs.
    --show-tokens   Prints the token stream after lexical analysis.
    --show-ast      Prints the syntax tree after parsing.

Options:
--------
-o,  --outpath    Sets the path of the generated description file.  Defaults
                  to the input path with its extension replaced by .txt.
-c,  --config     Sets the path to a c2en.toml project file.  By default the
                  compiler looks for one beside the input file.
-ll, --loglevel   Sets the compiler's log-level.  Valid values are:
                    - "verbose" for outputting all messages
                    - "warn" for outputting errors and warnings (default)
                    - "error" for outputting errors only
                    - "silent" for no output
`

// Prints the usage message and exits the compiler with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"o":         {},
	"c":         {},
	"ll":        {},
	"-outpath":  {},
	"-config":   {},
	"-loglevel": {},
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first
// value is the name of the argument; it is empty for positional arguments.
// The second value is the value of the argument; it is empty for flags.  The
// final value indicates whether or not there was an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") { // flag or option
			name := arg[1:]

			if _, ok := options[name]; ok { // option
				// Make sure the option value exists.
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				}

				argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
			}

			// flag
			return name, "", true
		}

		// positional
		return "", arg, true
	}

	// No arguments to parse.
	return "", "", false
}

// useArg attempts to use a single command-line argument to initialize the
// compiler.  If the argument is invalid, the program will exit.
func useArg(c *Compiler, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "V", "-version":
		pterm.Info.Println(compilerID)
		os.Exit(0)
	case "v", "-verbose":
		c.logLevelName = "verbose"
	case "-show-tokens":
		c.showTokens = true
		c.showTokensSet = true
	case "-show-ast":
		c.showAST = true
		c.showASTSet = true
	case "ll", "-loglevel":
		switch value {
		case "silent", "error", "warn", "verbose":
			c.logLevelName = value
		default:
			argumentError("invalid log level")
		}
	case "o", "-outpath":
		c.outputPath = value
	case "c", "-config":
		if _, err := os.Stat(value); err != nil {
			argumentError("invalid config path: %s", value)
		}

		c.configPath = value
	case "":
		if c.inputPath == "" {
			c.inputPath = value
		} else {
			argumentError("input path specified multiple times")
		}
	default:
		argumentError("unknown flag: %s", name)
	}
}

// NewCompilerFromArgs creates a new compiler instance based on the given
// command-line arguments if the arguments are valid.
func NewCompilerFromArgs() *Compiler {
	c := &Compiler{}

	ap := argParser{args: os.Args[1:], ndx: 0}

	// Parse all command line arguments.
	for {
		if name, value, ok := ap.nextArg(); ok {
			useArg(c, name, value)
		} else {
			break
		}
	}

	// Check to make sure an input path was specified.
	if c.inputPath == "" {
		argumentError("an input file must be specified")
	}

	return c
}
