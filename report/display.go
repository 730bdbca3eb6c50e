package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// Diagnostics are written to stderr so that they never mix with program
// output on stdout.  The bracketed severity tag is part of the diagnostic
// format and is colored rather than replaced.

// displayPositionedError displays a lexical or syntax error carrying a full
// file:line:column position.
func displayPositionedError(fileName string, line, col int, msg string) {
	fmt.Fprintf(os.Stderr, "%s %s:%d:%d: %s\n",
		ErrorColorFG.Sprint("[ERROR]"), fileName, line, col, msg)
}

// displaySemanticError displays a semantic error carrying only a line.
func displaySemanticError(fileName string, line int, msg string) {
	fmt.Fprintf(os.Stderr, "%s %s:%d: %s\n",
		ErrorColorFG.Sprint("[SEMANTIC ERROR]"), fileName, line, msg)
}

// displayGeneralError displays an unpositioned error message.
func displayGeneralError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		ErrorColorFG.Sprint("[ERROR]"), fmt.Sprintf(msg, args...))
}

// displayWarning displays an unpositioned warning message.
func displayWarning(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		WarnColorFG.Sprint("[WARNING]"), fmt.Sprintf(msg, args...))
}

// displayStageMessage displays a verbose message about the current
// compilation stage.
func displayStageMessage(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		InfoColorFG.Sprint("[INFO]"), fmt.Sprintf(msg, args...))
}

// displayFinishedMessage displays the closing compilation message.
func displayFinishedMessage(msg string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessColorFG.Sprint("[DONE]"), fmt.Sprintf(msg, args...))
}
