package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation.  The reporter respects the set log
// level and counts errors so that the driver can decide whether to proceed to
// the next compilation phase.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep = &Reporter{
	m:        &sync.Mutex{},
	logLevel: LogLevelVerbose,
}

// InitReporter initializes the global error reporter to the given log level.
// Any previously counted errors are discarded.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// ShouldProceed indicates whether or not any errors have been reported that
// should stop compilation at the current phase.
func ShouldProceed() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}

// countError records one reported error.
func countError() {
	rep.m.Lock()
	rep.errorCount++
	rep.m.Unlock()
}

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Errors are always counted, even when display is suppressed, so that
// tests and the driver observe the same pass/fail behavior at every log level.

// ReportLexicalError reports a fatal tokenization error at a precise position.
func ReportLexicalError(fileName string, line, col int, msg string) {
	countError()
	if rep.logLevel >= LogLevelError {
		displayPositionedError(fileName, line, col, msg)
	}
}

// ReportSyntaxError reports a parse error at a precise position.
func ReportSyntaxError(fileName string, line, col int, msg string) {
	countError()
	if rep.logLevel >= LogLevelError {
		displayPositionedError(fileName, line, col, msg)
	}
}

// ReportSemanticError reports an error found during semantic analysis.
// Semantic diagnostics carry a line but no column.
func ReportSemanticError(fileName string, line int, msg string) {
	countError()
	if rep.logLevel >= LogLevelError {
		displaySemanticError(fileName, line, msg)
	}
}

// ReportError reports a general (non-positioned) compiler error such as an
// unreadable input file.
func ReportError(msg string, args ...interface{}) {
	countError()
	if rep.logLevel >= LogLevelError {
		displayGeneralError(msg, args...)
	}
}

// ReportWarning reports a general compiler warning.
func ReportWarning(msg string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		displayWarning(msg, args...)
	}
}

// LogStage logs a verbose message describing the compilation stage currently
// being run.  These messages only display at the verbose log level.
func LogStage(msg string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		displayStageMessage(msg, args...)
	}
}

// LogFinished logs the concluding compilation message.  Unlike stage messages
// it displays at every log level above silent, matching the behavior of the
// non-verbose success line.
func LogFinished(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFinishedMessage(msg, args...)
	}
}
