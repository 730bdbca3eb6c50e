// Package format post-processes rendered programme descriptions before they
// are written out.  Its main job is normalising stray American spellings to
// their British forms.
package format

import "strings"

// britishSpellings maps lowercase American spellings to their British
// equivalents.  Matching is whole-word and preserves a leading capital.
var britishSpellings = map[string]string{
	"program":     "programme",
	"programs":    "programmes",
	"initialize":  "initialise",
	"initialized": "initialised",
	"initializes": "initialises",
	"color":       "colour",
	"colors":      "colours",
	"behavior":    "behaviour",
	"behaviors":   "behaviours",
	"analyze":     "analyse",
	"analyzed":    "analysed",
	"organize":    "organise",
	"organized":   "organised",
	"center":      "centre",
	"centers":     "centres",
	"optimize":    "optimise",
	"optimized":   "optimised",
	"while":       "whilst",
}

// Options controls the formatting pass.
type Options struct {
	// BritishSpelling enables the American-to-British word substitution.
	BritishSpelling bool
}

// DefaultOptions returns the formatting configuration used when no project
// file overrides it.
func DefaultOptions() Options {
	return Options{BritishSpelling: true}
}

// Format applies the configured passes to the rendered text and guarantees
// the result ends with a newline.
func Format(text string, opts Options) string {
	if opts.BritishSpelling {
		text = applyBritishSpelling(text)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text
}

// applyBritishSpelling rewrites whole words found in the spelling table.
// Identifiers and message strings taken from the source survive verbatim:
// quoted spans are skipped, and a section heading is skipped as a whole when
// the following line is its dash underline, since headings carry source names
// unquoted.
func applyBritishSpelling(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i+1 < len(lines) && isUnderline(lines[i+1]) {
			continue
		}

		lines[i] = spellLine(line)
	}

	return strings.Join(lines, "\n")
}

// isUnderline reports whether the line is a heading rule.
func isUnderline(line string) bool {
	if line == "" {
		return false
	}

	for i := 0; i < len(line); i++ {
		if line[i] != '-' {
			return false
		}
	}

	return true
}

// spellLine rewrites table words on one line, leaving quoted spans untouched.
func spellLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))

	inQuote := byte(0)
	i := 0
	for i < len(line) {
		c := line[i]

		if inQuote != 0 {
			sb.WriteByte(c)
			if c == inQuote {
				inQuote = 0
			}
			i++
			continue
		}

		switch {
		case c == '"' || c == '\'':
			inQuote = c
			sb.WriteByte(c)
			i++
		case isWordByte(c):
			start := i
			for i < len(line) && isWordByte(line[i]) {
				i++
			}
			sb.WriteString(replaceWord(line[start:i]))
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String()
}

func replaceWord(word string) string {
	repl, ok := britishSpellings[strings.ToLower(word)]
	if !ok {
		return word
	}

	// Preserve a leading capital.
	if word[0] >= 'A' && word[0] <= 'Z' && repl[0] >= 'a' && repl[0] <= 'z' {
		return string(repl[0]-'a'+'A') + repl[1:]
	}

	return repl
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
