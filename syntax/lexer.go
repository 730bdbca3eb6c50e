package syntax

import "fmt"

// Lexer is responsible for tokenizing a source file.  It performs a single
// left-to-right scan, skipping whitespace, comments, and preprocessor
// directive lines, and producing maximal-munch tokens.
type Lexer struct {
	source   string
	fileName string

	pos       int
	line, col int
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(source, fileName string) *Lexer {
	return &Lexer{
		source:   source,
		fileName: fileName,
		line:     1,
		col:      1,
	}
}

// Tokenize converts source text into the complete token sequence.  The
// sequence always ends with exactly one EOF token, or with one error token if
// a lexical error short-circuits the scan.
func Tokenize(source, fileName string) []Token {
	l := NewLexer(source, fileName)

	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Kind == TOK_EOF || tok.Kind == TOK_ERROR {
			return tokens
		}
	}
}

// NextToken retrieves the next token from the source.  Once the source has
// ended, this is an EOF token.
func (l *Lexer) NextToken() Token {
	if errTok, ok := l.skipWhitespace(); ok {
		return errTok
	}

	if l.atEnd() {
		return Token{Kind: TOK_EOF, Line: l.line, Col: l.col}
	}

	c := l.peek()
	switch {
	case isIdentStart(c):
		return l.lexIdentOrKeyword()
	case isDigit(c):
		return l.lexNumber()
	case c == '"':
		return l.lexString()
	case c == '\'':
		return l.lexCharLit()
	default:
		return l.lexPunctOrOper()
	}
}

// -----------------------------------------------------------------------------

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}

	return l.source[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}

	return l.source[l.pos+1]
}

// advance consumes one character, maintaining the line and column counters.
func (l *Lexer) advance() byte {
	c := l.source[l.pos]
	l.pos++

	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return c
}

// match consumes the next character only if it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.source[l.pos] != expected {
		return false
	}

	l.advance()
	return true
}

// skipWhitespace skips whitespace, preprocessor directive lines, and both
// comment forms.  An unterminated block comment is a lexical error.
func (l *Lexer) skipWhitespace() (Token, bool) {
	for !l.atEnd() {
		switch c := l.peek(); c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			l.advance()
		case '#':
			// Preprocessor directive: discard the entire line.
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else if l.peekNext() == '*' {
				startLine, startCol := l.line, l.col
				l.advance()
				l.advance()

				terminated := false
				for !l.atEnd() {
					if l.peek() == '*' && l.peekNext() == '/' {
						l.advance()
						l.advance()
						terminated = true
						break
					}

					l.advance()
				}

				if !terminated {
					return Token{
						Kind:   TOK_ERROR,
						Lexeme: "Unterminated block comment",
						Line:   startLine,
						Col:    startCol,
					}, true
				}
			} else {
				return Token{}, false
			}
		default:
			return Token{}, false
		}
	}

	return Token{}, false
}

func (l *Lexer) lexIdentOrKeyword() Token {
	start := l.pos
	startLine, startCol := l.line, l.col

	for !l.atEnd() && isIdentChar(l.peek()) {
		l.advance()
	}

	lexeme := l.source[start:l.pos]

	kind := TOK_IDENT
	if keywordKind, ok := keywordPatterns[lexeme]; ok {
		kind = keywordKind
	}

	return Token{Kind: kind, Lexeme: lexeme, Line: startLine, Col: startCol}
}

// lexNumber lexes an integer or simple decimal literal.  Exponents, hex and
// octal forms, and numeric suffixes are not part of the accepted subset.
func (l *Lexer) lexNumber() Token {
	start := l.pos
	startLine, startCol := l.line, l.col

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	return Token{Kind: TOK_NUMBER, Lexeme: l.source[start:l.pos], Line: startLine, Col: startCol}
}

// lexString lexes a string literal.  The lexeme keeps its surrounding quotes.
// A backslash escape skips the following character without interpreting it.
func (l *Lexer) lexString() Token {
	start := l.pos
	startLine, startCol := l.line, l.col

	l.advance() // opening "

	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\\' {
			l.advance()
			if !l.atEnd() {
				l.advance()
			}
		} else {
			l.advance()
		}
	}

	if l.atEnd() {
		return Token{Kind: TOK_ERROR, Lexeme: "Unterminated string", Line: startLine, Col: startCol}
	}

	l.advance() // closing "

	return Token{Kind: TOK_STRING, Lexeme: l.source[start:l.pos], Line: startLine, Col: startCol}
}

// lexCharLit lexes a character literal with the same escape handling as
// strings.
func (l *Lexer) lexCharLit() Token {
	start := l.pos
	startLine, startCol := l.line, l.col

	l.advance() // opening '

	for !l.atEnd() && l.peek() != '\'' {
		if l.peek() == '\\' {
			l.advance()
			if !l.atEnd() {
				l.advance()
			}
		} else {
			l.advance()
		}
	}

	if l.atEnd() {
		return Token{Kind: TOK_ERROR, Lexeme: "Unterminated character literal", Line: startLine, Col: startCol}
	}

	l.advance() // closing '

	return Token{Kind: TOK_CHARLIT, Lexeme: l.source[start:l.pos], Line: startLine, Col: startCol}
}

// lexPunctOrOper lexes a punctuation or operator symbol by greedy longest
// match against the symbol pattern table.
func (l *Lexer) lexPunctOrOper() Token {
	startLine, startCol := l.line, l.col

	c := l.advance()
	lexeme := string(c)

	kind, ok := symbolPatterns[lexeme]
	if !ok {
		return Token{
			Kind:   TOK_ERROR,
			Lexeme: fmt.Sprintf("Unexpected character: '%c'", c),
			Line:   startLine,
			Col:    startCol,
		}
	}

	for !l.atEnd() {
		if extKind, ok := symbolPatterns[lexeme+string(l.peek())]; ok {
			lexeme += string(l.advance())
			kind = extKind
		} else {
			break
		}
	}

	return Token{Kind: kind, Lexeme: lexeme, Line: startLine, Col: startCol}
}

// -----------------------------------------------------------------------------

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
