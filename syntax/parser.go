package syntax

import (
	"fmt"

	"github.com/DannyBimma/gb-en-compiler/ast"
	"github.com/DannyBimma/gb-en-compiler/report"
)

// Parser is a recursive-descent parser over a token sequence.  It moves over
// the tokens with a single cursor and one token of lookahead; the label and
// cast ambiguities are resolved with an explicit saved-cursor speculative
// lookahead.  All parsing functions assume that they begin with the parser
// centered on the first token of their production and consume every token of
// the production, leaving the parser on the next token.
//
// On a missing expected token the parser records a diagnostic and keeps
// going: the malformed construct becomes a nil node and parsing continues so
// that one error does not hide the rest of the file.  At the top level a
// function that fails to parse causes the parser to skip forward to the next
// plausible definition start.  If any error was recorded, Parse discards the
// tree and reports overall failure.
type Parser struct {
	tokens   []Token
	fileName string

	pos      int
	hadError bool
}

// NewParser creates a new parser for the given token sequence.  The sequence
// must end with an EOF token.
func NewParser(tokens []Token, fileName string) *Parser {
	return &Parser{tokens: tokens, fileName: fileName}
}

// Parse parses a complete translation unit.  It returns the program tree and
// true on success, or nil and false if any syntax error was recorded.
func Parse(tokens []Token, fileName string) (*ast.Program, bool) {
	p := NewParser(tokens, fileName)

	program := &ast.Program{NodeBase: ast.NewNodeBase(1, 1)}

	for !p.atEnd() {
		start := p.pos

		if decl := p.parseTopLevel(); decl != nil {
			program.Decls = append(program.Decls, decl)
			continue
		}

		// Recover by skipping to the next plausible definition start.
		if p.pos == start {
			p.advance()
		}
		for !p.atEnd() && !p.atDefinitionStart() {
			p.advance()
		}
	}

	if p.hadError {
		return nil, false
	}

	return program, true
}

// parseTopLevel parses one top-level definition: a function, a structure, an
// enumeration, or a typedef.
func (p *Parser) parseTopLevel() ast.Node {
	switch p.peek().Kind {
	case TOK_STRUCT:
		return p.parseStructDef()
	case TOK_ENUM:
		return p.parseEnumDef()
	case TOK_TYPEDEF:
		return p.parseTypedef()
	default:
		return p.parseFunction()
	}
}

// atDefinitionStart reports whether the current token can begin a top-level
// definition.  Used for error recovery only.
func (p *Parser) atDefinitionStart() bool {
	kind := p.peek().Kind
	return IsTypeKind(kind) || kind == TOK_STRUCT || kind == TOK_ENUM || kind == TOK_TYPEDEF
}

// -----------------------------------------------------------------------------

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[p.pos]
}

func (p *Parser) previous() Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == TOK_EOF
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.pos++
	}

	return p.previous()
}

func (p *Parser) check(kind int) bool {
	if p.atEnd() {
		return kind == TOK_EOF
	}

	return p.peek().Kind == kind
}

// match consumes the current token if its kind is one of the given kinds.
func (p *Parser) match(kinds ...int) bool {
	for _, kind := range kinds {
		if p.check(kind) && kind != TOK_EOF {
			p.advance()
			return true
		}
	}

	return false
}

// save returns the current cursor position for speculative lookahead.
func (p *Parser) save() int {
	return p.pos
}

// restore rewinds the cursor to a previously saved position.
func (p *Parser) restore(pos int) {
	p.pos = pos
}

// consume asserts that the current token has the given kind and consumes it.
// On a mismatch it records a diagnostic and leaves the cursor in place.
func (p *Parser) consume(kind int, msg string) (Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}

	p.errorAt(p.peek(), msg)
	return Token{}, false
}

// errorAt records a syntax error diagnostic at the given token.
func (p *Parser) errorAt(tok Token, msg string) {
	p.hadError = true
	report.ReportSyntaxError(p.fileName, tok.Line, tok.Col, msg)
}

func (p *Parser) errorAtf(tok Token, msg string, args ...interface{}) {
	p.errorAt(tok, fmt.Sprintf(msg, args...))
}

// -----------------------------------------------------------------------------

// typeKinds maps primitive type token kinds to their AST type.
var typeKinds = map[int]ast.PrimitiveType{
	TOK_INT:    ast.TypeInt,
	TOK_CHAR:   ast.TypeChar,
	TOK_FLOAT:  ast.TypeFloat,
	TOK_DOUBLE: ast.TypeDouble,
	TOK_VOID:   ast.TypeVoid,
}

// parseType consumes a primitive type keyword.
func (p *Parser) parseType(msg string) (ast.PrimitiveType, bool) {
	if typ, ok := typeKinds[p.peek().Kind]; ok {
		p.advance()
		return typ, true
	}

	p.errorAt(p.peek(), msg)
	return ast.TypeInt, false
}

// parseFunction parses a function definition:
// type IDENT '(' [param {',' param}] ')' '{' body '}'
func (p *Parser) parseFunction() ast.Node {
	start := p.peek()

	returnType, ok := p.parseType("Expected return type")
	if !ok {
		return nil
	}

	nameTok, ok := p.consume(TOK_IDENT, "Expected function name")
	if !ok {
		return nil
	}

	if _, ok := p.consume(TOK_LPAREN, "Expected '(' after function name"); !ok {
		return nil
	}

	var params []ast.Parameter
	if !p.check(TOK_RPAREN) {
		for {
			paramType, ok := p.parseType("Expected parameter type")
			if !ok {
				break
			}

			paramName, ok := p.consume(TOK_IDENT, "Expected parameter name")
			if !ok {
				break
			}

			isArray := false
			if p.match(TOK_LBRACKET) {
				isArray = true
				p.consume(TOK_RBRACKET, "Expected ']' after '['")
			}

			params = append(params, ast.Parameter{
				Type:    paramType,
				Name:    paramName.Lexeme,
				IsArray: isArray,
			})

			if !p.match(TOK_COMMA) {
				break
			}
		}
	}

	if _, ok := p.consume(TOK_RPAREN, "Expected ')' after parameters"); !ok {
		return nil
	}

	if _, ok := p.consume(TOK_LBRACE, "Expected '{' before function body"); !ok {
		return nil
	}

	body := p.parseBlock(p.previous())

	return &ast.Function{
		NodeBase:   ast.NewNodeBase(start.Line, start.Col),
		ReturnType: returnType,
		Name:       nameTok.Lexeme,
		Params:     params,
		Body:       body,
	}
}

// parseStructDef parses `struct IDENT '{' {type IDENT [ '[' [NUMBER] ']' ] ';'} '}' ';'`.
func (p *Parser) parseStructDef() ast.Node {
	start := p.advance() // struct

	nameTok, ok := p.consume(TOK_IDENT, "Expected structure name")
	if !ok {
		return nil
	}

	if _, ok := p.consume(TOK_LBRACE, "Expected '{' after structure name"); !ok {
		return nil
	}

	var fields []ast.StructField
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		fieldType, ok := p.parseType("Expected member type")
		if !ok {
			break
		}

		fieldName, ok := p.consume(TOK_IDENT, "Expected member name")
		if !ok {
			break
		}

		isArray := false
		if p.match(TOK_LBRACKET) {
			isArray = true
			if !p.check(TOK_RBRACKET) {
				p.parseExpression()
			}
			p.consume(TOK_RBRACKET, "Expected ']' after array size")
		}

		p.consume(TOK_SEMICOLON, "Expected ';' after structure member")

		fields = append(fields, ast.StructField{
			Type:    fieldType,
			Name:    fieldName.Lexeme,
			IsArray: isArray,
		})
	}

	p.consume(TOK_RBRACE, "Expected '}' after structure members")
	p.consume(TOK_SEMICOLON, "Expected ';' after structure definition")

	return &ast.StructDef{
		NodeBase: ast.NewNodeBase(start.Line, start.Col),
		Name:     nameTok.Lexeme,
		Fields:   fields,
	}
}

// parseEnumDef parses `enum IDENT '{' IDENT {',' IDENT} '}' ';'`.
func (p *Parser) parseEnumDef() ast.Node {
	start := p.advance() // enum

	nameTok, ok := p.consume(TOK_IDENT, "Expected enumeration name")
	if !ok {
		return nil
	}

	if _, ok := p.consume(TOK_LBRACE, "Expected '{' after enumeration name"); !ok {
		return nil
	}

	var constants []string
	if !p.check(TOK_RBRACE) {
		for {
			constTok, ok := p.consume(TOK_IDENT, "Expected enumeration constant")
			if !ok {
				break
			}

			constants = append(constants, constTok.Lexeme)

			if !p.match(TOK_COMMA) {
				break
			}
		}
	}

	p.consume(TOK_RBRACE, "Expected '}' after enumeration constants")
	p.consume(TOK_SEMICOLON, "Expected ';' after enumeration definition")

	return &ast.EnumDef{
		NodeBase:  ast.NewNodeBase(start.Line, start.Col),
		Name:      nameTok.Lexeme,
		Constants: constants,
	}
}

// parseTypedef parses `typedef type IDENT ';'`.
func (p *Parser) parseTypedef() ast.Node {
	start := p.advance() // typedef

	underlying, ok := p.parseType("Expected type after 'typedef'")
	if !ok {
		return nil
	}

	nameTok, ok := p.consume(TOK_IDENT, "Expected typedef name")
	if !ok {
		return nil
	}

	p.consume(TOK_SEMICOLON, "Expected ';' after typedef")

	return &ast.Typedef{
		NodeBase:   ast.NewNodeBase(start.Line, start.Col),
		Underlying: underlying,
		Name:       nameTok.Lexeme,
	}
}
