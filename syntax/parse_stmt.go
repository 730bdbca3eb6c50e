package syntax

import "github.com/DannyBimma/gb-en-compiler/ast"

// parseBlock parses the statements of a brace-delimited block.  The opening
// brace must already be consumed and is passed in for its position.
func (p *Parser) parseBlock(openBrace Token) *ast.Block {
	block := &ast.Block{NodeBase: ast.NewNodeBase(openBrace.Line, openBrace.Col)}

	for !p.check(TOK_RBRACE) && !p.atEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	p.consume(TOK_RBRACE, "Expected '}' after block")
	return block
}

// parseStatement parses a single statement.  A nil return indicates a
// malformed statement that has already been reported.
func (p *Parser) parseStatement() ast.Node {
	if IsTypeKind(p.peek().Kind) {
		return p.parseDeclaration()
	}

	switch p.peek().Kind {
	case TOK_IF:
		return p.parseIf()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_DO:
		return p.parseDoWhile()
	case TOK_FOR:
		return p.parseFor()
	case TOK_SWITCH:
		return p.parseSwitch()
	case TOK_RETURN:
		return p.parseReturn()
	case TOK_BREAK:
		tok := p.advance()
		p.consume(TOK_SEMICOLON, "Expected ';' after break")
		return &ast.Break{NodeBase: ast.NewNodeBase(tok.Line, tok.Col)}
	case TOK_CONTINUE:
		tok := p.advance()
		p.consume(TOK_SEMICOLON, "Expected ';' after continue")
		return &ast.Continue{NodeBase: ast.NewNodeBase(tok.Line, tok.Col)}
	case TOK_GOTO:
		return p.parseGoto()
	case TOK_LBRACE:
		return p.parseBlock(p.advance())
	case TOK_IDENT:
		// A label is an identifier immediately followed by a colon.  This is
		// only distinguishable from an expression statement one token past the
		// identifier, so peek speculatively and rewind if it is not a label.
		saved := p.save()
		identTok := p.advance()
		if p.match(TOK_COLON) {
			return p.parseLabelBody(identTok)
		}
		p.restore(saved)
	}

	return p.parseExpressionStatement()
}

// parseDeclaration parses a scalar or array variable declaration.
func (p *Parser) parseDeclaration() ast.Node {
	typeTok := p.peek()
	declType, _ := p.parseType("Expected type")

	nameTok, ok := p.consume(TOK_IDENT, "Expected variable name")
	if !ok {
		return nil
	}

	// Array declaration.
	if p.match(TOK_LBRACKET) {
		var size ast.Node
		if !p.check(TOK_RBRACKET) {
			size = p.parseExpression()
		}
		p.consume(TOK_RBRACKET, "Expected ']' after array size")
		p.consume(TOK_SEMICOLON, "Expected ';' after declaration")

		return &ast.Declaration{
			NodeBase: ast.NewNodeBase(typeTok.Line, typeTok.Col),
			Type:     declType,
			Name:     nameTok.Lexeme,
			IsArray:  true,
			Size:     size,
		}
	}

	// Scalar declaration with optional initializer.
	var init ast.Node
	if p.match(TOK_ASSIGN) {
		init = p.parseExpression()
	}

	p.consume(TOK_SEMICOLON, "Expected ';' after declaration")

	return &ast.Declaration{
		NodeBase: ast.NewNodeBase(typeTok.Line, typeTok.Col),
		Type:     declType,
		Name:     nameTok.Lexeme,
		Init:     init,
	}
}

// parseControlBody parses the body of a control statement: either a braced
// block or a single statement.
func (p *Parser) parseControlBody() ast.Node {
	if p.match(TOK_LBRACE) {
		return p.parseBlock(p.previous())
	}

	return p.parseStatement()
}

func (p *Parser) parseIf() ast.Node {
	tok := p.advance() // if

	p.consume(TOK_LPAREN, "Expected '(' after 'if'")
	cond := p.parseExpression()
	p.consume(TOK_RPAREN, "Expected ')' after condition")

	then := p.parseControlBody()

	var els ast.Node
	if p.match(TOK_ELSE) {
		els = p.parseControlBody()
	}

	return &ast.If{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
}

func (p *Parser) parseWhile() ast.Node {
	tok := p.advance() // while

	p.consume(TOK_LPAREN, "Expected '(' after 'while'")
	cond := p.parseExpression()
	p.consume(TOK_RPAREN, "Expected ')' after condition")

	return &ast.While{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Cond:     cond,
		Body:     p.parseControlBody(),
	}
}

func (p *Parser) parseDoWhile() ast.Node {
	tok := p.advance() // do

	body := p.parseControlBody()

	p.consume(TOK_WHILE, "Expected 'while' after do body")
	p.consume(TOK_LPAREN, "Expected '(' after 'while'")
	cond := p.parseExpression()
	p.consume(TOK_RPAREN, "Expected ')' after condition")
	p.consume(TOK_SEMICOLON, "Expected ';' after do-while")

	return &ast.DoWhile{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Body:     body,
		Cond:     cond,
	}
}

func (p *Parser) parseFor() ast.Node {
	tok := p.advance() // for

	p.consume(TOK_LPAREN, "Expected '(' after 'for'")

	// Init clause: may be a declaration (which consumes its own semicolon),
	// an expression, or empty.
	var init ast.Node
	if !p.check(TOK_SEMICOLON) {
		if IsTypeKind(p.peek().Kind) {
			init = p.parseDeclaration()
		} else {
			init = p.parseExpression()
			p.consume(TOK_SEMICOLON, "Expected ';' after loop initializer")
		}
	} else {
		p.advance()
	}

	var cond ast.Node
	if !p.check(TOK_SEMICOLON) {
		cond = p.parseExpression()
	}
	p.consume(TOK_SEMICOLON, "Expected ';' after loop condition")

	var post ast.Node
	if !p.check(TOK_RPAREN) {
		post = p.parseExpression()
	}
	p.consume(TOK_RPAREN, "Expected ')' after for clauses")

	return &ast.For{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Init:     init,
		Cond:     cond,
		Post:     post,
		Body:     p.parseControlBody(),
	}
}

func (p *Parser) parseSwitch() ast.Node {
	tok := p.advance() // switch

	p.consume(TOK_LPAREN, "Expected '(' after 'switch'")
	tag := p.parseExpression()
	p.consume(TOK_RPAREN, "Expected ')' after switch expression")
	p.consume(TOK_LBRACE, "Expected '{' after switch expression")

	var cases []*ast.CaseClause
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		switch p.peek().Kind {
		case TOK_CASE:
			caseTok := p.advance()
			value := p.parseExpression()
			p.consume(TOK_COLON, "Expected ':' after case value")
			cases = append(cases, &ast.CaseClause{
				NodeBase: ast.NewNodeBase(caseTok.Line, caseTok.Col),
				Value:    value,
				Body:     p.parseCaseBody(),
			})
		case TOK_DEFAULT:
			defTok := p.advance()
			p.consume(TOK_COLON, "Expected ':' after 'default'")
			cases = append(cases, &ast.CaseClause{
				NodeBase: ast.NewNodeBase(defTok.Line, defTok.Col),
				Body:     p.parseCaseBody(),
			})
		default:
			p.errorAt(p.peek(), "Expected 'case' or 'default' in switch body")
			p.advance()
		}
	}

	p.consume(TOK_RBRACE, "Expected '}' after switch body")

	return &ast.Switch{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Tag:      tag,
		Cases:    cases,
	}
}

// parseCaseBody parses the statements of one case clause: everything until
// the next case label or the end of the switch.  Fallthrough is structural,
// so nothing special ends a clause.
func (p *Parser) parseCaseBody() []ast.Node {
	var stmts []ast.Node
	for !p.check(TOK_CASE) && !p.check(TOK_DEFAULT) && !p.check(TOK_RBRACE) && !p.atEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.advance() // return

	var value ast.Node
	if !p.check(TOK_SEMICOLON) {
		value = p.parseExpression()
	}
	p.consume(TOK_SEMICOLON, "Expected ';' after return")

	return &ast.Return{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Value:    value,
	}
}

func (p *Parser) parseGoto() ast.Node {
	tok := p.advance() // goto

	targetTok, ok := p.consume(TOK_IDENT, "Expected label after 'goto'")
	if !ok {
		return nil
	}
	p.consume(TOK_SEMICOLON, "Expected ';' after goto")

	return &ast.Goto{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Target:   targetTok.Lexeme,
	}
}

// parseLabelBody parses the statement following a label.  A label directly
// before a closing brace or a case label carries no statement.
func (p *Parser) parseLabelBody(identTok Token) ast.Node {
	label := &ast.Label{
		NodeBase: ast.NewNodeBase(identTok.Line, identTok.Col),
		Name:     identTok.Lexeme,
	}

	switch p.peek().Kind {
	case TOK_RBRACE, TOK_CASE, TOK_DEFAULT, TOK_EOF:
	default:
		label.Stmt = p.parseStatement()
	}

	return label
}

func (p *Parser) parseExpressionStatement() ast.Node {
	start := p.pos

	expr := p.parseExpression()
	p.consume(TOK_SEMICOLON, "Expected ';' after expression")

	// Guarantee forward progress: a token that cannot begin an expression has
	// already been reported, but nothing consumed it.
	if expr == nil && p.pos == start && !p.atEnd() {
		p.advance()
	}

	return expr
}
