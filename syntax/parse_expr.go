package syntax

import "github.com/DannyBimma/gb-en-compiler/ast"

// Expression grammar, precedence low to high:
//
//	assignment / compound assignment   (right-associative)
//	ternary                            (right-associative)
//	logical-or
//	logical-and
//	bitwise-or
//	bitwise-xor
//	bitwise-and
//	equality
//	relational
//	shift
//	additive
//	multiplicative
//	unary    (prefix ! - + ++ -- & ~ *)
//	postfix  (. -> [] ++ --)
//	primary

var compoundOps = map[int]ast.CompoundOperator{
	TOK_PLUS_ASSIGN:    ast.CompAdd,
	TOK_MINUS_ASSIGN:   ast.CompSub,
	TOK_STAR_ASSIGN:    ast.CompMul,
	TOK_SLASH_ASSIGN:   ast.CompDiv,
	TOK_PERCENT_ASSIGN: ast.CompMod,
	TOK_AND_ASSIGN:     ast.CompBitAnd,
	TOK_OR_ASSIGN:      ast.CompBitOr,
	TOK_XOR_ASSIGN:     ast.CompBitXor,
	TOK_SHL_ASSIGN:     ast.CompShl,
	TOK_SHR_ASSIGN:     ast.CompShr,
}

var binaryOps = map[int]ast.BinaryOperator{
	TOK_PLUS:    ast.BinAdd,
	TOK_MINUS:   ast.BinSub,
	TOK_STAR:    ast.BinMul,
	TOK_SLASH:   ast.BinDiv,
	TOK_PERCENT: ast.BinMod,
	TOK_EQ:      ast.BinEq,
	TOK_NEQ:     ast.BinNeq,
	TOK_LT:      ast.BinLt,
	TOK_LEQ:     ast.BinLeq,
	TOK_GT:      ast.BinGt,
	TOK_GEQ:     ast.BinGeq,
	TOK_LAND:    ast.BinLogAnd,
	TOK_LOR:     ast.BinLogOr,
	TOK_AMP:     ast.BinBitAnd,
	TOK_PIPE:    ast.BinBitOr,
	TOK_CARET:   ast.BinBitXor,
	TOK_SHL:     ast.BinShl,
	TOK_SHR:     ast.BinShr,
}

var prefixOps = map[int]ast.UnaryOperator{
	TOK_NOT:   ast.UnNot,
	TOK_MINUS: ast.UnNeg,
	TOK_PLUS:  ast.UnPlus,
	TOK_INC:   ast.UnPreInc,
	TOK_DEC:   ast.UnPreDec,
	TOK_AMP:   ast.UnAddrOf,
	TOK_TILDE: ast.UnCompl,
	TOK_STAR:  ast.UnDeref,
}

func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Node {
	expr := p.parseTernary()

	if p.match(TOK_ASSIGN) {
		opTok := p.previous()
		value := p.parseAssignment()
		return &ast.Assignment{
			NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
			Target:   expr,
			Value:    value,
		}
	}

	if op, ok := compoundOps[p.peek().Kind]; ok {
		opTok := p.advance()
		value := p.parseAssignment()
		return &ast.CompoundAssignment{
			NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
			Op:       op,
			Target:   expr,
			Value:    value,
		}
	}

	return expr
}

func (p *Parser) parseTernary() ast.Node {
	cond := p.parseLogicalOr()

	if p.match(TOK_QUESTION) {
		opTok := p.previous()
		then := p.parseExpression()
		p.consume(TOK_COLON, "Expected ':' in conditional expression")
		els := p.parseTernary()

		return &ast.Ternary{
			NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
			Cond:     cond,
			Then:     then,
			Else:     els,
		}
	}

	return cond
}

// parseBinaryLevel parses one left-associative binary precedence level.
func (p *Parser) parseBinaryLevel(next func() ast.Node, kinds ...int) ast.Node {
	left := next()

	for p.match(kinds...) {
		opTok := p.previous()
		right := next()
		left = &ast.BinaryOp{
			NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
			Op:       binaryOps[opTok.Kind],
			Left:     left,
			Right:    right,
		}
	}

	return left
}

func (p *Parser) parseLogicalOr() ast.Node {
	return p.parseBinaryLevel(p.parseLogicalAnd, TOK_LOR)
}

func (p *Parser) parseLogicalAnd() ast.Node {
	return p.parseBinaryLevel(p.parseBitOr, TOK_LAND)
}

func (p *Parser) parseBitOr() ast.Node {
	return p.parseBinaryLevel(p.parseBitXor, TOK_PIPE)
}

func (p *Parser) parseBitXor() ast.Node {
	return p.parseBinaryLevel(p.parseBitAnd, TOK_CARET)
}

func (p *Parser) parseBitAnd() ast.Node {
	return p.parseBinaryLevel(p.parseEquality, TOK_AMP)
}

func (p *Parser) parseEquality() ast.Node {
	return p.parseBinaryLevel(p.parseRelational, TOK_EQ, TOK_NEQ)
}

func (p *Parser) parseRelational() ast.Node {
	return p.parseBinaryLevel(p.parseShift, TOK_LT, TOK_LEQ, TOK_GT, TOK_GEQ)
}

func (p *Parser) parseShift() ast.Node {
	return p.parseBinaryLevel(p.parseAdditive, TOK_SHL, TOK_SHR)
}

func (p *Parser) parseAdditive() ast.Node {
	return p.parseBinaryLevel(p.parseMultiplicative, TOK_PLUS, TOK_MINUS)
}

func (p *Parser) parseMultiplicative() ast.Node {
	return p.parseBinaryLevel(p.parseUnary, TOK_STAR, TOK_SLASH, TOK_PERCENT)
}

func (p *Parser) parseUnary() ast.Node {
	if op, ok := prefixOps[p.peek().Kind]; ok {
		opTok := p.advance()
		return &ast.UnaryOp{
			NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
			Op:       op,
			Operand:  p.parseUnary(),
		}
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Node {
	expr := p.parsePrimary()

	for {
		switch p.peek().Kind {
		case TOK_DOT:
			opTok := p.advance()
			memberTok, ok := p.consume(TOK_IDENT, "Expected member name after '.'")
			if !ok {
				return expr
			}
			expr = &ast.MemberAccess{
				NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
				Object:   expr,
				Member:   memberTok.Lexeme,
			}
		case TOK_ARROW:
			opTok := p.advance()
			memberTok, ok := p.consume(TOK_IDENT, "Expected member name after '->'")
			if !ok {
				return expr
			}
			expr = &ast.MemberAccess{
				NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
				Object:   expr,
				Member:   memberTok.Lexeme,
				IsArrow:  true,
			}
		case TOK_INC:
			opTok := p.advance()
			expr = &ast.UnaryOp{
				NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
				Op:       ast.UnPostInc,
				Operand:  expr,
			}
		case TOK_DEC:
			opTok := p.advance()
			expr = &ast.UnaryOp{
				NodeBase: ast.NewNodeBase(opTok.Line, opTok.Col),
				Op:       ast.UnPostDec,
				Operand:  expr,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Node {
	tok := p.peek()

	switch tok.Kind {
	case TOK_NUMBER:
		p.advance()
		return &ast.Literal{
			NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
			Kind:     ast.LitNumber,
			Value:    tok.Lexeme,
		}
	case TOK_STRING:
		p.advance()
		return &ast.Literal{
			NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
			Kind:     ast.LitString,
			Value:    tok.Lexeme,
		}
	case TOK_CHARLIT:
		p.advance()
		return &ast.Literal{
			NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
			Kind:     ast.LitChar,
			Value:    tok.Lexeme,
		}
	case TOK_SIZEOF:
		return p.parseSizeOf()
	case TOK_IDENT:
		return p.parseIdentExpr()
	case TOK_LPAREN:
		p.advance()

		// A type keyword directly after '(' can only be a cast, since type
		// keywords never begin an expression.
		if IsTypeKind(p.peek().Kind) {
			target, _ := p.parseType("Expected type")
			p.consume(TOK_RPAREN, "Expected ')' after cast type")
			return &ast.Cast{
				NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
				Target:   target,
				Operand:  p.parseUnary(),
			}
		}

		expr := p.parseExpression()
		p.consume(TOK_RPAREN, "Expected ')' after expression")
		return expr
	}

	p.errorAt(tok, "Expected expression")
	return nil
}

// parseIdentExpr parses an identifier reference, a function call, or an
// array access.
func (p *Parser) parseIdentExpr() ast.Node {
	nameTok := p.advance()

	// Function call.
	if p.match(TOK_LPAREN) {
		var args []ast.Node
		if !p.check(TOK_RPAREN) {
			for {
				args = append(args, p.parseExpression())
				if !p.match(TOK_COMMA) {
					break
				}
			}
		}

		p.consume(TOK_RPAREN, "Expected ')' after arguments")

		return &ast.FunctionCall{
			NodeBase: ast.NewNodeBase(nameTok.Line, nameTok.Col),
			Name:     nameTok.Lexeme,
			Args:     args,
		}
	}

	// Array access.
	if p.match(TOK_LBRACKET) {
		index := p.parseExpression()
		p.consume(TOK_RBRACKET, "Expected ']' after array index")

		return &ast.ArrayAccess{
			NodeBase: ast.NewNodeBase(nameTok.Line, nameTok.Col),
			Name:     nameTok.Lexeme,
			Index:    index,
		}
	}

	return &ast.Identifier{
		NodeBase: ast.NewNodeBase(nameTok.Line, nameTok.Col),
		Name:     nameTok.Lexeme,
	}
}

// parseSizeOf parses `sizeof(type)`, `sizeof(expr)`, or `sizeof expr`.
func (p *Parser) parseSizeOf() ast.Node {
	tok := p.advance() // sizeof

	if p.match(TOK_LPAREN) {
		if IsTypeKind(p.peek().Kind) {
			typ, _ := p.parseType("Expected type")
			p.consume(TOK_RPAREN, "Expected ')' after sizeof type")
			return &ast.SizeOf{
				NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
				TypeName: typ.String(),
			}
		}

		operand := p.parseExpression()
		p.consume(TOK_RPAREN, "Expected ')' after sizeof expression")
		return &ast.SizeOf{
			NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
			Operand:  operand,
		}
	}

	return &ast.SizeOf{
		NodeBase: ast.NewNodeBase(tok.Line, tok.Col),
		Operand:  p.parseUnary(),
	}
}
