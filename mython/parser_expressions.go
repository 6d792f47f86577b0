package mython

// parseExpr is the grammar's `expr` entry point.
func (p *parser) parseExpr() (Expression, error) {
	return p.parseOrExpr()
}

// parseOrExpr implements `or_expr := and_expr ('or' and_expr)*`.
func (p *parser) parseOrExpr() (Expression, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Is(tokenOr) {
		p.cur.Next()
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

// parseAndExpr implements `and_expr := not_expr ('and' not_expr)*`.
func (p *parser) parseAndExpr() (Expression, error) {
	left, err := p.parseNotExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Is(tokenAnd) {
		p.cur.Next()
		right, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Op: OpAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseNotExpr implements `not_expr := 'not' not_expr | cmp_expr`.
func (p *parser) parseNotExpr() (Expression, error) {
	if p.cur.Current().Is(tokenNot) {
		p.cur.Next()
		operand, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parseCmpExpr()
}

var cmpOps = map[TokenType]BinaryOp{
	tokenEq:          OpEq,
	tokenNotEq:       OpNotEq,
	tokenLessOrEq:    OpLessEq,
	tokenGreaterOrEq: OpGreaterEq,
}

// parseCmpExpr implements `cmp_expr := add_expr (CMP add_expr)*`, where
// CMP additionally covers the single-byte '<' and '>' chars not
// represented by their own token type.
func (p *parser) parseCmpExpr() (Expression, error) {
	left, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur.Current()
		var op BinaryOp
		switch {
		case tok.Is(tokenChar) && tok.Ch == '<':
			op = OpLess
		case tok.Is(tokenChar) && tok.Ch == '>':
			op = OpGreater
		default:
			var ok bool
			op, ok = cmpOps[tok.Type]
			if !ok {
				return left, nil
			}
		}
		p.cur.Next()
		right, err := p.parseAddExpr()
		if err != nil {
			return nil, err
		}
		left = &Comparison{Op: op, Left: left, Right: right}
	}
}

// parseAddExpr implements `add_expr := mul_expr (('+'|'-') mul_expr)*`.
func (p *parser) parseAddExpr() (Expression, error) {
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Is(tokenChar) && (p.cur.Current().Ch == '+' || p.cur.Current().Ch == '-') {
		op := OpAdd
		if p.cur.Current().Ch == '-' {
			op = OpSub
		}
		p.cur.Next()
		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}
		left = &Arithmetic{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseMulExpr implements `mul_expr := unary (('*'|'/') unary)*`.
func (p *parser) parseMulExpr() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Current().Is(tokenChar) && (p.cur.Current().Ch == '*' || p.cur.Current().Ch == '/') {
		op := OpMul
		if p.cur.Current().Ch == '/' {
			op = OpDiv
		}
		p.cur.Next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Arithmetic{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary implements `unary := '-' unary | primary`. A leading
// minus is desugared to `0 - operand` since Arithmetic has no unary
// form.
func (p *parser) parseUnary() (Expression, error) {
	if p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == '-' {
		p.cur.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Arithmetic{Op: OpSub, Left: &NumericConst{Value: 0}, Right: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary implements:
//
//	primary := NUMBER | STRING | 'True' | 'False' | 'None'
//	         | dotted_id ('(' arg_list? ')')?
//	         | ID '(' arg_list? ')'
//	         | '(' expr ')'
//
// The two ID-led alternatives collapse into one path here: a dotted_id
// chain is read, then if '(' follows, the call is either a
// constructor invocation (when the chain is a single name already
// registered as a class) or a method call on the chain's prefix.
func (p *parser) parsePrimary() (Expression, error) {
	tok := p.cur.Current()
	switch {
	case tok.Is(tokenNumber):
		p.cur.Next()
		return &NumericConst{Value: tok.Num}, nil
	case tok.Is(tokenString):
		p.cur.Next()
		return &StringConst{Value: tok.Str}, nil
	case tok.Is(tokenTrue):
		p.cur.Next()
		return &BoolConst{Value: true}, nil
	case tok.Is(tokenFalse):
		p.cur.Next()
		return &BoolConst{Value: false}, nil
	case tok.Is(tokenNone):
		p.cur.Next()
		return &NoneConst{}, nil
	case tok.Is(tokenChar) && tok.Ch == '(':
		p.cur.Next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.cur.ExpectChar(')'); err != nil {
			return nil, err
		}
		p.cur.Next()
		return inner, nil
	case tok.Is(tokenID):
		return p.parseDottedIDOrCall()
	default:
		return nil, p.errorf("unexpected token " + tok.String() + " in expression")
	}
}

// parseDottedIDOrCall reads a dotted_id chain and, if '(' follows,
// the trailing call.
func (p *parser) parseDottedIDOrCall() (Expression, error) {
	first, err := p.cur.Expect(tokenID)
	if err != nil {
		return nil, err
	}
	names := []string{first.Str}
	p.cur.Next()

	for p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == '.' {
		p.cur.Next()
		idTok, err := p.cur.Expect(tokenID)
		if err != nil {
			return nil, err
		}
		names = append(names, idTok.Str)
		p.cur.Next()
	}

	if !(p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == '(') {
		return &VariableValue{Names: names}, nil
	}
	p.cur.Next()

	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}

	if len(names) == 1 && names[0] == "str" && !p.classes["str"] {
		if len(args) != 1 {
			return nil, p.errorf("str() takes exactly one argument")
		}
		return &Stringify{Arg: args[0]}, nil
	}
	if len(names) == 1 && p.classes[names[0]] {
		return &NewInstance{ClassExpr: &VariableValue{Names: names}, Args: args}, nil
	}
	if len(names) == 1 {
		return nil, p.errorf(names[0] + " is not a known class or a callable name")
	}

	receiver := &VariableValue{Names: names[:len(names)-1]}
	return &MethodCall{Receiver: receiver, MethodName: names[len(names)-1], Args: args}, nil
}

// parseArgList implements `arg_list := expr (',' expr)*`, already
// past the opening '(' and consuming the closing ')'.
func (p *parser) parseArgList() ([]Expression, error) {
	if p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == ')' {
		p.cur.Next()
		return nil, nil
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.cur.ExpectChar(')'); err != nil {
		return nil, err
	}
	p.cur.Next()
	return args, nil
}
