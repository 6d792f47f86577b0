package mython

// parseClassDef implements:
//
//	class_def := 'class' ID ('(' ID ')')? ':' NEWLINE suite
//
// where suite here is always a run of `def` method declarations. The
// class name is registered in the symbol table before the body is
// parsed, so `Name(...)` inside the class's own methods parses as a
// constructor call. At run time that call looks the class up by name in
// the method's scope, which holds only self and the parameters, so it
// fails with an unbound-name error.
func (p *parser) parseClassDef() (Statement, error) {
	p.cur.Next() // consume 'class'

	nameTok, err := p.cur.Expect(tokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.Str
	p.cur.Next()

	def := &ClassDefinition{Name: name}

	if p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == '(' {
		p.cur.Next()
		parentTok, err := p.cur.Expect(tokenID)
		if err != nil {
			return nil, err
		}
		if !p.classes[parentTok.Str] {
			return nil, &ParseError{Pos: parentTok.Pos, Msg: "unknown parent class " + parentTok.Str}
		}
		def.HasParent = true
		def.ParentName = parentTok.Str
		p.cur.Next()
		if err := p.cur.ExpectChar(')'); err != nil {
			return nil, err
		}
		p.cur.Next()
	}

	p.classes[name] = true

	if err := p.cur.ExpectChar(':'); err != nil {
		return nil, err
	}
	p.cur.Next()
	if _, err := p.cur.Expect(tokenNewline); err != nil {
		return nil, err
	}
	p.cur.Next()

	methods, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	def.Methods = methods
	return def, nil
}

// parseClassBody implements the class suite: `INDENT def+ DEDENT`.
// Mython classes carry no statements of their own besides method
// definitions (there is no class-body field or class-level
// expression), so every statement inside is required to be a `def`.
func (p *parser) parseClassBody() ([]MethodDecl, error) {
	if _, err := p.cur.Expect(tokenIndent); err != nil {
		return nil, err
	}
	p.cur.Next()

	var methods []MethodDecl
	for !p.cur.Current().Is(tokenDedent) {
		if !p.cur.Current().Is(tokenDef) {
			return nil, p.errorf("only method definitions are allowed in a class body")
		}
		m, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	p.cur.Next()
	return methods, nil
}

// parseMethodDecl implements:
//
//	def := 'def' ID '(' params? ')' ':' NEWLINE suite
func (p *parser) parseMethodDecl() (MethodDecl, error) {
	p.cur.Next() // consume 'def'

	nameTok, err := p.cur.Expect(tokenID)
	if err != nil {
		return MethodDecl{}, err
	}
	name := nameTok.Str
	p.cur.Next()

	if err := p.cur.ExpectChar('('); err != nil {
		return MethodDecl{}, err
	}
	p.cur.Next()

	var params []string
	if !(p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == ')') {
		for {
			idTok, err := p.cur.Expect(tokenID)
			if err != nil {
				return MethodDecl{}, err
			}
			params = append(params, idTok.Str)
			p.cur.Next()
			if p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == ',' {
				p.cur.Next()
				continue
			}
			break
		}
	}
	// A leading self names the receiver that callMethod binds on its own;
	// it is not a formal parameter and does not count toward arity.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	if err := p.cur.ExpectChar(')'); err != nil {
		return MethodDecl{}, err
	}
	p.cur.Next()
	if err := p.cur.ExpectChar(':'); err != nil {
		return MethodDecl{}, err
	}
	p.cur.Next()
	if _, err := p.cur.Expect(tokenNewline); err != nil {
		return MethodDecl{}, err
	}
	p.cur.Next()

	body, err := p.parseSuite()
	if err != nil {
		return MethodDecl{}, err
	}

	return MethodDecl{Name: name, Params: params, Body: &MethodBody{Body: body}}, nil
}

// parseIfStmt implements:
//
//	if_stmt := 'if' expr ':' NEWLINE suite ('else' ':' NEWLINE suite)?
//
// spec.md's Non-goals exclude `elif`; an else-if chain is written as a
// single IfElse nested inside the else suite.
func (p *parser) parseIfStmt() (Statement, error) {
	p.cur.Next() // consume 'if'

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.cur.ExpectChar(':'); err != nil {
		return nil, err
	}
	p.cur.Next()
	if _, err := p.cur.Expect(tokenNewline); err != nil {
		return nil, err
	}
	p.cur.Next()

	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	stmt := &IfElse{Cond: cond, Then: then}

	if p.cur.Current().Is(tokenElse) {
		p.cur.Next()
		if err := p.cur.ExpectChar(':'); err != nil {
			return nil, err
		}
		p.cur.Next()
		if _, err := p.cur.Expect(tokenNewline); err != nil {
			return nil, err
		}
		p.cur.Next()

		elseBody, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBody
	}

	return stmt, nil
}

// parsePrintStmt implements `print_stmt := 'print' (expr (',' expr)*)?`.
func (p *parser) parsePrintStmt() (Statement, error) {
	p.cur.Next() // consume 'print'

	if p.cur.Current().Is(tokenNewline) {
		return &Print{}, nil
	}

	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return &Print{Args: args}, nil
}

// parseReturnStmt implements `return_stmt := 'return' expr?`.
func (p *parser) parseReturnStmt() (Statement, error) {
	p.cur.Next() // consume 'return'

	if p.cur.Current().Is(tokenNewline) {
		return &Return{}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Return{Value: expr}, nil
}

// parseExprList parses a comma-separated run of expr productions, used
// by print_stmt and constructor/method call argument lists.
func (p *parser) parseExprList() ([]Expression, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []Expression{first}
	for p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == ',' {
		p.cur.Next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// parseAssignmentOrExprStmt implements `assignment := dotted_id '='
// expr | expr_stmt := expr`. It parses a full expression first; if
// that expression turned out to be a bare VariableValue (no call was
// applied to it) and '=' follows, it is reinterpreted as an assignment
// or field assignment instead of being evaluated for effect.
func (p *parser) parseAssignmentOrExprStmt() (Statement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if v, ok := expr.(*VariableValue); ok && p.cur.Current().Is(tokenChar) && p.cur.Current().Ch == '=' {
		p.cur.Next()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if len(v.Names) == 1 {
			return &Assignment{Name: v.Names[0], Value: rhs}, nil
		}
		var obj Expression = &VariableValue{Names: v.Names[:len(v.Names)-1]}
		return &FieldAssignment{Object: obj, Field: v.Names[len(v.Names)-1], Value: rhs}, nil
	}

	return expr, nil
}
