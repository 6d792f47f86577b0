package mython

// parser drives the recursive-descent grammar over a token Cursor,
// producing an executable Compound for the whole program. It keeps a
// running table of class names seen so far so that `ID(...)` in
// primary position can be classified as a constructor call the moment
// the identifier names a known class (spec.md §4.E).
type parser struct {
	cur     *Cursor
	classes map[string]bool
}

// Parse consumes an already-lexed token stream and returns the
// program's top-level Compound.
func Parse(tokens []Token) (Statement, error) {
	p := &parser{cur: NewCursor(tokens), classes: make(map[string]bool)}
	return p.parseProgram()
}

// parseProgram implements `program := statement* EOF`.
func (p *parser) parseProgram() (Statement, error) {
	var stmts []Statement
	for !p.cur.Current().Is(tokenEOF) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &Compound{Statements: stmts}, nil
}

// parseStatement implements `statement := simple_stmt NEWLINE |
// compound_stmt`, restricted to the two compound forms that can occur
// outside a class body (`def` only means something as a method, so
// it is parsed directly by parseClassBody rather than routed here).
func (p *parser) parseStatement() (Statement, error) {
	switch p.cur.Current().Type {
	case tokenClass:
		return p.parseClassDef()
	case tokenIf:
		return p.parseIfStmt()
	case tokenDef:
		return nil, p.errorf("method definition outside a class body")
	default:
		return p.parseSimpleStmt()
	}
}

// parseSimpleStmt implements `simple_stmt := assignment | print_stmt |
// return_stmt | expr_stmt`, each followed by a terminating NEWLINE.
func (p *parser) parseSimpleStmt() (Statement, error) {
	var stmt Statement
	var err error

	switch p.cur.Current().Type {
	case tokenPrint:
		stmt, err = p.parsePrintStmt()
	case tokenReturn:
		stmt, err = p.parseReturnStmt()
	default:
		stmt, err = p.parseAssignmentOrExprStmt()
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.cur.Expect(tokenNewline); err != nil {
		return nil, err
	}
	p.cur.Next()
	return stmt, nil
}

// parseSuite implements `suite := INDENT statement+ DEDENT` for a
// block that may only contain statement/if_stmt/class_def — i.e. every
// suite except a class body, which parseClassBody handles separately.
func (p *parser) parseSuite() (Statement, error) {
	if _, err := p.cur.Expect(tokenIndent); err != nil {
		return nil, err
	}
	p.cur.Next()

	var stmts []Statement
	for !p.cur.Current().Is(tokenDedent) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.cur.Next()
	return &Compound{Statements: stmts}, nil
}

func (p *parser) errorf(msg string) error {
	return &ParseError{Pos: p.cur.Current().Pos, Msg: msg}
}
