package mython

import "testing"

func TestLexIndentDedentBalance(t *testing.T) {
	source := "if True:\n  print 1\n  if True:\n    print 2\nprint 3\n"
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}

	indents, dedents := 0, 0
	for i, tok := range tokens {
		switch tok.Type {
		case tokenIndent:
			indents++
		case tokenDedent:
			dedents++
		case tokenNewline:
			if i > 0 && tokens[i-1].Type == tokenNewline {
				t.Fatalf("two consecutive Newline tokens at index %d", i)
			}
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indents, dedents)
	}

	last := tokens[len(tokens)-1]
	if last.Type != tokenEOF {
		t.Fatalf("last token is %v, want Eof", last.Type)
	}
	if len(tokens) >= 2 && tokens[len(tokens)-2].Type != tokenNewline {
		t.Fatalf("token before Eof is %v, want Newline", tokens[len(tokens)-2].Type)
	}
}

func TestLexBlankLinesCollapseAndDontShiftIndent(t *testing.T) {
	source := "if True:\n  print 1\n\n\n  print 2\nprint 3\n"
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}

	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}

	indents, dedents := 0, 0
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == tokenNewline && tokens[i-1].Type == tokenNewline {
			t.Fatalf("blank lines produced consecutive Newlines: %v", kinds)
		}
		switch tokens[i].Type {
		case tokenIndent:
			indents++
		case tokenDedent:
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("blank lines shifted indentation: %d indents, %d dedents in %v", indents, dedents, kinds)
	}
}

func TestLexStringEscapes(t *testing.T) {
	tokens, err := Lex("print \"a\\nb\\t\\\"c\\\"\"\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	var str Token
	found := false
	for _, tok := range tokens {
		if tok.Type == tokenString {
			str = tok
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no string token found")
	}
	want := "a\nb\t\"c\""
	if str.Str != want {
		t.Fatalf("got %q, want %q", str.Str, want)
	}
}

func TestLexUnknownEscapeIsFatal(t *testing.T) {
	if _, err := Lex("print \"a\\qb\"\n"); err == nil {
		t.Fatalf("expected lex error for unknown escape sequence")
	}
}

func TestLexNegativeIndentIsImpossible(t *testing.T) {
	// A dedent below zero can't occur from well-formed two-space steps;
	// this exercises that a single dedent step back to zero is clean.
	tokens, err := Lex("if True:\n  print 1\nprint 2\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	dedents := 0
	for _, tok := range tokens {
		if tok.Type == tokenDedent {
			dedents++
		}
	}
	if dedents != 1 {
		t.Fatalf("expected exactly 1 dedent, got %d", dedents)
	}
}

func TestLexCompoundOperators(t *testing.T) {
	tokens, err := Lex("x == y != z <= w >= v\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []TokenType{tokenID, tokenEq, tokenID, tokenNotEq, tokenID, tokenLessOrEq, tokenID, tokenGreaterOrEq, tokenID, tokenNewline, tokenEOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, types[i], want[i])
		}
	}
}
