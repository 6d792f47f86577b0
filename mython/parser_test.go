package mython

import "testing"

func mustParse(t *testing.T, source string) Statement {
	t.Helper()
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	prog, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return prog
}

func TestParseConstructorVsMethodCall(t *testing.T) {
	prog := mustParse(t, "class A:\n  def f(self):\n    print 1\n\na = A()\nb = a.f()\n")
	compound, ok := prog.(*Compound)
	if !ok {
		t.Fatalf("expected top-level Compound, got %T", prog)
	}
	if len(compound.Statements) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(compound.Statements))
	}

	assignA, ok := compound.Statements[1].(*Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", compound.Statements[1])
	}
	if _, ok := assignA.Value.(*NewInstance); !ok {
		t.Fatalf("expected A() to parse as NewInstance, got %T", assignA.Value)
	}

	assignB, ok := compound.Statements[2].(*Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", compound.Statements[2])
	}
	if _, ok := assignB.Value.(*MethodCall); !ok {
		t.Fatalf("expected a.f() to parse as MethodCall, got %T", assignB.Value)
	}
}

func TestParseUnknownParentClassIsError(t *testing.T) {
	tokens, err := Lex("class A(NoSuchClass):\n  def f(self):\n    print 1\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatalf("expected parse error for unknown parent class")
	}
}

func TestParseRejectsDefOutsideClassBody(t *testing.T) {
	tokens, err := Lex("def f():\n  print 1\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatalf("expected parse error for top-level def")
	}
}

func TestParseNoElif(t *testing.T) {
	// elif is not part of the grammar; "elif" lexes as a plain identifier,
	// so this must fail to parse as an if/else chain.
	tokens, err := Lex("if True:\n  print 1\nelif False:\n  print 2\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatalf("expected parse error since elif is not a keyword")
	}
}
