package mython

import (
	"strings"
	"testing"
)

func runSource(t *testing.T, source string) string {
	t.Helper()
	var sb strings.Builder
	if err := Run(source, &sb); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return sb.String()
}

func TestSimplePrints(t *testing.T) {
	source := "print 57\n" +
		"print 10, 24, -8\n" +
		"print 'hello'\n" +
		"print \"world\"\n" +
		"print True, False\n" +
		"print\n" +
		"print None\n"
	want := "57\n10 24 -8\nhello\nworld\nTrue False\n\nNone\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReassignmentAndNone(t *testing.T) {
	source := "x = 57\n" +
		"print x\n" +
		"x = 'C++ black belt'\n" +
		"print x\n" +
		"y = False\n" +
		"x = y\n" +
		"print x\n" +
		"x = None\n" +
		"print x, y\n"
	want := "57\nC++ black belt\nFalse\nNone False\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArithmeticPrecedenceAndAssociativity(t *testing.T) {
	source := "print 1+2+3+4+5, 1*2*3*4*5, 1-2-3-4-5, 36/4/3, 2*5+10/2"
	want := "15 120 -13 3 15\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfElseBranches(t *testing.T) {
	source := "if x < 3:\n  print \"lt\"\nelse:\n  print \"ge\"\n"

	ltProgram := "x = 2\n" + source
	if got := runSource(t, ltProgram); got != "lt\n" {
		t.Fatalf("got %q, want %q", got, "lt\n")
	}

	geProgram := "x = 5\n" + source
	if got := runSource(t, geProgram); got != "ge\n" {
		t.Fatalf("got %q, want %q", got, "ge\n")
	}
}

// TestVariablesArePointers is the counter-aliasing scenario: y holds
// the same instance as x, so a mutating method called through x is
// observed through y.
func TestVariablesArePointers(t *testing.T) {
	source := "class Counter:\n" +
		"  def __init__(self):\n" +
		"    self.value = 0\n" +
		"  def increment(self):\n" +
		"    self.value = self.value + 1\n" +
		"    return self.value\n" +
		"  def __str__(self):\n" +
		"    print self.value\n" +
		"\n" +
		"x = Counter()\n" +
		"y = x\n" +
		"x.increment()\n" +
		"x.increment()\n" +
		"print str(y)\n" +
		"x.increment()\n" +
		"print str(y)\n"
	want := "2\n3\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStrBuiltinConcatenatesFieldsOfFiveTypes(t *testing.T) {
	source := "class Other:\n" +
		"  def __str__(self):\n" +
		"    print \"Other\"\n" +
		"\n" +
		"class Five:\n" +
		"  def __init__(self):\n" +
		"    self.n = 42\n" +
		"    self.s = \"str\"\n" +
		"    self.b = True\n" +
		"    self.c = Five\n" +
		"    self.o = Other()\n" +
		"  def __str__(self):\n" +
		"    print str(self.n) + str(self.s) + str(self.b) + str(self.c) + str(self.o)\n" +
		"\n" +
		"print str(Five())\n"
	want := "42strTrueClass FiveOther\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestThreeLevelInheritanceComposesVtable exercises the open question
// resolved in favor of composed-vtable inheritance: a grandchild must
// still see a method only the grandparent ever defined.
func TestThreeLevelInheritanceComposesVtable(t *testing.T) {
	source := "class A:\n" +
		"  def greet(self):\n" +
		"    print \"hello from A\"\n" +
		"\n" +
		"class B(A):\n" +
		"  def other(self):\n" +
		"    print \"B\"\n" +
		"\n" +
		"class C(B):\n" +
		"  def other(self):\n" +
		"    print \"C\"\n" +
		"\n" +
		"c = C()\n" +
		"c.greet()\n" +
		"c.other()\n"
	want := "hello from A\nC\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	var sb strings.Builder
	err := Run("print 1/0\n", &sb)
	if err == nil {
		t.Fatalf("expected division by zero error")
	}
}

func TestMethodCallOnNoneIsFatal(t *testing.T) {
	source := "class A:\n" +
		"  def f(self):\n" +
		"    print 1\n" +
		"\n" +
		"x = None\n" +
		"x.f()\n"
	var sb strings.Builder
	if err := Run(source, &sb); err == nil {
		t.Fatalf("expected runtime error calling method on None")
	}
}

func TestComparisonOperators(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"print 1 == 1, 1 == 2\n", "True False\n"},
		{"print 1 != 2, 1 != 1\n", "True False\n"},
		{"print 1 < 2, 2 < 1\n", "True False\n"},
		{"print 1 <= 1, 2 <= 1\n", "True False\n"},
		{"print 2 > 1, 1 > 2\n", "True False\n"},
		{"print 1 >= 1, 1 >= 2\n", "True False\n"},
		{"print \"ab\" < \"ac\"\n", "True\n"},
	}
	for _, tt := range tests {
		if got := runSource(t, tt.source); got != tt.want {
			t.Fatalf("source %q: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	source := "print True and False, True or False, not True\n"
	want := "False True False\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringConcatenationAndAddDunder(t *testing.T) {
	source := "class Vec:\n" +
		"  def __init__(self, x):\n" +
		"    self.x = x\n" +
		"  def __add__(self, other):\n" +
		"    return self.x + other.x\n" +
		"\n" +
		"print \"foo\" + \"bar\"\n" +
		"a = Vec(2)\n" +
		"b = Vec(3)\n" +
		"print a + b\n"
	want := "foobar\n5\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestEqualityFatalsOutsideRuleSet exercises spec.md §4.C rule 4: any
// comparison not covered by rules 1-3 (cross-kind, Class-vs-Class, an
// instance with no __eq__) is a fatal runtime error, not a silent false.
func TestEqualityFatalsOutsideRuleSet(t *testing.T) {
	tests := []string{
		"print 1 == \"1\"\n",
		"class A:\n  def f(self):\n    print 1\n\nclass B:\n  def f(self):\n    print 1\n\nprint A == B\n",
		"class A:\n  def f(self):\n    print 1\n\nprint A() == A()\n",
	}
	for _, source := range tests {
		var sb strings.Builder
		if err := Run(source, &sb); err == nil {
			t.Fatalf("source %q: expected fatal runtime error, got none", source)
		}
	}
}

func TestEqualityDispatchesEqDunder(t *testing.T) {
	source := "class Point:\n" +
		"  def __init__(self, x):\n" +
		"    self.x = x\n" +
		"  def __eq__(self, other):\n" +
		"    return self.x == other.x\n" +
		"\n" +
		"print Point(1) == Point(1), Point(1) == Point(2)\n"
	want := "True False\n"
	if got := runSource(t, source); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestStrFallsBackWhenStrDunderArityMismatches exercises spec.md §4.C's
// "if defined with arity 0" qualifier: a __str__ that takes arguments is
// not dispatched, so printing falls back to the address token instead of
// fataling on an arity mismatch.
func TestStrFallsBackWhenStrDunderArityMismatches(t *testing.T) {
	source := "class A:\n" +
		"  def __str__(self, extra):\n" +
		"    print \"never\"\n" +
		"\n" +
		"print str(A())\n"
	got := runSource(t, source)
	if !strings.HasPrefix(got, "<A object at 0x") {
		t.Fatalf("got %q, want address-token fallback", got)
	}
}

// TestInitSkippedOnArityMismatchLeavesInstanceUninitialized exercises
// spec.md §4.D's "matching arity" qualifier on NewInstance's __init__
// dispatch: constructing with the wrong argument count constructs an
// uninitialized instance instead of fataling.
func TestInitSkippedOnArityMismatchLeavesInstanceUninitialized(t *testing.T) {
	source := "class A:\n" +
		"  def __init__(self, x):\n" +
		"    self.x = x\n" +
		"\n" +
		"a = A()\n" +
		"print a.x\n"
	var sb strings.Builder
	if err := Run(source, &sb); err == nil {
		t.Fatalf("expected fatal runtime error reading the never-assigned field a.x")
	}
}
