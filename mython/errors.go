package mython

import "strconv"

// RuntimeError reports a failure raised while executing a parsed
// program: division by zero, a method call on None, an unresolved
// variable or method name. Mython has no user-visible exception type
// (spec.md Non-goals), so every one of these aborts the whole Run.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func newRuntimeError(msg string) *RuntimeError {
	return &RuntimeError{Msg: msg}
}

// ParseError reports a malformed token stream: an unexpected token, a
// reference to an undeclared class, a grammar production that doesn't
// match. Parsing errors are always fatal, same as lexing errors.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error at " + strconv.Itoa(e.Pos.Line) + ":" + strconv.Itoa(e.Pos.Column) + ": " + e.Msg
}
