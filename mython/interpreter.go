package mython

import "io"

// Engine embeds a Mython program so it can be run repeatedly once
// compiled. Compile/Run separate parsing from
// execution the way the teacher's NewEngine/Run pair does for its own
// interpreter.
type Engine struct {
	program Statement
}

// Compile lexes and parses source into a runnable Engine without
// executing it.
func Compile(source string) (*Engine, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}
	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return &Engine{program: program}, nil
}

// Run executes the compiled program against a fresh root scope,
// writing program output to w.
func (e *Engine) Run(w io.Writer) error {
	return e.RunIn(NewScope(), w)
}

// RunIn executes the compiled program against a caller-supplied scope,
// writing program output to w. A REPL uses this to thread one scope
// across successive block-at-a-time compilations, something a
// plain Run call (fresh scope every time) can't offer. A return
// statement reached outside any method body is reported as a
// RuntimeError.
func (e *Engine) RunIn(scope *Scope, w io.Writer) error {
	ctx := NewContext(w)
	_, err := e.program.Execute(scope, ctx)
	if sig, ok := err.(*returnSignal); ok {
		return newRuntimeError(sig.Error())
	}
	return err
}

// Run is the one-shot convenience entry point spec.md §6 describes for
// the embedding host: lex, parse, build an empty root scope, execute
// against a context wrapping w.
func Run(source string, w io.Writer) error {
	engine, err := Compile(source)
	if err != nil {
		return err
	}
	return engine.Run(w)
}
