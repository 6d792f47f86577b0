// Package mython implements an interpreter for Mython, a small,
// dynamically-typed, indentation-structured language patterned on a
// strict subset of Python. A program is read from a byte stream, lexed
// into an indentation-aware token sequence, parsed into a tree of
// executable statement and expression nodes, and evaluated against an
// output Context.
//
// Supported constructs:
//   - Variable assignment and dotted field access/assignment.
//   - Integer, string, bool, and None literals.
//   - Arithmetic (+, -, *, /) with integer and string semantics for +.
//   - Comparisons (==, !=, <, >, <=, >=) and logical and/or/not.
//   - print and str(...).
//   - Single-inheritance classes with overridable dunder methods
//     (__init__, __str__, __eq__, __lt__, __add__).
//   - if/else and def with positional parameters.
//
// Mython has no loops, containers, exceptions, imports, or multiple
// inheritance. See SPEC_FULL.md at the repository root for the full
// specification this package implements.
package mython
