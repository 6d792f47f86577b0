package mython

import (
	"io"
	"strings"
)

// Context is the sink Print and Stringify write through (spec.md §4.D).
// The embedding host supplies one bound to its own io.Writer; Stringify
// uses a scratch implementation to capture a single value's rendering
// without touching the host's stream.
type Context interface {
	io.Writer
}

// outputContext is the Context bound to the host-supplied writer for
// the lifetime of one Run.
type outputContext struct {
	w io.Writer
}

// NewContext wraps w as a Context.
func NewContext(w io.Writer) Context {
	return &outputContext{w: w}
}

func (c *outputContext) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// scratchContext is a throwaway Context used by Stringify to capture
// __str__'s Print output into a string rather than the program's stream.
type scratchContext struct {
	sb strings.Builder
}

func newScratchContext() *scratchContext {
	return &scratchContext{}
}

func (c *scratchContext) Write(p []byte) (int, error) {
	return c.sb.Write(p)
}

func (c *scratchContext) String() string {
	return c.sb.String()
}
