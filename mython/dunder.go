package mython

// Dunder method names the runtime dispatches on, named the way the
// original's statement.cpp and runtime.cpp hard-code ADD_METHOD,
// INIT_METHOD and their siblings as file-local constants instead of
// scattering the literal strings across call sites.
const (
	dunderInit = "__init__"
	dunderStr  = "__str__"
	dunderEq   = "__eq__"
	dunderLt   = "__lt__"
	dunderAdd  = "__add__"
)
