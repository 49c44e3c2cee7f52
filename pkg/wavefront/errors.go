package wavefront

import (
	"errors"
	"fmt"
)

// OBJ errors.
var (
	ErrStructural       = errors.New("malformed OBJ data")
	ErrUnknownKeyword   = errors.New("unknown OBJ keyword")
	ErrMalformedFace    = errors.New("malformed face")
	ErrIndexRange       = errors.New("face index out of range")
	ErrMissingAttribute = errors.New("face corner missing attribute")
)

// ParseError is returned when the automaton stops on input it does not
// accept. It unwraps to one of ErrStructural, ErrUnknownKeyword or
// ErrMalformedFace.
type ParseError struct {
	Kind   error
	Msg    string
	State  State // state the input was rejected in
	Line   int   // 1-based
	Column int   // 1-based byte column
	Offset int64 // byte offset from the start of input
	Token  string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("line %d, column %d: %v: %s %q", e.Line, e.Column, e.Kind, e.Msg, e.Token)
	}
	return fmt.Sprintf("line %d, column %d: %v: %s", e.Line, e.Column, e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
