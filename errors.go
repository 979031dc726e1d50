package fa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies the failures reported by this package.
// Codes satisfy error so they can be used as errors.Is targets.
type ErrorCode string

const (
	// ErrStructural indicates a state referenced by the automaton is not declared.
	ErrStructural ErrorCode = "fa-structural"
	// ErrAlphabet indicates a transition symbol is not declared in the alphabet.
	ErrAlphabet ErrorCode = "fa-alphabet"
	// ErrInput indicates an input symbol is not declared in the alphabet.
	ErrInput ErrorCode = "fa-input"
	// ErrAlphabetMismatch indicates two operands of a binary operation have different alphabets.
	ErrAlphabetMismatch ErrorCode = "fa-alphabet-mismatch"
	// ErrTooComplex indicates a construction exceeded the configured work limit.
	ErrTooComplex ErrorCode = "fa-too-complex"
)

func (c ErrorCode) Error() string {
	return string(c)
}

// Invariant names the structural rule a validation failure broke.
type Invariant string

const (
	InvariantInitial          Invariant = "initial state in states"
	InvariantFinal            Invariant = "final states in states"
	InvariantTransitionSource Invariant = "transition source in states"
	InvariantTransitionSymbol Invariant = "transition symbol in alphabet"
	InvariantTransitionTarget Invariant = "transition target in states"
	InvariantReservedSymbol   Invariant = "epsilon not in alphabet"
)

// Error describes a failure with its code and, for validation failures,
// the invariant and the offending state or symbol.
type Error struct {
	Code      ErrorCode
	Invariant Invariant
	Subject   string
	Message   string
}

func (e *Error) Error() string {
	if e == nil {
		return "fa error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Invariant != "" {
		b.WriteString(fmt.Sprintf(" (invariant: %s)", e.Invariant))
	}
	if e.Subject != "" {
		b.WriteString(fmt.Sprintf(" (subject: %s)", quoteToken(e.Subject)))
	}
	return b.String()
}

// Is reports whether target is the code of e, so that
// errors.Is(err, ErrStructural) works on returned errors.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *Error:
		return t != nil && e.Code == t.Code
	}
	return false
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func invariantError(code ErrorCode, inv Invariant, subject, format string, args ...any) *Error {
	return &Error{
		Code:      code,
		Invariant: inv,
		Subject:   subject,
		Message:   fmt.Sprintf(format, args...),
	}
}
