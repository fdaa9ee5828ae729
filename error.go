// Package usererror defines a single, subclassable error type for user-raised
// failures. An error carries a message, the name of the kind that constructed
// it, and (optionally) the stack of its construction site.
//
// Design tenets:
//   - Interop-first: values are plain Go errors; errors.Is/As work unchanged.
//   - Explicit names: every derived kind declares its own name.
//   - Immutable values: nothing mutates a UserError after construction.
//   - No side effects: constructors never log, print, or touch global state.
package usererror

import (
	"strings"
)

// BaseName is the name reported by errors built from Base.
const BaseName = "UserError"

// UserError is a user-raised error. Its name is the name of the most-derived
// Kind that constructed it, never an ancestor's.
//
// Consumer types may embed *UserError to become user errors themselves; every
// method, including the unexported membership marker, is promoted through the
// embedding, so IsUserError, As and IsKind recognize them.
type UserError struct {
	kind *Kind
	msg  string
	stk  Stack
}

// Error renders "<name>: <message>", or just the name when the message is empty.
func (e *UserError) Error() string {
	name := e.Name()
	if e == nil || e.msg == "" {
		return name
	}
	return name + ": " + e.msg
}

// Name returns the constructing kind's name.
func (e *UserError) Name() string {
	return e.Kind().name
}

// Message returns the message exactly as it was passed in.
func (e *UserError) Message() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Kind returns the kind that constructed e. The zero value reports Base.
func (e *UserError) Kind() *Kind {
	if e == nil || e.kind == nil {
		return Base
	}
	return e.kind
}

// Stack returns a copy of the captured construction stack, most recent call
// first. It is nil when the kind disables capture.
func (e *UserError) Stack() Stack {
	if e == nil || len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}

// StackTrace renders the error header followed by one "    at" line per frame.
func (e *UserError) StackTrace() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e != nil {
		writeFrames(&sb, e.stk)
	}
	return sb.String()
}

func (e *UserError) base() *UserError { return e }

// userError is satisfied by *UserError and by anything embedding it.
type userError interface {
	error
	base() *UserError
}

var _ userError = (*UserError)(nil)
