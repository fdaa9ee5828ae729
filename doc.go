// doc.go — package documentation for usererror
//
// Package usererror provides UserError: an error type that carries a message
// and the name of the kind that constructed it, and that can be extended by
// consumer code without losing either.
//
// # Constructing
//
//	err := usererror.New("Bang!")
//	err.Name()    // "UserError"
//	err.Message() // "Bang!"
//	err.Error()   // "UserError: Bang!"
//
// # Extending
//
// A Kind is the constructor. Derived kinds declare their own name, so errors
// report the most-derived name rather than "UserError":
//
//	var MyError = usererror.Base.Extend("MyError",
//	    usererror.WithDefaultMessage("Boom!"))
//
//	MyError.New("Bang!") // name "MyError", message "Bang!"
//	MyError.Default()    // name "MyError", message "Boom!"
//
// Kinds extend to any depth; an error is an instance of its kind and of every
// ancestor:
//
//	var ParseError = MyError.Extend("ParseError")
//	usererror.IsKind(ParseError.New("x"), MyError)        // true
//	usererror.IsKind(ParseError.New("x"), usererror.Base) // true
//
// KindOf derives a kind's name from a Go type name via reflection. Explicit
// names through Extend are preferred: they survive renames and carry no
// reflection cost.
//
// # Embedding
//
// Consumer types can embed *UserError to gain the whole API. Its methods are
// promoted, so IsUserError, As and IsKind recognize the outer type:
//
//	type QuotaError struct {
//	    *usererror.UserError
//	    Limit int
//	}
//
//	var quotaKind = usererror.Base.Extend("QuotaError")
//
//	func NewQuotaError(limit int) *QuotaError {
//	    // NewSkip(…, 1) keeps NewQuotaError itself out of the stack.
//	    return &QuotaError{UserError: quotaKind.NewSkip("quota exceeded", 1), Limit: limit}
//	}
//
// # Stacks
//
// Each constructor records the stack of its caller; the constructor's own
// frames are omitted. A kind created WithoutStack skips capture entirely.
// StackTrace renders the familiar "Name: message" header followed by
// "    at func (file:line)" lines; %+v prints a structured variant.
//
// # Interop
//
// *UserError is a plain Go error: it can be returned, wrapped with fmt.Errorf("%w"),
// joined with errors.Join, and found again with errors.As or the helpers in
// this package. It implements fmt.Formatter and slog.LogValuer; the package
// itself never logs.
package usererror
