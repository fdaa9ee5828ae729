// kind.go — kinds (the "constructors") and their derivation chain.
//
// A Kind plays the role a class plays in a dynamically typed host: it names
// the errors it builds, may be extended any number of levels deep, and carries
// construction policy (default message, stack capture) that derived kinds
// inherit unless they override it.
//
// Names are explicit. Extend takes the derived kind's name; KindOf derives it
// from a Go type name for callers that prefer reflection.
package usererror

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind constructs errors that report its name. Kinds are immutable once
// created and safe for concurrent use.
type Kind struct {
	name   string
	parent *Kind
	cfg    config
}

// Base is the root kind. Errors built from it are named "UserError".
var Base = &Kind{
	name: BaseName,
	cfg: config{
		captureStack: true,
		stackDepth:   defaultMaxDepth,
	},
}

// New builds a UserError with the given message. The stack is rooted at the
// caller of New.
func New(msg string) *UserError {
	return newError(Base, msg, 1)
}

// Newf is New with a fmt-formatted message.
func Newf(format string, args ...any) *UserError {
	return newError(Base, fmt.Sprintf(format, args...), 1)
}

// Extend defines a kind derived from k. Errors built from the new kind report
// name, and are also instances of k and all of k's ancestors.
//
// Extend panics if name is empty; kinds are defined at package scope, so an
// empty name is a programming error.
func (k *Kind) Extend(name string, opts ...Option) *Kind {
	if name == "" {
		panic(fmt.Errorf("usererror.Kind(%q).Extend: empty kind name", k.Name()))
	}
	parent := k.orBase()
	return &Kind{
		name:   name,
		parent: parent,
		cfg:    parent.cfg.derive(opts),
	}
}

// KindOf derives a kind from parent whose name is the simple name of T, e.g.
// KindOf[MyError](Base) is named "MyError". Pointer types are dereferenced.
// A nil parent means Base.
//
// KindOf panics when T has no name (anonymous struct, func literal type, ...).
func KindOf[T any](parent *Kind, opts ...Option) *Kind {
	t := reflect.TypeOf((*T)(nil)).Elem() // equivalent to reflect.TypeFor[T]() (Go 1.22+)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		// generic instantiation: Foo[int] → Foo
		name = name[:i]
	}
	if name == "" {
		panic(fmt.Errorf("usererror.KindOf[%s]: type has no name", t))
	}
	return parent.orBase().Extend(name, opts...)
}

// New builds an error of kind k. Its stack is rooted at the caller of New.
func (k *Kind) New(msg string) *UserError {
	return newError(k.orBase(), msg, 1)
}

// Newf is New with a fmt-formatted message.
func (k *Kind) Newf(format string, args ...any) *UserError {
	return newError(k.orBase(), fmt.Sprintf(format, args...), 1)
}

// Default builds an error of kind k carrying the kind's default message (or
// the nearest ancestor's). Without any default the message is empty.
func (k *Kind) Default() *UserError {
	k = k.orBase()
	return newError(k, k.cfg.defaultMsg, 1)
}

// NewSkip is like New but also omits skip frames above the caller. Constructors
// of types that embed *UserError use NewSkip(msg, 1) so their own frame stays out
// of the trace.
func (k *Kind) NewSkip(msg string, skip int) *UserError {
	if skip < 0 {
		skip = 0
	}
	return newError(k.orBase(), msg, skip+1)
}

// Name returns the kind's name.
func (k *Kind) Name() string {
	return k.orBase().name
}

// String implements fmt.Stringer; it renders the lineage, most-derived first:
// "MyError < UserError".
func (k *Kind) String() string {
	return strings.Join(k.Lineage(), " < ")
}

// Parent returns the kind k was extended from, or nil for Base.
func (k *Kind) Parent() *Kind {
	return k.orBase().parent
}

// Lineage returns the names from k up to Base, most-derived first.
func (k *Kind) Lineage() []string {
	var out []string
	for c := k.orBase(); c != nil; c = c.parent {
		out = append(out, c.name)
	}
	return out
}

// DefaultMessage returns the message Default uses.
func (k *Kind) DefaultMessage() string {
	return k.orBase().cfg.defaultMsg
}

// IsSubkindOf reports whether k is other or derives from it.
func (k *Kind) IsSubkindOf(other *Kind) bool {
	if other == nil {
		return false
	}
	for c := k.orBase(); c != nil; c = c.parent {
		if c == other {
			return true
		}
	}
	return false
}

// Is reports whether err is (or wraps) an error of kind k or of a kind derived
// from k. It is the kind-level counterpart of IsKind.
func (k *Kind) Is(err error) bool {
	return IsKind(err, k)
}

// orBase maps a nil *Kind to Base so the zero value stays usable.
func (k *Kind) orBase() *Kind {
	if k == nil {
		return Base
	}
	return k
}

// newError builds an error of kind k. skip counts frames above newError's
// caller to omit; skip=1 roots the stack at the caller of an exported
// constructor.
func newError(k *Kind, msg string, skip int) *UserError {
	e := &UserError{kind: k, msg: msg}
	if k.cfg.captureStack {
		e.stk = captureStack(skip+1, k.cfg.stackDepth) // +1 for newError
	}
	return e
}
