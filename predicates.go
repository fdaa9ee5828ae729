// predicates.go — classification helpers over arbitrary errors.
//
// All helpers go through errors.As with an interface target, so they see
// user errors wrapped by other packages (fmt.Errorf("%w"), errors.Join) and
// consumer types that embed *UserError.
package usererror

import (
	"errors"
)

// As returns the user error in err's chain, if any. For a consumer type that
// embeds *UserError, the embedded value is returned.
func As(err error) (*UserError, bool) {
	if err == nil {
		return nil, false
	}
	var ue userError
	if !errors.As(err, &ue) {
		return nil, false
	}
	e := ue.base()
	return e, e != nil
}

// IsUserError reports whether err is (or wraps) a user error of any kind.
func IsUserError(err error) bool {
	_, ok := As(err)
	return ok
}

// IsKind reports whether err is (or wraps) an error of kind k or of a kind
// derived from k. Every user error is of kind Base.
func IsKind(err error, k *Kind) bool {
	if k == nil {
		return false
	}
	e, ok := As(err)
	return ok && e.Kind().IsSubkindOf(k)
}

// NameOf returns the name of the user error in err's chain, or "" if none.
func NameOf(err error) string {
	if e, ok := As(err); ok {
		return e.Name()
	}
	return ""
}

// MessageOf returns the user error's message, falling back to err.Error() for
// other errors and "" for nil.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Message()
	}
	return err.Error()
}
