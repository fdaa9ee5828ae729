// format.go — fmt.Formatter and slog.LogValuer for *UserError.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %q       → quoted Error().
//   %+v      → verbose, multi-line:
//                name=<name> msg="<message>"
//                kind: MyError < UserError
//                stack:
//                    at funcA (file.go:123)
//                    at funcB (other.go:45)
package usererror

import (
	"fmt"
	"io"
	"log/slog"
)

// formatVerbose writes the multi-line representation. The kind line appears
// only for derived kinds and the stack section only when frames were captured.
func formatVerbose(w io.Writer, e *UserError) {
	_, _ = fmt.Fprintf(w, "name=%s msg=%q", e.Name(), e.Message())

	if k := e.Kind(); k.Parent() != nil {
		_, _ = fmt.Fprintf(w, "\nkind: %s", k)
	}

	if e != nil && len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		writeFrames(w, e.stk)
	}
}

func (e *UserError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// LogValue implements slog.LogValuer so a user error logs as a group:
// name, msg, and (for derived kinds) the kind lineage.
func (e *UserError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", e.Name()),
		slog.String("msg", e.Message()),
	}
	if k := e.Kind(); k.Parent() != nil {
		attrs = append(attrs, slog.Any("kind", k.Lineage()))
	}
	return slog.GroupValue(attrs...)
}

var (
	_ fmt.Formatter  = (*UserError)(nil)
	_ slog.LogValuer = (*UserError)(nil)
)
