// stack.go — construction-site stack capture.
//
// Capture uses runtime.Callers + runtime.CallersFrames so inlined calls resolve
// to their logical frames. Constructors pass a skip count so the trace starts
// at the code that asked for the error, not inside this package.
package usererror

import (
	"fmt"
	"io"
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as "<func> (<file>:<line>)".
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture on construction paths.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames above its caller,
// bounded by defaultMaxDepth.
func captureStackDefault(skip int) Stack {
	return captureStack(skip+1, defaultMaxDepth) // +1 for captureStackDefault
}

// captureStack captures up to maxDepth frames. skip=0 places the first
// recorded frame at the caller of captureStack; each increment drops one more.
// It returns nil when no frames remain.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +2: runtime.Callers itself and captureStack.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// writeFrames appends one "\n    at <frame>" line per frame.
func writeFrames(w io.Writer, stk Stack) {
	for _, fr := range stk {
		_, _ = fmt.Fprintf(w, "\n    at %s", fr)
	}
}
