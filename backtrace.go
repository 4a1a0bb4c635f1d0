package tasktree

import (
	"fmt"
	"runtime"
)

// CapturedBacktrace returns a [BacktraceFunc] reporting the goroutine call
// stack at the point CapturedBacktrace itself was called. Install it at
// construction to record where a node came from:
//
//	n := tasktree.New(
//	    tasktree.WithParent(parent),
//	    tasktree.WithBacktrace(tasktree.CapturedBacktrace()),
//	)
func CapturedBacktrace() BacktraceFunc {
	// 64 frames covers realistic spawn sites. runtime.Callers truncates
	// gracefully if the stack is deeper.
	pcs := make([]uintptr, 64)
	// Skip runtime.Callers and CapturedBacktrace itself.
	count := runtime.Callers(2, pcs)
	pcs = pcs[:count]

	return func(from, length int) []string {
		if from < 0 || length <= 0 || from >= len(pcs) {
			return nil
		}

		frames := runtime.CallersFrames(pcs)
		lines := make([]string, 0, len(pcs))
		for {
			frame, more := frames.Next()
			lines = append(lines, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
			if !more {
				break
			}
		}

		if from >= len(lines) {
			return nil
		}
		end := min(from+length, len(lines))
		return lines[from:end]
	}
}
