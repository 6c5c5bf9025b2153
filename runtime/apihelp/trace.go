package apihelp

import (
	"fmt"
	"runtime"
)

// stackFrames returns at most max frames of the current goroutine's stack,
// skipping skip callers, formatted as "function file:line"
func stackFrames(skip, max int) []string {
	pcs := make([]uintptr, max)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	result := make([]string, 0, n)
	for len(result) < max {
		frame, more := frames.Next()
		result = append(result, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return result
}
