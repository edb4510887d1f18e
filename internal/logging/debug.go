package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// warnOut is where warnings are written; replaced in tests
var warnOut io.Writer = os.Stderr

var forceDebug atomic.Bool

// DebugEnabled returns true if debug mode is enabled via DUKE_DEBUG environment variable
// or SetDebug
func DebugEnabled() bool {
	return forceDebug.Load() || os.Getenv("DUKE_DEBUG") != ""
}

// SetDebug turns debug output on regardless of DUKE_DEBUG
func SetDebug(enabled bool) {
	forceDebug.Store(enabled)
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(os.Stderr, args...)
	}
}

// Warnf prints a formatted warning regardless of debug mode
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(warnOut, "warning: "+format+"\n", args...)
}

// SetWarnOutput redirects warnings and returns the previous writer
func SetWarnOutput(w io.Writer) io.Writer {
	prev := warnOut
	warnOut = w
	return prev
}
