package arbor

import (
	"fmt"
	"io"
	"os"
)

// globalDebug enables contract panics and diagnostics. Set through
// SetDebugMode or Config.Debug.
var globalDebug bool

// debugOut receives diagnostics while debug mode is on.
var debugOut io.Writer = os.Stderr

// SetDebugMode turns debug checks on or off for every frame. In debug mode
// contract violations (adding a parented view, removing a stranger) panic
// instead of returning false.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug checks are on.
func DebugMode() bool { return globalDebug }

// SetDebugOutput redirects diagnostics. Nil restores os.Stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[arbor] "+format+"\n", args...)
}

// violation reports a caller contract violation. It panics in debug mode and
// otherwise returns false so callers can propagate it.
func violation(format string, args ...any) bool {
	if globalDebug {
		panic("arbor: " + fmt.Sprintf(format, args...))
	}
	return false
}

// debugCheckDisposed panics when a disposed view is used in a tree
// operation. Only called in debug mode.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("arbor debug: %s on disposed view %q (ID was %d)", op, v.Name, v.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (view %q)", depth, debugMaxTreeDepth, v.Name)
	}
}

// debugCheckChildCount warns if a container has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		debugf("warning: view %q has %d children (threshold %d)", v.Name, len(v.children), debugMaxChildCount)
	}
}
