// Package terminal restores a terminal left in raw mode by a crashed screen
package terminal

import (
	"io"
	"os"
)

// Sequences written by EmergencyReset, in order
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset shows the cursor, leaves the alternate screen and clears
// attributes on w, then restores line discipline on the controlling tty
// Best-effort; errors are ignored since it runs on the crash path
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		_, _ = w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
	resetTerminalMode()
}
