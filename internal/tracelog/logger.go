// Package tracelog implements the interpreter's optional execution trace: a
// small leveled logger that writes one line per primitive invocation.
package tracelog

import (
	"fmt"
	"io"
)

// Logger writes leveled trace lines to an underlying writer. The zero value
// is a valid, disabled Logger: Tracef is then a no-op.
type Logger struct {
	out     io.Writer
	enabled bool
}

// New returns a Logger that writes to w when enabled is true, and discards
// all trace output otherwise.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{out: w, enabled: enabled}
}

// Enabled reports whether tracing is switched on.
func (log *Logger) Enabled() bool {
	return log != nil && log.enabled && log.out != nil
}

// Tracef writes a single "TRACE: <message>\n" line, formatting mess with
// args like fmt.Sprintf when args is non-empty.
func (log *Logger) Tracef(mess string, args ...interface{}) {
	if !log.Enabled() {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	fmt.Fprintf(log.out, "TRACE: %s\n", mess)
}
