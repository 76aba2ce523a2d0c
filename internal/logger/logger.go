package logger

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger prints colorized status lines for a single spec-kit invocation.
//
// Each level has its own color, following the usual console conventions:
//   - Step:  blue, announces what is about to happen
//   - Info:  green, something was done successfully
//   - Warn:  bright magenta, a non-fatal problem the user should know about
//   - Hint:  yellow, a suggestion for what to do next
//   - Error: red, a failure that aborts the command
//   - Debug: cyan, detail that is only printed in verbose mode
//   - Muted: gray, secondary detail
type Logger struct {
	out     io.Writer
	verbose bool

	step  *color.Color
	info  *color.Color
	warn  *color.Color
	hint  *color.Color
	err   *color.Color
	debug *color.Color
	muted *color.Color
}

// New returns a Logger writing to out. Colors are only used when out is a
// terminal, so piped output and test buffers stay plain.
func New(out io.Writer, verbose bool) *Logger {
	l := &Logger{
		out:     out,
		verbose: verbose,
		step:    color.New(color.FgBlue),
		info:    color.New(color.FgGreen),
		warn:    color.New(color.FgHiMagenta),
		hint:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		debug:   color.New(color.FgCyan),
		muted:   color.New(color.FgHiBlack),
	}
	if !isTerminal(out) {
		for _, c := range []*color.Color{l.step, l.info, l.warn, l.hint, l.err, l.debug, l.muted} {
			c.DisableColor()
		}
	}
	return l
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) Step(format string, a ...any) { l.line(l.step, format, a...) }
func (l *Logger) Info(format string, a ...any) { l.line(l.info, format, a...) }
func (l *Logger) Warn(format string, a ...any) { l.line(l.warn, format, a...) }
func (l *Logger) Hint(format string, a ...any) { l.line(l.hint, format, a...) }
func (l *Logger) Error(format string, a ...any) { l.line(l.err, format, a...) }
func (l *Logger) Muted(format string, a ...any) { l.line(l.muted, format, a...) }

// Debug prints only when verbose output was requested; otherwise it is a no-op.
func (l *Logger) Debug(format string, a ...any) {
	if !l.verbose {
		return
	}
	l.line(l.debug, format, a...)
}

func (l *Logger) line(c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(l.out, format+"\n", a...)
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
