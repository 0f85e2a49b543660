// Package term provides the formatted error/info/debug message helpers used
// by the citr command layer. The classifier core never prints; these are
// collaborators of the caller only.
package term

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/nightconcept/citrine-go/internal/core/style"
)

// Default symbols used in messages. Both are Unicode and may be replaced via
// WithSymbols for terminals whose fonts lack them.
const (
	DefaultErrorSymbol = "✖"
	DefaultInfoSymbol  = "●"
)

// Printer writes formatted diagnostic messages to a single stream, usually
// stderr.
type Printer struct {
	out      io.Writer
	styles   style.Set
	errorSym string
	infoSym  string
}

// New returns a Printer writing to w with the given styles and the default
// symbols.
func New(w io.Writer, styles style.Set) *Printer {
	return &Printer{
		out:      w,
		styles:   styles,
		errorSym: DefaultErrorSymbol,
		infoSym:  DefaultInfoSymbol,
	}
}

// WithSymbols returns a copy of the printer using the given error and info
// symbols. Empty strings keep the current ones.
func (p *Printer) WithSymbols(errorSym, infoSym string) *Printer {
	q := *p
	if errorSym != "" {
		q.errorSym = errorSym
	}
	if infoSym != "" {
		q.infoSym = infoSym
	}
	return &q
}

// Error writes "✖ Title: msg".
func (p *Printer) Error(title, msg string) {
	fmt.Fprintf(p.out, "%s %s: %s\n", p.styles.ErrorMark.Sprint(p.errorSym), p.styles.Title.Sprint(title), msg)
}

// Errorf is Error with a format string for the message.
func (p *Printer) Errorf(title, format string, args ...any) {
	p.Error(title, fmt.Sprintf(format, args...))
}

// Info writes "● Title: msg".
func (p *Printer) Info(title, msg string) {
	fmt.Fprintf(p.out, "%s %s: %s\n", p.styles.InfoMark.Sprint(p.infoSym), p.styles.Title.Sprint(title), msg)
}

// Infof is Info with a format string for the message.
func (p *Printer) Infof(title, format string, args ...any) {
	p.Info(title, fmt.Sprintf(format, args...))
}

// Debugf writes "file:line: Debug: msg", locating the caller's source line.
func (p *Printer) Debugf(format string, args ...any) {
	location := "???"
	if _, file, line, ok := runtime.Caller(1); ok {
		location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	fmt.Fprintf(p.out, "%s %s: %s\n", p.styles.Dim.Sprintf("%s:", location), p.styles.Title.Sprint("Debug"), fmt.Sprintf(format, args...))
}
