// Package errors formats compiler diagnostics with source context,
// line/column information, and a caret pointing at the offending
// position — the presentation layer consumed by the CLI.
package errors

import (
	"fmt"
	"strings"

	"github.com/kiinaq/hexen-sub005/internal/token"
)

// CompilerError is a single diagnostic ready for terminal display.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
	Hints   []string
}

// NewCompilerError creates a CompilerError positioned in source.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a source-line excerpt and a caret. When
// color is true, the message and caret are wrapped in ANSI escapes.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	if color {
		sb.WriteString("\033[1;31merror\033[0m: ")
	} else {
		sb.WriteString("error: ")
	}
	sb.WriteString(e.Message)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max0(e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m^\033[0m")
		} else {
			sb.WriteString("^")
		}
	}

	for _, h := range e.Hints {
		sb.WriteString("\n  hint: ")
		sb.WriteString(h)
	}

	return sb.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a whole batch of errors, one after another,
// separated by blank lines, in the order given — callers are expected
// to supply them already in source order.
func FormatErrors(errs []*CompilerError, color bool) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(e.Format(color))
	}
	if len(errs) > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}
