// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115 - file descriptors fit in int
}

// Symbols holds the status markers printed in command summaries.
type Symbols struct {
	OK   string
	Fail string
}

// SymbolsFor returns unicode markers for terminals and plain ASCII otherwise.
func SymbolsFor(w io.Writer) Symbols {
	if IsTerminal(w) {
		return Symbols{OK: "✓", Fail: "✗"}
	}
	return Symbols{OK: "OK", Fail: "FAIL"}
}
