package extractor

import (
	"github.com/erraggy/oasts/internal/issues"
	"github.com/erraggy/oasts/internal/severity"
)

// Severity indicates how much an issue affects the generated output.
type Severity = severity.Severity

const (
	// SeverityInfo indicates part of the document was deliberately skipped
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates the output is looser than the document
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates part of the document could not be processed
	SeverityError = severity.SeverityError
)

// Issue is a non-fatal problem found during extraction. Issues never change
// the extracted AST; they explain where it is less precise than the document.
type Issue = issues.Issue

// OperationContext identifies the operation an issue was found in.
type OperationContext = issues.OperationContext

// countBySeverity returns how many issues have the given severity.
func countBySeverity(list []Issue, s Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
