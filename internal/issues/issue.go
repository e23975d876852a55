// Package issues provides the issue type reported for document parts that
// were skipped or degraded during extraction.
package issues

import (
	"fmt"

	"github.com/erraggy/oasts/internal/severity"
)

// Issue represents a single non-fatal problem found during extraction.
type Issue struct {
	// Path is the JSON path to the problematic field (e.g., "components.schemas.Pet.type")
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// OperationContext identifies the operation the issue was found in.
	// Nil for issues under components.
	OperationContext *OperationContext `json:"operation,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		path = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}
