// Package severity provides severity level constants for issues reported
// while lowering a document into type declarations.
//
// The levels are ordered from least to most severe: Info < Warning < Error.
package severity

// Severity indicates how much an issue affects the generated output.
type Severity int

const (
	// SeverityInfo indicates part of the document was deliberately skipped,
	// such as header parameters.
	SeverityInfo Severity = iota

	// SeverityWarning indicates the output is looser than the document, such
	// as an unrecognized type name degrading to unknown.
	SeverityWarning

	// SeverityError indicates part of the document could not be processed.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the level by name so it reads well in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
