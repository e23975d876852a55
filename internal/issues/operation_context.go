package issues

import (
	"fmt"
	"strings"
)

// OperationContext identifies the operation an issue was found in.
type OperationContext struct {
	// Method is the HTTP method (get, post, etc.)
	Method string `json:"method,omitempty"`
	// Path is the API path pattern (e.g., "/users/{id}")
	Path string `json:"path,omitempty"`
	// OperationID is the declared or derived operation identifier
	OperationID string `json:"operationId,omitempty"`
}

// String returns a formatted string representation of the operation context.
// Returns empty string if the context is empty.
func (c OperationContext) String() string {
	switch {
	case c.IsEmpty():
		return ""
	case c.OperationID != "":
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	case c.Method != "":
		return fmt.Sprintf("(%s %s)", strings.ToUpper(c.Method), c.Path)
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
