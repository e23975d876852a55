package parser

import "github.com/erraggy/oasts/internal/pathutil"

// DocumentStats contains statistical information about an OAS document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of entries in components.schemas
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	if doc == nil {
		return DocumentStats{}
	}
	stats := DocumentStats{
		PathCount:   doc.Paths.Len(),
		SchemaCount: doc.Schemas().Len(),
	}
	for _, item := range doc.Paths.All() {
		stats.OperationCount += countPathItemOperations(doc.pathItem(item))
	}
	return stats
}

// countPathItemOperations counts operations in a single PathItem
func countPathItemOperations(pathItem *PathItem) int {
	count := 0
	for _, method := range Methods {
		if pathItem.Operation(method) != nil {
			count++
		}
	}
	return count
}

// pathItem returns the components.pathItems entry item refers to, or item
// itself when it is not such a reference.
func (d *Document) pathItem(item *PathItem) *PathItem {
	if item == nil || item.Ref == "" || d.Components == nil {
		return item
	}
	name, ok := pathutil.ComponentName(item.Ref, pathutil.RefPrefixPathItems)
	if !ok {
		return item
	}
	if target, ok := d.Components.PathItems.Get(name); ok {
		return target
	}
	return item
}
