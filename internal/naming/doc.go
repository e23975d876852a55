// Package naming provides shared case conversion utilities for oasts packages.
//
// The extractor uses ToCamelCase to derive operation identifiers from a
// method and path when a document omits operationId. Word casing goes through
// golang.org/x/text/cases so non-ASCII letters are handled correctly.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
