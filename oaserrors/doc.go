// Package oaserrors provides structured error types for the oasts library.
//
// Import path: github.com/erraggy/oasts/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures
//   - [VersionError]: the declared OpenAPI version is not in the 3.1 family
//   - [ReferenceError]: $ref resolution failures (invalid form, absent target, cycles)
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupportedVersion]: Matches any [VersionError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrInvalidReference]: Matches [ReferenceError] with IsInvalid=true
//   - [ErrUnresolvedReference]: Matches [ReferenceError] with IsUnresolved=true
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	}
//
// Unrecognized schema shapes are not errors. The extractor degrades them to
// the "unknown" type and records an issue instead.
package oaserrors
