// Package parser loads OpenAPI 3.1 documents into an order-preserving model.
//
// Documents may be YAML or JSON; both are decoded with the same YAML decoder.
// Maps whose key order matters (paths, properties, media types, responses)
// are decoded into [OrderedMap] so iteration follows the source document.
// The decoded node tree is kept on the [Document] so that local references
// can be resolved with a [Resolver].
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s, Schemas: %d\n", result.Version, result.Stats.SchemaCount)
//
// Or using a reusable Parser instance:
//
//	p := parser.New()
//	p.Logger = parser.NewSlogAdapter(slog.Default())
//	result, err := p.Parse("openapi.yaml")
//
// # Supported Versions
//
// Only documents declaring openapi "3.1.<patch>" are accepted. Anything else
// fails with an [oaserrors.VersionError] before the document body is decoded.
//
// # References
//
// References are not inlined while loading. Use [Resolver.Resolve] with a
// "#/"-rooted pointer to fetch the target node:
//
//	node, err := result.Resolver().Resolve("#/components/schemas/Pet")
//
// JSON Pointer escapes (~0 and ~1) are honored, and sequence indices may be
// used as path segments:
//
//	$ref: '#/paths/~1users/get/parameters/0/schema'
package parser
