// Package extractor lowers an OpenAPI 3.1 document into AST values.
//
// Two parsers do the work:
//
//   - [SchemaParser] converts one schema object, recursively, into an
//     [ast.Node]. It never fails: shapes without a TypeScript counterpart
//     become ast.AtomUnknown.
//   - [OperationParser] visits every path/method pair and produces an
//     [Operation] with path and query parameters, request body media types
//     and per-status responses. Parameters, request bodies and responses
//     written as $ref are dereferenced through a [Resolver].
//
// [Extractor] runs both over a [parser.ParseResult]:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := extractor.New().Extract(parsed)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range result.Schemas {
//		fmt.Println(s.Name, ast.KindOf(s.AST))
//	}
//
// # Schema dispatch
//
// The first matching rule wins:
//
//  1. missing schema: void
//  2. $ref: a reference by name
//  3. allOf: intersection
//  4. oneOf: union
//  5. anyOf: union
//  6. type list: union of the schema narrowed to each listed type
//  7. null, boolean, number/integer (enum of numerals when enum is set),
//     string (enum of quoted literals when enum is set), array, object
//     (record when properties is set)
//  8. anything else: unknown
//
// # Issues
//
// Unrecognized type names, schemas that combine more than one of allOf,
// oneOf and anyOf, header and cookie parameters, path templates that
// disagree with the declared path parameters, and duplicate operation
// identifiers are reported in [Result.Issues]. Issues never change the
// extracted AST.
package extractor
