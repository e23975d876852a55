// Package generator renders TypeScript declarations from OpenAPI 3.1 documents.
//
// The generator runs the parser and extractor packages, then renders every
// component schema as a type alias and every operation as a namespace
// describing its signature. Only type information is emitted; no runtime
// client code is generated.
//
// # Quick Start
//
// Generate declarations using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./src/api"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.SingleFile = true
//	g.Header = "Code generated by oasts. DO NOT EDIT."
//	result, _ := g.Generate("openapi.yaml")
//	result.WriteFiles("./src/api")
//
// # Type Mapping
//
// Schemas map to TypeScript types as follows:
//   - $ref → the referenced schema's declared name
//   - allOf → A & B
//   - oneOf, anyOf, and type lists → A | B
//   - enum → a union of literals ("a" | "b", 1 | 2)
//   - null, boolean, string → null, boolean, string
//   - integer, number → number
//   - array → Array<T>
//   - object with properties → { "name"?: T; }, object without → object
//   - anything else → unknown
//
// # Generated Files
//
// The generator produces the following files:
//   - responses.ts: the StatusResponse and JsonResponse helper interfaces
//   - models.ts: one "export type" per component schema
//   - operations.ts: one namespace per operation with method, path, Params,
//     Query, Body and Response, referring to schemas as models.<Name>
//
// With SingleFile set, the three are concatenated into types.ts.
//
// Use [TypeStringGenerator] directly to render a single ast.Node.
package generator
