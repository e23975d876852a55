// Package oasts turns OpenAPI 3.1 documents into TypeScript type declarations.
//
// The work happens in two stages. The extractor package lowers every schema
// in components/schemas, and every path/method operation, into a small closed
// AST (package ast). The generator package renders that AST as TypeScript
// type expressions and assembles declaration files from them.
//
// # Packages
//
//   - parser: Load an OpenAPI document (YAML or JSON) into an order-preserving model
//   - ast: The closed set of type nodes produced by the extractor
//   - extractor: Convert schemas and operations into AST values
//   - generator: Render AST values as TypeScript and write declaration files
//   - oaserrors: Structured error types for errors.Is / errors.As
//
// # Quick Start
//
// Generate declarations from a file:
//
//	import "github.com/erraggy/oasts/generator"
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
// Work with the AST directly:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := extractor.New().Extract(parsed)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := &generator.TypeStringGenerator{}
//	for _, s := range res.Schemas {
//		fmt.Printf("type %s = %s;\n", s.Name, g.Generate(s.AST))
//	}
//
// # Supported Versions
//
// Only the OAS 3.1.x family is supported. Other versions fail with an
// [oaserrors.VersionError].
//
// # Command-Line Tool
//
//	oasts parse openapi.yaml
//	oasts generate -o ./src/api openapi.yaml
//	oasts mcp
package oasts
