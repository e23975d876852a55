// Package pathutil holds path helpers shared by the extractor, the generator
// and the CLI: local reference prefixes for OpenAPI 3.1 components, path
// template parameter matching, and output path sanitization.
//
// Component references are split into their kind prefix and name:
//
//	name, ok := pathutil.ComponentName("#/components/schemas/Pet", pathutil.RefPrefixSchemas)
//	// name == "Pet", ok == true
//
// Output paths given on the command line are checked before anything is
// written:
//
//	dir, err := pathutil.SanitizeOutputDir(flagDir)
//	if err != nil {
//	    return err
//	}
package pathutil
