package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasts"
	"github.com/erraggy/oasts/cmd/oasts/commands"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"parse", "generate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasts v%s\n", oasts.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "parse":
		err = commands.HandleParse(os.Args[2:])
	case "generate":
		err = commands.HandleGenerate(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`oasts - OpenAPI 3.1 to TypeScript declarations

Usage:
  oasts <command> [flags] [arguments]

Commands:
  parse       Parse a document and list its schemas and operations
  generate    Generate TypeScript declarations
  mcp         Serve oasts tools over the Model Context Protocol (stdio)
  version     Show version information
  help        Show this help message

Run 'oasts <command> --help' for more information on a command.

Examples:
  oasts parse openapi.yaml
  oasts generate -o ./src/api openapi.yaml
  oasts generate --single-file openapi.yaml > types.ts

%s
`, oasts.BuildInfo())
}
