package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasts/internal/cliutil"
	"github.com/erraggy/oasts/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// the server is configured through OASTS_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasts mcp\n\n")
		cliutil.Writef(output, "Serve the parse, list_schemas, list_operations and generate tools\n")
		cliutil.Writef(output, "over the Model Context Protocol on stdin/stdout.\n\n")
		cliutil.Writef(output, "Environment:\n")
		cliutil.Writef(output, "  OASTS_CACHE_ENABLED, OASTS_CACHE_MAX_SIZE, OASTS_CACHE_FILE_TTL,\n")
		cliutil.Writef(output, "  OASTS_CACHE_URL_TTL, OASTS_CACHE_CONTENT_TTL, OASTS_CACHE_SWEEP_INTERVAL,\n")
		cliutil.Writef(output, "  OASTS_LIST_LIMIT, OASTS_MAX_LIMIT, OASTS_GENERATE_STRICT, OASTS_MODELS_ALIAS,\n")
		cliutil.Writef(output, "  OASTS_HEADER, OASTS_MAX_INPUT_SIZE, OASTS_ALLOW_PRIVATE_IPS\n")
	}
	return fs
}

// HandleMCP runs the MCP server until stdin closes or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
