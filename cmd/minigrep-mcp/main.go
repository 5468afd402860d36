// Command minigrep-mcp serves minigrep's search as an MCP tool over stdio.
package main

import (
	"os"

	"github.com/ka2n/minigrep/cli"
	"github.com/ka2n/minigrep/log"
	"github.com/ka2n/minigrep/mcp"
)

func main() {
	if err := mcp.Command(cli.Version).Execute(); err != nil {
		log.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
