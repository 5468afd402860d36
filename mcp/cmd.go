package mcp

import (
	"github.com/ka2n/minigrep/log"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command
func Command(version string) *cobra.Command {
	return &cobra.Command{
		Use:           "minigrep-mcp",
		Short:         "Start the minigrep MCP server on stdio",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting MCP server", "version", version)
			return NewServer(version).Run()
		},
	}
}
