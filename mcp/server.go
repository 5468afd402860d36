package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for minigrep
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(version string) *Server {
	s := server.NewMCPServer("minigrep", version)

	registerTools(s)

	return &Server{
		server: s,
	}
}

// Run serves requests over stdin and stdout until the client disconnects
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer) {
	s.AddTools(InitTools()...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
