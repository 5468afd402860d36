// Package mcp implements the Model Context Protocol server for minigrep.
//
// The server exposes the line search as a tool so that MCP clients can
// search a local file with the same argument rules as the command line.
package mcp
