// Package mcp provides MCP (Model Context Protocol) server configuration
// types that the SDK serializes into the CLI's --mcp-config flag.
package mcp
