// Package conversion translates between tool definitions built with the tool
// package and the viant MCP protocol schema types, so that collections can be
// exchanged with MCP clients and servers.
package conversion
