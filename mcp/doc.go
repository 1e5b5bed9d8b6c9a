// Package mcp exposes a tool catalog service.  Its central Service type loads
// tool definitions from configuration or code, resolves the wire naming
// policy and serves paginated tools/list responses rendered as JSON-RPC
// envelopes.
package mcp
