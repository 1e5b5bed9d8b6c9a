// Package tool models MCP tool definitions: tools, their input schemas and
// parameters, and the paginated tools/list response envelope.  Every type is
// assembled with chained builder calls and rendered through the serializer
// package, which applies the wire naming policy.
package tool
