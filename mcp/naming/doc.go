// Package naming converts field names between the internal snake_case style
// and the camelCase style used on the MCP wire.  A Policy is applied exactly
// once per key by the serializer; names can be marked exempt so that they
// pass through untouched.
package naming
