// Package serializer expands tool metadata object graphs into plain ordered
// JSON values, converting every object key with a naming.Policy, and encodes
// the result as compact UTF-8 JSON text.
package serializer
