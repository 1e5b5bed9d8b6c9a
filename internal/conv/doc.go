// Package conv provides small generic helpers for optional values used when
// mapping tool definitions onto protocol types with pointer fields.
package conv
