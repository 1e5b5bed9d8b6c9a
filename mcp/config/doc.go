// Package config defines the YAML/JSON model describing a tool collection and
// its wire naming settings, together with helpers to load, validate and turn
// it into a tool.Collection.
package config
