// Package config loads the propindex YAML configuration: which packages and
// types to index, the output format, code generation settings, and the
// bindings a consumer expects to resolve.
package config
