// Package file provides a TOML file implementation of the ConfigStore
// port. Configuration lives in ~/.harmonise/config.toml and holds the
// default organisation table, patch table and history paths so a run can
// be invoked with just input, output, schema and log.
package file
