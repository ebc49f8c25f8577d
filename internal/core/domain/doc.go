// Package domain contains the core types of the harmoniser: schemas and
// their fields, rows, issues, organisations, and run records.
//
// The domain layer has no dependencies on adapters or normalisers. Field
// kinds are resolved once, when a schema is built, so that per-row dispatch
// is an enum switch rather than repeated string comparison.
package domain
