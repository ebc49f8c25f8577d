// Package services contains the core application logic: the row pipeline
// that drives normalisation over an input file. Services depend only on
// domain types and ports, never on concrete adapters.
package services
