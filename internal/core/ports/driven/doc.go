// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// The pipeline and normalisers depend on these interfaces, and adapters
// implement them.
//
// # Required Interfaces
//
//   - RowReader: Streams input rows
//   - RowWriter: Receives harmonised rows
//   - IssueWriter: Receives issue records
//   - ValueNormaliser: Coerces one raw value to canonical form
//   - RowNormaliser: Post-pass over an assembled row (geometry)
//
// # Optional Interfaces
//
//   - RunStore: Run-history persistence; nil disables history
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
