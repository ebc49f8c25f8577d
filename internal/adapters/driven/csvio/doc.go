// Package csvio implements the row and issue ports over CSV files: the
// input row reader, the schema-ordered output writer, the issue log
// writer, and the organisation reference/patch table loaders.
package csvio
