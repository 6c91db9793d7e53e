// Package gen is the deduplication and emission driver: it merges the
// per-peripheral artifact streams produced by package plan, declares each
// distinct symbol exactly once, resolves every register's absolute address
// during the final render pass, and formats the result into one Go source
// file.
//
// Emission order: preamble, core exception table, interrupt enumeration,
// type definitions (dependency order), peripheral instance literals,
// field structs, enums, and access operations.
package gen
