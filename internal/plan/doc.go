// Package plan turns a loaded device tree into the artifacts code
// generation consumes.
//
// Pipeline, per peripheral:
//  1. ResolveNames assigns a collision-free type name to every peripheral,
//     cluster, and register (top-down, before anything else).
//  2. BuildHierarchy produces composite type definitions ordered so that
//     every type precedes anything that embeds it.
//  3. BuildFieldStruct / BuildOps run per register, keyed by the register's
//     resolved type name, producing bitfield layouts, extracted enums, and
//     the read/write/modify operation set.
//
// Inspect runs before all of the above, collecting warnings for recognized
// but unsupported constructs over the whole tree.
package plan
