package plan

import "devgen/internal/model"

// BuildOps derives the operation set one register exposes, keyed by its
// resolved type name so repeated and derived instances share (and the
// driver deduplicates) the same artifact.
//
// Read is exposed for read-only, read-write, and read-writeOnce access;
// Write for write-only, writeOnce, read-write, and read-writeOnce. Modify,
// a single logical read-modify-write, requires both.
func BuildOps(r *model.Register, regType string, fs *FieldStruct) OpSet {
	ops := OpSet{
		Register: regType,
		Width:    r.Size,
		Read:     r.Access.CanRead(),
		Write:    r.Access.CanWrite(),
	}

	ops.Modify = ops.Read && ops.Write

	if fs != nil {
		ops.Value = fs.Name
	}

	return ops
}
