package model

import "fmt"

// Access is the declared access permission of a register or field.
type Access int

const (
	// AccessReadWrite - readable and writable (the common default).
	AccessReadWrite Access = iota
	// AccessReadOnly - readable only.
	AccessReadOnly
	// AccessWriteOnly - writable only.
	AccessWriteOnly
	// AccessWriteOnce - writable exactly once after reset.
	AccessWriteOnce
	// AccessReadWriteOnce - readable, writable exactly once after reset.
	AccessReadWriteOnce
)

// CanRead reports whether the permission allows read operations.
func (a Access) CanRead() bool {
	switch a {
	case AccessReadWrite, AccessReadOnly, AccessReadWriteOnce:
		return true
	case AccessWriteOnly, AccessWriteOnce:
		return false
	}

	return false
}

// CanWrite reports whether the permission allows write operations.
func (a Access) CanWrite() bool {
	switch a {
	case AccessReadWrite, AccessWriteOnly, AccessWriteOnce, AccessReadWriteOnce:
		return true
	case AccessReadOnly:
		return false
	}

	return false
}

// String returns the canonical SVD spelling of the permission.
func (a Access) String() string {
	switch a {
	case AccessReadWrite:
		return "read-write"
	case AccessReadOnly:
		return "read-only"
	case AccessWriteOnly:
		return "write-only"
	case AccessWriteOnce:
		return "writeOnce"
	case AccessReadWriteOnce:
		return "read-writeOnce"
	default:
		return "unknown"
	}
}

// ParseAccess parses the SVD spelling of an access permission.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "read-write":
		return AccessReadWrite, nil
	case "read-only":
		return AccessReadOnly, nil
	case "write-only":
		return AccessWriteOnly, nil
	case "writeOnce":
		return AccessWriteOnce, nil
	case "read-writeOnce":
		return AccessReadWriteOnce, nil
	}

	return AccessReadWrite, fmt.Errorf("unknown access permission %q", s)
}
