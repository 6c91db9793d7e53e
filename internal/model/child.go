package model

import "fmt"

// ChildKind discriminates the member kinds a peripheral or cluster can own.
// The set is closed: traversal and render code switch over it exhaustively
// and panic on an unhandled kind, so adding a kind is a checked change.
type ChildKind int

const (
	KindRegister ChildKind = iota
	KindCluster
)

// String returns a human-readable kind name.
func (k ChildKind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// Child is one member of a peripheral or cluster: exactly one of Register
// and Cluster is non-nil, selected by Kind.
type Child struct {
	Kind     ChildKind
	Register *Register
	Cluster  *Cluster
}

// RegisterChild wraps a register as a tree member.
func RegisterChild(r *Register) Child {
	return Child{Kind: KindRegister, Register: r}
}

// ClusterChild wraps a cluster as a tree member.
func ClusterChild(c *Cluster) Child {
	return Child{Kind: KindCluster, Cluster: c}
}

// Name returns the member's declared name.
func (c Child) Name() string {
	switch c.Kind {
	case KindRegister:
		return c.Register.Name
	case KindCluster:
		return c.Cluster.Name
	}

	panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
}

// Offset returns the member's address offset relative to its parent.
func (c Child) Offset() uint64 {
	switch c.Kind {
	case KindRegister:
		return c.Register.AddressOffset
	case KindCluster:
		return c.Cluster.AddressOffset
	}

	panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
}

// Dim returns the member's repetition descriptor, or nil.
func (c Child) Dim() *DimGroup {
	switch c.Kind {
	case KindRegister:
		return c.Register.Dim
	case KindCluster:
		return c.Cluster.Dim
	}

	panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
}
