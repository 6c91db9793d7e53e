package plan

import (
	"fmt"
	"strings"

	"devgen/internal/common"
	"devgen/internal/model"
)

// NameTable maps tree entities to their resolved type names. It is the only
// output of the naming pass; the tree itself is never written to.
//
// Uniqueness is enforced within each peripheral's subtree: synthesized
// names carry the parent type name, so across peripherals a name can only
// recur when two peripherals share a base name (group name, struct-name
// override, or a derivedFrom copy). Those repeats are intentional: they
// are exactly what the emission driver deduplicates.
type NameTable struct {
	peripherals map[*model.Peripheral]string
	clusters    map[*model.Cluster]string
	registers   map[*model.Register]string
	// used is the per-peripheral collision set, reset for each peripheral.
	used map[string]bool
}

func newNameTable() *NameTable {
	return &NameTable{
		peripherals: make(map[*model.Peripheral]string),
		clusters:    make(map[*model.Cluster]string),
		registers:   make(map[*model.Register]string),
	}
}

// PeripheralName returns the resolved type name of p.
func (t *NameTable) PeripheralName(p *model.Peripheral) string {
	return t.peripherals[p]
}

// ClusterName returns the resolved type name of c.
func (t *NameTable) ClusterName(c *model.Cluster) string {
	return t.clusters[c]
}

// RegisterName returns the resolved type name of r.
func (t *NameTable) RegisterName(r *model.Register) string {
	return t.registers[r]
}

// ChildName returns the resolved type name of a tree member.
func (t *NameTable) ChildName(c model.Child) string {
	switch c.Kind {
	case model.KindRegister:
		return t.registers[c.Register]
	case model.KindCluster:
		return t.clusters[c.Cluster]
	}

	panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
}

// ResolveNames walks the device top-down, once per peripheral, and assigns
// a type name to every peripheral, cluster, and register, collision-free
// within each peripheral's subtree. The walk is deterministic: identical
// input yields identical names. Every later phase keys its output by these
// names.
func ResolveNames(dev *model.Device) *NameTable {
	t := newNameTable()

	for _, p := range dev.Peripherals {
		t.resolvePeripheral(p)
	}

	return t
}

func (t *NameTable) resolvePeripheral(p *model.Peripheral) {
	t.used = make(map[string]bool)

	// Peripherals have no parent type name: the own base name is used
	// directly unless overridden. The group name doubles as a struct-name
	// hint so that sibling peripherals of one group share a type.
	base := common.SanitizeIdent(TrimPlaceholder(p.Name))
	if p.GroupName != "" {
		base = common.SanitizeIdent(p.GroupName)
	}

	if p.HeaderStructName != "" {
		base = common.SanitizeIdent(p.HeaderStructName)
	}

	if p.Dim != nil && p.Dim.IndexName != "" {
		base = common.SanitizeIdent(TrimPlaceholder(p.Dim.IndexName))
	}

	name := t.claim(base)
	t.peripherals[p] = name

	for _, c := range p.Children {
		t.resolveChild(c, name)
	}
}

func (t *NameTable) resolveChild(c model.Child, parent string) {
	switch c.Kind {
	case model.KindRegister:
		r := c.Register
		t.registers[r] = t.claim(baseName(r.Name, "", r.Dim, parent))
	case model.KindCluster:
		cl := c.Cluster
		name := t.claim(baseName(cl.Name, cl.HeaderStructName, cl.Dim, parent))
		t.clusters[cl] = name

		for _, cc := range cl.Children {
			t.resolveChild(cc, name)
		}
	default:
		panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
	}
}

// baseName picks the type-name base in priority order: repetition-group
// instance override, explicit struct-name override, then synthesis from the
// parent type name with the standard suffix stripped.
func baseName(own, structOverride string, dim *model.DimGroup, parent string) string {
	if dim != nil && dim.IndexName != "" {
		return common.SanitizeIdent(TrimPlaceholder(dim.IndexName))
	}

	if structOverride != "" {
		return common.SanitizeIdent(structOverride)
	}

	return strings.TrimSuffix(parent, TypeSuffix) + "_" +
		common.SanitizeIdent(TrimPlaceholder(own))
}

// claim appends the standard type suffix to base and reserves the result
// within the current peripheral. Accidental collisions (for example a
// register literally named like a cluster path concatenation) are
// disambiguated deterministically by a counter.
func (t *NameTable) claim(base string) string {
	name := base + TypeSuffix
	if !t.used[name] {
		t.used[name] = true
		return name
	}

	for n := 2; ; n++ {
		name = fmt.Sprintf("%s_%d%s", base, n, TypeSuffix)
		if !t.used[name] {
			t.used[name] = true
			return name
		}
	}
}

// TrimPlaceholder strips the repetition-group "%s" placeholder from a
// declared name, e.g. "CC[%s]" -> "CC".
func TrimPlaceholder(s string) string {
	s = strings.ReplaceAll(s, "[%s]", "")
	return strings.ReplaceAll(s, "%s", "")
}
