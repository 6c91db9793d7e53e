package plan

import (
	"fmt"
	"sort"

	"devgen/internal/common"
	"devgen/internal/model"
)

// Options tunes artifact synthesis.
type Options struct {
	// HonorPrefix applies the peripheral's prependToName decoration to
	// register member names.
	HonorPrefix bool
	// HonorSuffix applies the peripheral's appendToName decoration to
	// register member names.
	HonorSuffix bool
}

// DefaultOptions returns the default synthesis options.
func DefaultOptions() Options {
	return Options{HonorPrefix: true, HonorSuffix: true}
}

// BuildHierarchy produces the composite type definitions of one peripheral,
// ordered so that no definition refers to a type defined later. Member
// lists are ordered by ascending address offset.
//
// The traversal is an explicit-stack depth-first walk that discovers types
// in root-to-leaf order; the sequence is reversed before returning so every
// type precedes anything that embeds it.
func BuildHierarchy(p *model.Peripheral, names *NameTable, opts Options) ([]TypeDef, error) {
	var out []TypeDef

	members, err := buildMembers(p.Children, p, names, opts, p.Name)
	if err != nil {
		return nil, err
	}

	out = append(out, TypeDef{
		Name:        names.PeripheralName(p),
		Description: p.Description,
		Members:     members,
	})

	// Each register needs a minimal wrapper type holding nothing but its
	// memory location, generated independently of its container.
	var stack []*model.Cluster

	for _, c := range p.Children {
		switch c.Kind {
		case model.KindRegister:
			out = append(out, registerWrapper(c.Register, names))
		case model.KindCluster:
			stack = append(stack, c.Cluster)
		default:
			panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
		}
	}

	for len(stack) > 0 {
		cl := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		members, err := buildMembers(cl.Children, p, names, opts, p.Name+"/"+cl.Name)
		if err != nil {
			return nil, err
		}

		out = append(out, TypeDef{
			Name:        names.ClusterName(cl),
			Description: cl.Description,
			Members:     members,
		})

		for _, c := range cl.Children {
			switch c.Kind {
			case model.KindRegister:
				out = append(out, registerWrapper(c.Register, names))
			case model.KindCluster:
				stack = append(stack, c.Cluster)
			default:
				panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
			}
		}
	}

	// Leaf-to-root: consumers need a type fully defined before anything
	// that contains it.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

func registerWrapper(r *model.Register, names *NameTable) TypeDef {
	return TypeDef{
		Name:            names.RegisterName(r),
		Description:     r.Description,
		RegisterWrapper: true,
		Reset:           r.ResetValue,
		Width:           r.Size,
	}
}

// buildMembers assembles the member list of one composite, ordered by
// ascending address offset (ties broken by discovery order).
func buildMembers(children []model.Child, p *model.Peripheral, names *NameTable,
	opts Options, construct string) ([]Member, error) {
	members := make([]Member, 0, len(children))

	for _, c := range SortedChildren(children) {
		m := Member{
			Name:   MemberName(c, p, opts),
			Type:   names.ChildName(c),
			Offset: c.Offset(),
		}

		if dim := c.Dim(); dim != nil {
			if err := CheckDim(dim, construct+"/"+c.Name()); err != nil {
				return nil, err
			}

			m.Count = dim.Count
			m.Stride = dim.Increment
		}

		members = append(members, m)
	}

	return members, nil
}

// SortedChildren returns the children ordered by ascending address offset,
// ties kept in declaration order. The instance renderer relies on this
// matching the member order of the generated composite types exactly.
func SortedChildren(children []model.Child) []model.Child {
	sorted := make([]model.Child, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset() < sorted[j].Offset()
	})

	return sorted
}

// MemberName derives the field name a child gets inside its container.
// Register names carry the peripheral's declared prefix/suffix decoration
// when the corresponding option is on.
func MemberName(c model.Child, p *model.Peripheral, opts Options) string {
	name := TrimPlaceholder(c.Name())

	if c.Kind == model.KindRegister {
		if opts.HonorPrefix && p.PrependToName != "" {
			name = p.PrependToName + name
		}

		if opts.HonorSuffix && p.AppendToName != "" {
			name += p.AppendToName
		}
	}

	return common.SanitizeIdent(name)
}

// CheckDim validates the structural integrity of a repetition descriptor.
// A descriptor flagged present but missing its count or increment is a
// logic inconsistency in the upstream model and aborts generation.
func CheckDim(d *model.DimGroup, construct string) error {
	if d.Count < 1 {
		return fmt.Errorf("%s: repetition group present but count is %d", construct, d.Count)
	}

	if d.Count > 1 && d.Increment == 0 {
		return fmt.Errorf("%s: repetition group of %d instances has no address increment",
			construct, d.Count)
	}

	return nil
}
