package gen

import (
	"fmt"
	"strings"

	"devgen/internal/common"
	"devgen/internal/model"
	"devgen/internal/plan"
)

// ElementAddress resolves the absolute address of the index-th instance of
// an entity declared at offset inside a container based at base:
//
//	abs = base + offset + index*stride
//
// Applied recursively down the tree it yields the full formula
//
//	abs(node) = peripheralBase
//	          + Σ ancestor cluster (offset + index*stride)
//	          + node offset + node index*stride
//
// Bit-exactness of this sum is the primary correctness property of the
// generated output.
func ElementAddress(base, offset uint64, index int, stride uint64) uint64 {
	return base + offset + uint64(index)*stride
}

// instanceView feeds the instance template: one declaration per
// peripheral, a literal composite value nested to match the tree.
type instanceView struct {
	Name  string
	Type  string
	Base  string
	Value string
}

// buildInstance renders the instance declaration of one peripheral.
// Peripherals carrying a repetition group render as a fixed-size array
// with one element per instance at the declared address stride.
func (g *Generator) buildInstance(p *model.Peripheral, names *plan.NameTable) (instanceView, error) {
	v := instanceView{
		Name: common.SanitizeIdent(plan.TrimPlaceholder(p.Name)),
		Type: names.PeripheralName(p),
		Base: hexAddr(p.BaseAddress),
	}

	if p.Dim == nil {
		val, err := g.compositeValue(p, p.Children, p.BaseAddress, 1)
		if err != nil {
			return instanceView{}, err
		}

		v.Value = val

		return v, nil
	}

	var b strings.Builder

	b.WriteString("{\n")

	for i := 0; i < p.Dim.Count; i++ {
		val, err := g.compositeValue(p, p.Children,
			ElementAddress(p.BaseAddress, 0, i, p.Dim.Increment), 2)
		if err != nil {
			return instanceView{}, err
		}

		b.WriteString("\t" + val + ",\n")
	}

	b.WriteString("}")

	v.Type = fmt.Sprintf("[%d]%s", p.Dim.Count, v.Type)
	v.Value = b.String()

	return v, nil
}

// compositeValue renders the literal value block of one composite
// instance, resolving every member's absolute address. Member order
// matches the member order of the generated composite types.
func (g *Generator) compositeValue(p *model.Peripheral, children []model.Child,
	base uint64, depth int) (string, error) {
	ind := strings.Repeat("\t", depth)

	var b strings.Builder

	b.WriteString("{\n")

	for _, c := range plan.SortedChildren(children) {
		name := plan.MemberName(c, p, g.config.Options)

		dim := c.Dim()
		if dim != nil {
			if err := plan.CheckDim(dim, p.Name+"/"+c.Name()); err != nil {
				return "", err
			}
		}

		switch c.Kind {
		case model.KindRegister:
			typ := g.names.RegisterName(c.Register)
			if dim == nil {
				fmt.Fprintf(&b, "%s%s: %s{Reg: %s},\n",
					ind, name, typ, hexAddr(base+c.Offset()))
				continue
			}

			fmt.Fprintf(&b, "%s%s: [%d]%s{\n", ind, name, dim.Count, typ)

			for i := 0; i < dim.Count; i++ {
				fmt.Fprintf(&b, "%s\t{Reg: %s},\n",
					ind, hexAddr(ElementAddress(base, c.Offset(), i, dim.Increment)))
			}

			fmt.Fprintf(&b, "%s},\n", ind)

		case model.KindCluster:
			cl := c.Cluster
			typ := g.names.ClusterName(cl)

			if dim == nil {
				val, err := g.compositeValue(p, cl.Children, base+cl.AddressOffset, depth+1)
				if err != nil {
					return "", err
				}

				fmt.Fprintf(&b, "%s%s: %s%s,\n", ind, name, typ, val)

				continue
			}

			fmt.Fprintf(&b, "%s%s: [%d]%s{\n", ind, name, dim.Count, typ)

			for i := 0; i < dim.Count; i++ {
				elemBase := ElementAddress(base, cl.AddressOffset, i, dim.Increment)

				val, err := g.compositeValue(p, cl.Children, elemBase, depth+2)
				if err != nil {
					return "", err
				}

				fmt.Fprintf(&b, "%s\t%s,\n", ind, val)
			}

			fmt.Fprintf(&b, "%s},\n", ind)

		default:
			panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
		}
	}

	b.WriteString(strings.Repeat("\t", depth-1) + "}")

	return b.String(), nil
}

// hexAddr formats an absolute address the way datasheets print them.
func hexAddr(v uint64) string {
	if v <= 0xffffffff {
		return fmt.Sprintf("%#010x", v)
	}

	return fmt.Sprintf("%#x", v)
}

// hexValue formats a register value zero-padded to the register's nibble
// count.
func hexValue(v uint64, width int) string {
	return fmt.Sprintf("%#0*x", carrierBits(width)/4+2, v)
}
