package plan

import (
	"fmt"

	"devgen/internal/model"
)

// BuildPeripheral runs the full synthesis pipeline for one peripheral:
// type hierarchy, bitfield layouts, extracted enums, and operation sets.
// ResolveNames must have run over the device first.
func BuildPeripheral(p *model.Peripheral, names *NameTable, opts Options) (*PeripheralPlan, error) {
	if p.Dim != nil {
		if err := CheckDim(p.Dim, p.Name); err != nil {
			return nil, err
		}
	}

	types, err := BuildHierarchy(p, names, opts)
	if err != nil {
		return nil, err
	}

	pp := &PeripheralPlan{
		Peripheral: p,
		TypeName:   names.PeripheralName(p),
		Types:      types,
	}

	walkRegisters(p.Children, func(r *model.Register) {
		regType := names.RegisterName(r)

		fs, enums := BuildFieldStruct(r, regType)
		if fs != nil {
			pp.FieldStructs = append(pp.FieldStructs, *fs)
		}

		pp.Enums = append(pp.Enums, enums...)
		pp.Ops = append(pp.Ops, BuildOps(r, regType, fs))
	})

	return pp, nil
}

// walkRegisters visits every register under the given children in
// declaration order, descending into nested clusters.
func walkRegisters(children []model.Child, visit func(*model.Register)) {
	for _, c := range children {
		switch c.Kind {
		case model.KindRegister:
			visit(c.Register)
		case model.KindCluster:
			walkRegisters(c.Cluster.Children, visit)
		default:
			panic(fmt.Sprintf("unhandled child kind %d", c.Kind))
		}
	}
}
