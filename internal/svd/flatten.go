package svd

// derivedFrom flattening happens at the raw element level, before
// conversion: the derived element borrows the base element's structure by
// reference, and conversion then materializes independent model nodes for
// each peripheral. Chains (A derives B derives C) are resolved base-first.
//
// Only peripheral-, cluster-, and register-level references are resolved
// here. Field-level and enumerated-value-set references stay in the tree
// for the inspection pre-pass to warn about.

func flattenPeripherals(els []peripheralElement) {
	byName := make(map[string]*peripheralElement, len(els))
	for i := range els {
		byName[els[i].Name] = &els[i]
	}

	done := make(map[string]bool, len(els))

	var resolve func(el *peripheralElement)
	resolve = func(el *peripheralElement) {
		if done[el.Name] {
			return
		}

		done[el.Name] = true

		if el.DerivedFrom == "" {
			return
		}

		base, ok := byName[el.DerivedFrom]
		if !ok || base == el {
			return
		}

		resolve(base)

		if el.Registers == nil {
			el.Registers = base.Registers
		}

		if el.Description == "" {
			el.Description = base.Description
		}

		if el.GroupName == "" {
			el.GroupName = base.GroupName
		}

		if el.HeaderStructName == "" {
			el.HeaderStructName = base.HeaderStructName
		}

		if el.PrependToName == "" {
			el.PrependToName = base.PrependToName
		}

		if el.AppendToName == "" {
			el.AppendToName = base.AppendToName
		}

		if el.Size == nil {
			el.Size = base.Size
		}

		if el.Access == nil {
			el.Access = base.Access
		}
	}

	for i := range els {
		resolve(&els[i])
	}
}

// flattenRegisters resolves derivedFrom between sibling registers.
func flattenRegisters(els []registerElement) {
	byName := make(map[string]*registerElement, len(els))
	for i := range els {
		byName[els[i].Name] = &els[i]
	}

	done := make(map[string]bool, len(els))

	var resolve func(el *registerElement)
	resolve = func(el *registerElement) {
		if done[el.Name] {
			return
		}

		done[el.Name] = true

		if el.DerivedFrom == "" {
			return
		}

		base, ok := byName[el.DerivedFrom]
		if !ok || base == el {
			return
		}

		resolve(base)

		if len(el.Fields) == 0 {
			el.Fields = base.Fields
		}

		if el.Description == "" {
			el.Description = base.Description
		}

		if el.Size == nil {
			el.Size = base.Size
		}

		if el.Access == nil {
			el.Access = base.Access
		}

		if el.ResetValue == nil {
			el.ResetValue = base.ResetValue
		}
	}

	for i := range els {
		resolve(&els[i])
	}
}

// flattenClusters resolves derivedFrom between sibling clusters.
func flattenClusters(els []clusterElement) {
	byName := make(map[string]*clusterElement, len(els))
	for i := range els {
		byName[els[i].Name] = &els[i]
	}

	done := make(map[string]bool, len(els))

	var resolve func(el *clusterElement)
	resolve = func(el *clusterElement) {
		if done[el.Name] {
			return
		}

		done[el.Name] = true

		if el.DerivedFrom == "" {
			return
		}

		base, ok := byName[el.DerivedFrom]
		if !ok || base == el {
			return
		}

		resolve(base)

		if len(el.Registers) == 0 && len(el.Clusters) == 0 {
			el.Registers = base.Registers
			el.Clusters = base.Clusters
		}

		if el.Description == "" {
			el.Description = base.Description
		}

		if el.HeaderStructName == "" {
			el.HeaderStructName = base.HeaderStructName
		}

		if el.Size == nil {
			el.Size = base.Size
		}

		if el.Access == nil {
			el.Access = base.Access
		}
	}

	for i := range els {
		resolve(&els[i])
	}
}
