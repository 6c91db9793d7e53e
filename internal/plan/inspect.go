package plan

import (
	"strings"

	"devgen/internal/diagnostic"
	"devgen/internal/model"
)

// Diagnostic codes for recognized-but-unsupported input shapes. Each is
// reported as a non-fatal warning; the construct is then passed through
// largely unresolved.
const (
	CodePeripheralDimPlaceholder = "peripheral-dim-placeholder"
	CodeFieldDerivedFrom         = "field-derived-from"
	CodeFieldDim                 = "field-dim"
	CodeEnumDerivedFrom          = "enum-derived-from"
)

// Inspect performs the warning pre-pass over the whole tree, independent
// of whether generation later reaches the affected construct. Each
// occurrence is reported exactly once.
func Inspect(dev *model.Device) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, p := range dev.Peripherals {
		if p.Dim != nil && strings.Contains(p.Name, "%s") {
			diags.AddWarning(CodePeripheralDimPlaceholder, p.Name,
				"peripheral repetition with a name placeholder is not supported; "+
					"instances keep the placeholder name")
		}

		inspectChildren(p.Children, p.Name, &diags)
	}

	return diags
}

func inspectChildren(children []model.Child, path string, diags *diagnostic.Diagnostics) {
	for _, c := range children {
		switch c.Kind {
		case model.KindRegister:
			inspectRegister(c.Register, path+"/"+c.Register.Name, diags)
		case model.KindCluster:
			inspectChildren(c.Cluster.Children, path+"/"+c.Cluster.Name, diags)
		}
	}
}

func inspectRegister(r *model.Register, path string, diags *diagnostic.Diagnostics) {
	for _, f := range r.Fields {
		fpath := path + "/" + f.Name

		if f.DerivedFrom != "" {
			diags.AddWarning(CodeFieldDerivedFrom, fpath,
				"field-level derivedFrom is not supported; field is emitted without derived content")
		}

		if f.Dim != nil {
			diags.AddWarning(CodeFieldDim, fpath,
				"field-level repetition groups are not supported; field is emitted un-repeated")
		}

		if f.Enum != nil && f.Enum.DerivedFrom != "" {
			diags.AddWarning(CodeEnumDerivedFrom, fpath,
				"derivedFrom on an enumerated-value set is not supported; values are emitted as declared")
		}
	}
}
