package gen

import (
	"fmt"
	"strings"

	"devgen/internal/plan"
)

// carrier returns the smallest unsigned Go type that holds width bits.
func carrier(width int) string {
	return fmt.Sprintf("uint%d", carrierBits(width))
}

func carrierBits(width int) int {
	switch {
	case width <= 8:
		return 8
	case width <= 16:
		return 16
	case width <= 32:
		return 32
	default:
		return 64
	}
}

// maskHex renders the unshifted bit mask of a width-bit value.
func maskHex(width int) string {
	if width >= 64 {
		return "0xffffffffffffffff"
	}

	return fmt.Sprintf("%#x", uint64(1)<<uint(width)-1)
}

// oneline collapses a free-form description into a single comment line.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// headerView feeds the file preamble template.
type headerView struct {
	Package     string
	Source      string
	Comment     string
	Device      string
	Description string
	Vendor      string
}

// exceptionView feeds the exception table template.
type exceptionView struct {
	CPU     string
	Entries []exceptionEntry
}

// typeView feeds the composite and wrapper templates. Reset is only set
// for register wrappers.
type typeView struct {
	Name    string
	Doc     string
	Reset   string
	Members []plan.Member
}

// fieldStructView feeds the field-struct template: the packed slots plus
// the pack/unpack arithmetic pre-computed as strings.
type fieldStructView struct {
	Name     string
	Register string
	Carrier  string
	Slots    []slotView
}

// slotView is one rendered slot of a packed field struct.
type slotView struct {
	Name string
	Type string
	Doc  string
	Mask string
	LSB  int
	Bool bool
}

// buildFieldStructView decides each slot's rendered value type: a bool for
// 1-bit fields, the extracted enum type when one backs the field, and
// otherwise the smallest unsigned type covering the field, with the legal
// range bounded by the field mask on pack. Fillers render unexported so
// they stay off the public surface.
func buildFieldStructView(fs plan.FieldStruct) fieldStructView {
	v := fieldStructView{
		Name:     fs.Name,
		Register: fs.Register,
		Carrier:  carrier(fs.Width),
	}

	for _, f := range fs.Fields {
		s := slotView{LSB: f.LSB, Mask: maskHex(f.Width())}

		switch {
		case f.Reserved:
			s.Name = strings.ToLower(f.Name)
			s.Type = carrier(f.Width())
			s.Doc = fmt.Sprintf("undefined hardware bits [%d:%d]", f.MSB, f.LSB)
		case f.Enum != "":
			s.Name = f.Name
			s.Type = f.Enum
			s.Doc = fmt.Sprintf("bits [%d:%d]", f.MSB, f.LSB)
		case f.Width() == 1:
			s.Name = f.Name
			s.Type = "bool"
			s.Bool = true
			s.Doc = fmt.Sprintf("bit %d", f.LSB)
		default:
			s.Name = f.Name
			s.Type = carrier(f.Width())
			s.Doc = fmt.Sprintf("bits [%d:%d], legal range 0..%s",
				f.MSB, f.LSB, maskHex(f.Width()))
		}

		// A field declaring its own permission can be narrower than the
		// register's; surface it on the slot.
		if f.AccessSet {
			s.Doc += ", " + f.Access.String()
		}

		v.Slots = append(v.Slots, s)
	}

	return v
}

// enumView feeds the enum template.
type enumView struct {
	Name    string
	Doc     string
	Carrier string
	Values  []enumValueView
}

type enumValueView struct {
	Name  string
	Value uint64
	Doc   string
}

func buildEnumView(e plan.EnumDef) enumView {
	v := enumView{
		Name:    e.Name,
		Doc:     oneline(e.Description),
		Carrier: carrier(e.FieldWidth),
	}

	for _, val := range e.Values {
		v.Values = append(v.Values, enumValueView{
			Name:  e.Name + "_" + val.Name,
			Value: val.Value,
			Doc:   oneline(val.Description),
		})
	}

	return v
}

// opsView feeds the operations template with pre-computed access
// expressions.
type opsView struct {
	Register  string
	ValueType string
	ReadExpr  string
	WriteStmt string
	Read      bool
	Write     bool
	Modify    bool
}

func buildOpsView(ops plan.OpSet) opsView {
	bits := carrierBits(ops.Width)
	c := fmt.Sprintf("uint%d", bits)
	load := fmt.Sprintf("volatile.LoadUint%d((*%s)(unsafe.Pointer(r.Reg)))", bits, c)
	store := fmt.Sprintf("volatile.StoreUint%d((*%s)(unsafe.Pointer(r.Reg)), %%s)", bits, c)

	v := opsView{
		Register: ops.Register,
		Read:     ops.Read,
		Write:    ops.Write,
		Modify:   ops.Modify,
	}

	if ops.Value != "" {
		// The register has a decomposed view: traffic is reinterpreted
		// bit-for-bit between the raw storage and the field struct.
		v.ValueType = ops.Value
		v.ReadExpr = ops.Value + "From(" + load + ")"
		v.WriteStmt = fmt.Sprintf(store, "v.Bits()")
	} else {
		v.ValueType = c
		v.ReadExpr = load
		v.WriteStmt = fmt.Sprintf(store, "v")
	}

	return v
}
