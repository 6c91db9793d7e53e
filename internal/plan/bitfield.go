package plan

import (
	"fmt"
	"sort"
	"strings"

	"devgen/internal/common"
	"devgen/internal/model"
)

// Trivial reports whether a register needs no decomposed field view: it
// declares no fields, or exactly one field spanning the full register
// width. Both shapes read and write the raw unsigned value directly.
func Trivial(r *model.Register) bool {
	f, ok := common.First(r.Fields)
	if !ok {
		return true
	}

	if len(r.Fields) > 1 {
		return false
	}

	return f.LSB == 0 && f.MSB == r.Size-1
}

// BuildFieldStruct synthesizes the packed field layout of one register and
// extracts any enumerated-value sets into standalone definitions. Returns
// (nil, nil) for trivial registers.
//
// The packing walk sorts declared fields by ascending LSB and inserts a
// synthetic filler over every gap, including a trailing one up to the
// register width, so the final list covers [0, width-1] exactly.
func BuildFieldStruct(r *model.Register, regType string) (*FieldStruct, []EnumDef) {
	if Trivial(r) {
		return nil, nil
	}

	declared := make([]*model.Field, len(r.Fields))
	copy(declared, r.Fields)
	sort.SliceStable(declared, func(i, j int) bool {
		return declared[i].LSB < declared[j].LSB
	})

	taken := make(map[string]bool, len(declared))
	for _, f := range declared {
		taken[common.SanitizeIdent(f.Name)] = true
	}

	fs := &FieldStruct{
		Name:     strings.TrimSuffix(regType, TypeSuffix) + "_Fields",
		Register: regType,
		Width:    r.Size,
	}

	var enums []EnumDef

	prevMsb := -1
	fillers := 0

	for _, f := range declared {
		if f.LSB > prevMsb+1 {
			fs.Fields = append(fs.Fields, filler(prevMsb+1, f.LSB-1, &fillers, taken))
		}

		pf := PackedField{
			Name:        common.SanitizeIdent(f.Name),
			LSB:         f.LSB,
			MSB:         f.MSB,
			Description: f.Description,
			Access:      f.Access,
			AccessSet:   f.AccessSet,
		}

		if f.Enum != nil && !common.IsEmpty(f.Enum.Values) {
			e := extractEnum(f, regType)
			pf.Enum = e.Name
			enums = append(enums, e)
		}

		fs.Fields = append(fs.Fields, pf)
		prevMsb = f.MSB
	}

	if prevMsb < r.Size-1 {
		fs.Fields = append(fs.Fields, filler(prevMsb+1, r.Size-1, &fillers, taken))
	}

	return fs, enums
}

// filler builds the k-th synthetic reserved slot of a register. Fillers
// represent undefined hardware bits and are excluded from the public
// accessor surface.
func filler(lsb, msb int, count *int, taken map[string]bool) PackedField {
	name := "RESERVED"
	if *count > 0 {
		name = fmt.Sprintf("RESERVED%d", *count)
	}

	// A declared field may legitimately be called RESERVED; keep probing
	// until the filler name is free.
	for taken[name] {
		*count++
		name = fmt.Sprintf("RESERVED%d", *count)
	}

	taken[name] = true
	*count++

	return PackedField{Name: name, LSB: lsb, MSB: msb, Reserved: true}
}

// extractEnum turns a field's enumerated-value set into a standalone
// definition. The type name is the explicit override when present,
// otherwise <registerName>_<fieldName>.
func extractEnum(f *model.Field, regType string) EnumDef {
	name := f.Enum.Name
	if name == "" {
		name = strings.TrimSuffix(regType, TypeSuffix) + "_" + f.Name
	}

	e := EnumDef{
		Name:        common.SanitizeIdent(name),
		Description: f.Description,
		FieldWidth:  f.Width(),
	}

	for _, v := range f.Enum.Values {
		e.Values = append(e.Values, model.EnumValue{
			Name:        common.SanitizeIdent(v.Name),
			Description: v.Description,
			Value:       v.Value,
		})
	}

	return e
}
