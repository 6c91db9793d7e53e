package plan

import "devgen/internal/model"

// TypeSuffix is appended to every synthesized type name.
const TypeSuffix = "_Type"

// PeripheralPlan is everything synthesized for one peripheral. Artifacts
// are keyed by type name so the emission driver can deduplicate them
// across peripherals.
type PeripheralPlan struct {
	Peripheral *model.Peripheral
	// TypeName is the peripheral's own resolved type name.
	TypeName string
	// Types is the composite type sequence in dependency order: every
	// type appears before any type that embeds it.
	Types []TypeDef
	// FieldStructs holds the packed bitfield layouts of the peripheral's
	// non-trivial registers.
	FieldStructs []FieldStruct
	// Enums holds the enumerated-value sets extracted from fields.
	Enums []EnumDef
	// Ops holds one operation set per register type.
	Ops []OpSet
}

// TypeDef is one generated composite type definition.
type TypeDef struct {
	Name        string
	Description string
	// Members is ordered by ascending address offset. Empty for register
	// wrapper types.
	Members []Member
	// RegisterWrapper marks the minimal type holding nothing but a
	// register's memory location.
	RegisterWrapper bool
	// Reset and Width describe the register behind a wrapper type so its
	// reset value can be surfaced on the generated doc. Unused for
	// composites.
	Reset uint64
	Width int
}

// Member is one entry of a composite type.
type Member struct {
	Name   string
	Type   string
	Offset uint64
	// Count > 0 renders the member as a fixed-size array [Count]Type.
	Count int
	// Stride is the address increment between array elements.
	Stride uint64
}

// FieldStruct is the decomposed view of a register: its declared fields
// plus synthetic fillers, together covering [0, Width-1] with no gaps.
type FieldStruct struct {
	// Name is the struct type name, e.g. "TIMER0_CR_Fields".
	Name string
	// Register is the register type name this layout decomposes.
	Register string
	Width    int
	Fields   []PackedField
}

// PackedField is one slot of a packed field struct.
type PackedField struct {
	Name string
	LSB  int
	MSB  int
	// Reserved marks a synthetic filler covering undefined hardware bits;
	// fillers are kept out of the public accessor surface.
	Reserved bool
	// Enum is the name of the extracted enum type backing this field,
	// or empty.
	Enum        string
	Description string
	// Access is the field's own permission; AccessSet distinguishes an
	// explicit declaration from one inherited off the register.
	Access    model.Access
	AccessSet bool
}

// Width returns the slot width in bits.
func (f PackedField) Width() int { return f.MSB - f.LSB + 1 }

// EnumDef is an enumerated-value set extracted into a standalone type.
type EnumDef struct {
	Name        string
	Description string
	// FieldWidth is the bit width of the field the set belongs to; it
	// bounds the underlying type of the generated constants.
	FieldWidth int
	Values     []model.EnumValue
}

// OpSet is the set of access operations one register type exposes.
type OpSet struct {
	// Register is the register type name the operations hang off.
	Register string
	Width    int
	Read     bool
	Write    bool
	// Modify is exposed only when both Read and Write are; it is a
	// non-atomic read-modify-write helper.
	Modify bool
	// Value is the field-struct type name read and write traffic in,
	// or empty when the register has no decomposed view (raw uintN).
	Value string
}
