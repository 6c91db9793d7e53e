package model

// Device is the root of the entity tree: one device description, owning
// its peripherals and the register property defaults they inherit.
type Device struct {
	Name        string
	Vendor      string
	Series      string
	Description string
	LicenseText string
	CPU         *CPU
	// Defaults are the device-wide register properties (bit width, access)
	// inherited by any register that does not declare its own.
	Defaults    Properties
	Peripherals []*Peripheral
}

// CPU describes the core the device is built around. Only the fields the
// generator consumes are retained.
type CPU struct {
	Name           string
	Revision       string
	NVICPrioBits   int
	FPUPresent     bool
	MPUPresent     bool
	InterruptCount int
}

// Properties are the inheritable register properties. A zero Size or unset
// access means "inherit from the enclosing scope"; the loader resolves the
// cascade so the tree the generator sees carries concrete values on every
// register.
type Properties struct {
	Size      int
	Access    Access
	AccessSet bool
}

// Peripheral is a top-level addressable hardware block.
type Peripheral struct {
	Name        string
	Version     string
	Description string
	GroupName   string
	BaseAddress uint64
	// HeaderStructName, when set, overrides the synthesized type name.
	HeaderStructName string
	// PrependToName and AppendToName decorate the names of the peripheral's
	// registers; config toggles decide whether they are honored.
	PrependToName string
	AppendToName  string
	Dim           *DimGroup
	DerivedFrom   string // resolved away by the loader; kept for diagnostics
	Interrupts    []Interrupt
	Children      []Child
}

// Interrupt is one interrupt line sourced by a peripheral.
type Interrupt struct {
	Name        string
	Description string
	Value       int
}

// Cluster is an address-relative grouping of registers and sub-clusters.
// Ownership is strictly top-down: a cluster never refers to an ancestor.
type Cluster struct {
	Name             string
	Description      string
	AddressOffset    uint64
	HeaderStructName string
	Dim              *DimGroup
	DerivedFrom      string
	// Defaults, when set, override the inherited register properties for
	// this cluster's subtree. Resolved by the loader.
	Defaults Properties
	Children []Child
}

// Register is a single addressable storage unit.
type Register struct {
	Name          string
	Description   string
	AddressOffset uint64
	Size          int
	Access        Access
	ResetValue    uint64
	Dim           *DimGroup
	DerivedFrom   string
	Fields        []*Field
}

// Field is a named bit-range slice of a register. LSB and MSB are both
// inclusive and assumed to lie within [0, Size-1] of the owning register.
type Field struct {
	Name        string
	Description string
	LSB         int
	MSB         int
	Access      Access
	AccessSet   bool
	Enum        *EnumeratedValues
	// DerivedFrom and Dim are recognized but unsupported; they are reported
	// by the inspection pre-pass and otherwise passed through unresolved.
	DerivedFrom string
	Dim         *DimGroup
}

// Width returns the field width in bits.
func (f *Field) Width() int { return f.MSB - f.LSB + 1 }

// EnumeratedValues is an ordered set of (symbol, value) pairs attached to a
// field. Symbols are unique within one set (an input invariant, not checked).
type EnumeratedValues struct {
	// Name, when set, overrides the synthesized enum type name.
	Name        string
	DerivedFrom string
	Values      []EnumValue
}

// EnumValue is one symbol of an enumerated-value set.
type EnumValue struct {
	Name        string
	Description string
	Value       uint64
}

// DimGroup declares that an entity is really Count identical instances laid
// out at Increment byte stride, starting at the entity's own offset.
type DimGroup struct {
	Count     int
	Increment uint64
	// IndexName, when set, overrides the synthesized type name for the
	// repeated instances.
	IndexName string
}
