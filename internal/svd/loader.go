// Package svd loads a CMSIS-SVD device description into the entity tree
// the compiler core consumes. It resolves what the core treats as upstream
// concerns: peripheral/cluster/register derivedFrom references are
// flattened into concrete copies, and inherited register properties (bit
// width, access) are folded down so every register carries concrete
// values. Field-level and enumerated-value-set derivation are left
// unresolved; the plan.Inspect pre-pass warns about them.
package svd

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"devgen/internal/model"
)

// LoadFile reads and parses an SVD file.
func LoadFile(path string) (*model.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVD file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse unmarshals SVD data and builds the device tree.
func Parse(data []byte) (*model.Device, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse SVD: %w", err)
	}

	return convertDevice(&doc)
}

func convertDevice(doc *document) (*model.Device, error) {
	dev := &model.Device{
		Name:        doc.Name,
		Vendor:      doc.Vendor,
		Series:      doc.Series,
		Description: doc.Description,
		LicenseText: doc.LicenseText,
	}

	// Device-wide defaults: 32-bit read-write unless the file says
	// otherwise.
	defaults, err := parseProps(model.Properties{Size: 32, Access: model.AccessReadWrite},
		doc.Size, doc.Access)
	if err != nil {
		return nil, fmt.Errorf("device defaults: %w", err)
	}

	dev.Defaults = defaults

	if doc.CPU != nil {
		cpu, err := convertCPU(doc.CPU)
		if err != nil {
			return nil, err
		}

		dev.CPU = cpu
	}

	flattenPeripherals(doc.Peripherals)

	for i := range doc.Peripherals {
		p, err := convertPeripheral(&doc.Peripherals[i], defaults)
		if err != nil {
			return nil, fmt.Errorf("peripheral %s: %w", doc.Peripherals[i].Name, err)
		}

		dev.Peripherals = append(dev.Peripherals, p)
	}

	return dev, nil
}

func convertCPU(c *cpuElement) (*model.CPU, error) {
	cpu := &model.CPU{
		Name:       c.Name,
		Revision:   c.Revision,
		FPUPresent: scanBool(c.FPUPresent),
		MPUPresent: scanBool(c.MPUPresent),
	}

	if c.NVICPrioBits != "" {
		v, err := scanInt(c.NVICPrioBits)
		if err != nil {
			return nil, fmt.Errorf("cpu nvicPrioBits: %w", err)
		}

		cpu.NVICPrioBits = v
	}

	if c.DeviceNumInterrupts != "" {
		v, err := scanInt(c.DeviceNumInterrupts)
		if err != nil {
			return nil, fmt.Errorf("cpu deviceNumInterrupts: %w", err)
		}

		cpu.InterruptCount = v
	}

	return cpu, nil
}

func convertPeripheral(el *peripheralElement, inherited model.Properties) (*model.Peripheral, error) {
	base, err := scanUint(el.BaseAddress)
	if err != nil {
		return nil, fmt.Errorf("baseAddress: %w", err)
	}

	props, err := parseProps(inherited, el.Size, el.Access)
	if err != nil {
		return nil, err
	}

	dim, err := parseDim(el.Dim, el.DimIncrement, el.DimName)
	if err != nil {
		return nil, err
	}

	p := &model.Peripheral{
		Name:             el.Name,
		Version:          el.Version,
		Description:      el.Description,
		GroupName:        el.GroupName,
		BaseAddress:      base,
		HeaderStructName: el.HeaderStructName,
		PrependToName:    el.PrependToName,
		AppendToName:     el.AppendToName,
		Dim:              dim,
		DerivedFrom:      el.DerivedFrom,
	}

	for _, irq := range el.Interrupts {
		v, err := scanInt(irq.Value)
		if err != nil {
			return nil, fmt.Errorf("interrupt %s: %w", irq.Name, err)
		}

		p.Interrupts = append(p.Interrupts, model.Interrupt{
			Name:        irq.Name,
			Description: irq.Description,
			Value:       v,
		})
	}

	if el.Registers != nil {
		children, err := convertChildren(el.Registers.Registers, el.Registers.Clusters, props)
		if err != nil {
			return nil, err
		}

		p.Children = children
	}

	return p, nil
}

// convertChildren builds the ordered member list of a peripheral or
// cluster scope, resolving sibling derivedFrom references first.
func convertChildren(regs []registerElement, clusters []clusterElement,
	inherited model.Properties) ([]model.Child, error) {
	flattenRegisters(regs)
	flattenClusters(clusters)

	children := make([]model.Child, 0, len(regs)+len(clusters))

	for i := range regs {
		r, err := convertRegister(&regs[i], inherited)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", regs[i].Name, err)
		}

		children = append(children, model.RegisterChild(r))
	}

	for i := range clusters {
		c, err := convertCluster(&clusters[i], inherited)
		if err != nil {
			return nil, fmt.Errorf("cluster %s: %w", clusters[i].Name, err)
		}

		children = append(children, model.ClusterChild(c))
	}

	return children, nil
}

func convertCluster(el *clusterElement, inherited model.Properties) (*model.Cluster, error) {
	offset, err := scanUint(el.AddressOffset)
	if err != nil {
		return nil, fmt.Errorf("addressOffset: %w", err)
	}

	props, err := parseProps(inherited, el.Size, el.Access)
	if err != nil {
		return nil, err
	}

	dim, err := parseDim(el.Dim, el.DimIncrement, el.DimName)
	if err != nil {
		return nil, err
	}

	children, err := convertChildren(el.Registers, el.Clusters, props)
	if err != nil {
		return nil, err
	}

	return &model.Cluster{
		Name:             el.Name,
		Description:      el.Description,
		AddressOffset:    offset,
		HeaderStructName: el.HeaderStructName,
		Dim:              dim,
		DerivedFrom:      el.DerivedFrom,
		Defaults:         props,
		Children:         children,
	}, nil
}

func convertRegister(el *registerElement, inherited model.Properties) (*model.Register, error) {
	offset, err := scanUint(el.AddressOffset)
	if err != nil {
		return nil, fmt.Errorf("addressOffset: %w", err)
	}

	props, err := parseProps(inherited, el.Size, el.Access)
	if err != nil {
		return nil, err
	}

	reset, err := scanUintDefault(el.ResetValue, 0)
	if err != nil {
		return nil, fmt.Errorf("resetValue: %w", err)
	}

	dim, err := parseDim(el.Dim, el.DimIncrement, el.DimName)
	if err != nil {
		return nil, err
	}

	r := &model.Register{
		Name:          el.Name,
		Description:   el.Description,
		AddressOffset: offset,
		Size:          props.Size,
		Access:        props.Access,
		ResetValue:    reset,
		Dim:           dim,
		DerivedFrom:   el.DerivedFrom,
	}

	for i := range el.Fields {
		f, err := convertField(&el.Fields[i], props)
		if err != nil {
			return nil, err
		}

		r.Fields = append(r.Fields, f)
	}

	return r, nil
}

func convertField(el *fieldElement, inherited model.Properties) (*model.Field, error) {
	lsb, msb, err := bitRange(el)
	if err != nil {
		return nil, err
	}

	f := &model.Field{
		Name:        el.Name,
		Description: el.Description,
		LSB:         lsb,
		MSB:         msb,
		Access:      inherited.Access,
		DerivedFrom: el.DerivedFrom,
	}

	if el.Access != nil {
		a, err := model.ParseAccess(strings.TrimSpace(*el.Access))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", el.Name, err)
		}

		f.Access = a
		f.AccessSet = true
	}

	dim, err := parseDim(el.Dim, el.DimIncrement, "")
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", el.Name, err)
	}

	f.Dim = dim

	if el.EnumeratedValues != nil {
		ev := &model.EnumeratedValues{
			Name:        el.EnumeratedValues.Name,
			DerivedFrom: el.EnumeratedValues.DerivedFrom,
		}

		for _, v := range el.EnumeratedValues.Values {
			val, err := scanUint(v.Value)
			if err != nil {
				return nil, fmt.Errorf("field %s enum %s: %w", el.Name, v.Name, err)
			}

			ev.Values = append(ev.Values, model.EnumValue{
				Name:        v.Name,
				Description: v.Description,
				Value:       val,
			})
		}

		f.Enum = ev
	}

	return f, nil
}
