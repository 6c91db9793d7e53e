package svd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devgen/internal/model"
)

const minimalSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <vendor>Acme</vendor>
  <name>ACME32F1</name>
  <series>ACME32</series>
  <description>Test device</description>
  <cpu>
    <name>CM4</name>
    <revision>r0p1</revision>
    <nvicPrioBits>4</nvicPrioBits>
    <fpuPresent>1</fpuPresent>
    <mpuPresent>0</mpuPresent>
  </cpu>
  <size>32</size>
  <access>read-write</access>
  <peripherals>
    <peripheral>
      <name>TIM1</name>
      <groupName>TIM</groupName>
      <baseAddress>0x40000C00</baseAddress>
      <interrupt>
        <name>TIM1_IRQ</name>
        <value>25</value>
      </interrupt>
      <registers>
        <register>
          <name>CR</name>
          <addressOffset>0x0</addressOffset>
          <resetValue>0x00000080</resetValue>
          <fields>
            <field>
              <name>EN</name>
              <bitOffset>0</bitOffset>
              <bitWidth>1</bitWidth>
            </field>
            <field>
              <name>MODE</name>
              <lsb>4</lsb>
              <msb>6</msb>
              <enumeratedValues>
                <enumeratedValue>
                  <name>IDLE</name>
                  <value>0</value>
                </enumeratedValue>
                <enumeratedValue>
                  <name>RUN</name>
                  <value>#101</value>
                </enumeratedValue>
              </enumeratedValues>
            </field>
            <field>
              <name>DIV</name>
              <bitRange>[15:8]</bitRange>
            </field>
          </fields>
        </register>
        <register>
          <name>SR</name>
          <addressOffset>0x4</addressOffset>
          <size>16</size>
          <access>read-only</access>
        </register>
        <cluster>
          <name>CH</name>
          <addressOffset>0x100</addressOffset>
          <register>
            <name>CC%s</name>
            <addressOffset>0x10</addressOffset>
            <dim>4</dim>
            <dimIncrement>0x4</dimIncrement>
          </register>
        </cluster>
      </registers>
    </peripheral>
    <peripheral derivedFrom="TIM1">
      <name>TIM2</name>
      <baseAddress>0x40001000</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

func TestParseDeviceMetadata(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)

	assert.Equal(t, "ACME32F1", dev.Name)
	assert.Equal(t, "Acme", dev.Vendor)
	assert.Equal(t, "ACME32", dev.Series)
	assert.Equal(t, 32, dev.Defaults.Size)
	assert.Equal(t, model.AccessReadWrite, dev.Defaults.Access)

	require.NotNil(t, dev.CPU)
	assert.Equal(t, "CM4", dev.CPU.Name)
	assert.Equal(t, 4, dev.CPU.NVICPrioBits)
	assert.True(t, dev.CPU.FPUPresent)
	assert.False(t, dev.CPU.MPUPresent)
}

func TestParsePeripheralTree(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)
	require.Len(t, dev.Peripherals, 2)

	p := dev.Peripherals[0]
	assert.Equal(t, "TIM1", p.Name)
	assert.Equal(t, "TIM", p.GroupName)
	assert.Equal(t, uint64(0x40000c00), p.BaseAddress)

	require.Len(t, p.Interrupts, 1)
	assert.Equal(t, model.Interrupt{Name: "TIM1_IRQ", Value: 25}, p.Interrupts[0])

	// Two registers plus one cluster.
	require.Len(t, p.Children, 3)

	cr := p.Children[0].Register
	require.NotNil(t, cr)
	assert.Equal(t, uint64(0x80), cr.ResetValue)
	assert.Equal(t, 32, cr.Size)
	assert.Equal(t, model.AccessReadWrite, cr.Access)

	cl := p.Children[2].Cluster
	require.NotNil(t, cl)
	assert.Equal(t, uint64(0x100), cl.AddressOffset)
	require.Len(t, cl.Children, 1)

	cc := cl.Children[0].Register
	require.NotNil(t, cc)
	assert.Equal(t, "CC%s", cc.Name)
	require.NotNil(t, cc.Dim)
	assert.Equal(t, 4, cc.Dim.Count)
	assert.Equal(t, uint64(4), cc.Dim.Increment)
}

func TestParseBitRangeNotations(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)

	fields := dev.Peripherals[0].Children[0].Register.Fields
	require.Len(t, fields, 3)

	// bitOffset+bitWidth, lsb+msb, and "[msb:lsb]" all land on the same
	// representation.
	assert.Equal(t, 0, fields[0].LSB)
	assert.Equal(t, 0, fields[0].MSB)
	assert.Equal(t, 4, fields[1].LSB)
	assert.Equal(t, 6, fields[1].MSB)
	assert.Equal(t, 8, fields[2].LSB)
	assert.Equal(t, 15, fields[2].MSB)
}

func TestParseEnumeratedValues(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)

	mode := dev.Peripherals[0].Children[0].Register.Fields[1]
	require.NotNil(t, mode.Enum)
	require.Len(t, mode.Enum.Values, 2)

	assert.Equal(t, model.EnumValue{Name: "IDLE", Value: 0}, mode.Enum.Values[0])
	// #-prefixed values are binary.
	assert.Equal(t, model.EnumValue{Name: "RUN", Value: 5}, mode.Enum.Values[1])
}

func TestParsePropertyInheritance(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)

	// SR overrides both inherited properties.
	sr := dev.Peripherals[0].Children[1].Register
	assert.Equal(t, 16, sr.Size)
	assert.Equal(t, model.AccessReadOnly, sr.Access)

	// CC inherits the device-wide defaults through the cluster.
	cc := dev.Peripherals[0].Children[2].Cluster.Children[0].Register
	assert.Equal(t, 32, cc.Size)
	assert.Equal(t, model.AccessReadWrite, cc.Access)
}

func TestParseDerivedPeripheral(t *testing.T) {
	dev, err := Parse([]byte(minimalSVD))
	require.NoError(t, err)

	tim2 := dev.Peripherals[1]
	assert.Equal(t, "TIM2", tim2.Name)
	assert.Equal(t, "TIM1", tim2.DerivedFrom)
	assert.Equal(t, uint64(0x40001000), tim2.BaseAddress)

	// Structure and inherited metadata come from the base; the derived
	// copy is independent of the base's instances.
	assert.Equal(t, "TIM", tim2.GroupName)
	require.Len(t, tim2.Children, 3)
	assert.Equal(t, "CR", tim2.Children[0].Register.Name)
	assert.NotSame(t, dev.Peripherals[0].Children[0].Register, tim2.Children[0].Register)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		svd  string
	}{
		{"malformed xml", "<device><peripherals>"},
		{"bad base address", `<device><peripherals><peripheral>
			<name>P</name><baseAddress>zzz</baseAddress>
			</peripheral></peripherals></device>`},
		{"field without bit range", `<device><peripherals><peripheral>
			<name>P</name><baseAddress>0x0</baseAddress>
			<registers><register><name>R</name><addressOffset>0</addressOffset>
			<fields><field><name>F</name></field></fields>
			</register></registers></peripheral></peripherals></device>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.svd))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.svd")
	require.NoError(t, os.WriteFile(path, []byte(minimalSVD), 0o644))

	dev, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACME32F1", dev.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.svd"))
	assert.Error(t, err)
}

func TestScanUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"42", 42, true},
		{"0x2A", 42, true},
		{"#101010", 42, true},
		{" 0x10 ", 16, true},
		{"", 0, false},
		{"0xzz", 0, false},
	}

	for _, tt := range tests {
		got, err := scanUint(tt.in)
		if tt.ok {
			require.NoErrorf(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Errorf(t, err, "input %q", tt.in)
		}
	}
}
