package plan

import "devgen/internal/model"

// Tree builders shared by the plan tests.

func testReg(name string, offset uint64, size int, access model.Access,
	fields ...*model.Field) *model.Register {
	return &model.Register{
		Name:          name,
		AddressOffset: offset,
		Size:          size,
		Access:        access,
		Fields:        fields,
	}
}

func testField(name string, lsb, msb int) *model.Field {
	return &model.Field{Name: name, LSB: lsb, MSB: msb}
}

func testCluster(name string, offset uint64, children ...model.Child) *model.Cluster {
	return &model.Cluster{Name: name, AddressOffset: offset, Children: children}
}

func testPeriph(name string, base uint64, children ...model.Child) *model.Peripheral {
	return &model.Peripheral{Name: name, BaseAddress: base, Children: children}
}

func testDevice(peripherals ...*model.Peripheral) *model.Device {
	return &model.Device{Name: "TESTDEV", Peripherals: peripherals}
}
