package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devgen/internal/model"
)

func TestInspectCleanTree(t *testing.T) {
	p := testPeriph("T", 0x40000000,
		model.RegisterChild(testReg("CR", 0x0, 32, model.AccessReadWrite, testField("EN", 0, 0))))

	diags := Inspect(testDevice(p))
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Errors)
}

func TestInspectUnsupportedConstructs(t *testing.T) {
	derived := testField("B", 4, 7)
	derived.DerivedFrom = "A"

	repeated := testField("C[%s]", 8, 11)
	repeated.Dim = &model.DimGroup{Count: 2, Increment: 4}

	enumDerived := testField("D", 12, 13)
	enumDerived.Enum = &model.EnumeratedValues{DerivedFrom: "SOMEWHERE"}

	r := testReg("CR", 0x0, 32, model.AccessReadWrite,
		testField("A", 0, 3), derived, repeated, enumDerived)

	p := testPeriph("TIMER0[%s]", 0x40000000, model.RegisterChild(r))
	p.Dim = &model.DimGroup{Count: 2, Increment: 0x1000}

	diags := Inspect(testDevice(p))
	require.Len(t, diags.Warnings, 4)

	byCode := make(map[string]string, len(diags.Warnings))
	for _, w := range diags.Warnings {
		byCode[w.Code] = w.Construct
	}

	assert.Equal(t, "TIMER0[%s]", byCode[CodePeripheralDimPlaceholder])
	assert.Equal(t, "TIMER0[%s]/CR/B", byCode[CodeFieldDerivedFrom])
	assert.Equal(t, "TIMER0[%s]/CR/C[%s]", byCode[CodeFieldDim])
	assert.Equal(t, "TIMER0[%s]/CR/D", byCode[CodeEnumDerivedFrom])
}

func TestInspectDescendsClusters(t *testing.T) {
	f := testField("X", 0, 1)
	f.DerivedFrom = "Y"

	cl := testCluster("CH", 0x100,
		model.RegisterChild(testReg("CC", 0x0, 32, model.AccessReadWrite, f)))
	p := testPeriph("T", 0x40000000, model.ClusterChild(cl))

	diags := Inspect(testDevice(p))
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "T/CH/CC/X", diags.Warnings[0].Construct)
}
