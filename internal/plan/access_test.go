package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devgen/internal/model"
)

func TestBuildOpsPermissions(t *testing.T) {
	tests := []struct {
		access              model.Access
		read, write, modify bool
	}{
		{model.AccessReadWrite, true, true, true},
		{model.AccessReadOnly, true, false, false},
		{model.AccessWriteOnly, false, true, false},
		{model.AccessWriteOnce, false, true, false},
		{model.AccessReadWriteOnce, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.access.String(), func(t *testing.T) {
			r := testReg("CR", 0, 32, tt.access)
			ops := BuildOps(r, "T_CR_Type", nil)

			assert.Equal(t, "T_CR_Type", ops.Register)
			assert.Equal(t, 32, ops.Width)
			assert.Equal(t, tt.read, ops.Read)
			assert.Equal(t, tt.write, ops.Write)
			assert.Equal(t, tt.modify, ops.Modify)
			assert.Empty(t, ops.Value)
		})
	}
}

func TestBuildOpsFieldValue(t *testing.T) {
	r := testReg("CR", 0, 16, model.AccessReadWrite,
		testField("EN", 0, 0), testField("DIV", 8, 11))

	fs, _ := BuildFieldStruct(r, "T_CR_Type")
	ops := BuildOps(r, "T_CR_Type", fs)

	assert.Equal(t, "T_CR_Fields", ops.Value)
	assert.Equal(t, 16, ops.Width)
}
