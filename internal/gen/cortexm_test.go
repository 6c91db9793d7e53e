package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devgen/internal/model"
)

func TestExceptionsForFullCore(t *testing.T) {
	entries := exceptionsFor(&model.CPU{Name: "CM4"})
	require.Len(t, entries, len(cortexExceptions))

	byName := make(map[string]int, len(entries))
	for _, e := range entries {
		byName[e.Name] = e.Value
	}

	assert.Equal(t, 1, byName["EXC_Reset"])
	assert.Equal(t, 4, byName["EXC_MemManage"])
	assert.Equal(t, 12, byName["EXC_DebugMonitor"])
	assert.Equal(t, 15, byName["EXC_SysTick"])
}

func TestExceptionsForBaselineCore(t *testing.T) {
	for _, name := range []string{"CM0", "CM0PLUS", "CM23"} {
		t.Run(name, func(t *testing.T) {
			entries := exceptionsFor(&model.CPU{Name: name})
			require.Len(t, entries, 6)

			for _, e := range entries {
				assert.NotEqual(t, "EXC_MemManage", e.Name)
				assert.NotEqual(t, "EXC_BusFault", e.Name)
				assert.NotEqual(t, "EXC_UsageFault", e.Name)
				assert.NotEqual(t, "EXC_DebugMonitor", e.Name)
			}
		})
	}
}

func TestExceptionsForUnknownCPU(t *testing.T) {
	assert.Len(t, exceptionsFor(nil), len(cortexExceptions))
}
