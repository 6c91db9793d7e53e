package gen

import (
	"strings"

	"devgen/internal/model"
)

// exceptionEntry is one fixed exception slot of the core. The table is
// static data: exception numbers are defined by the architecture, not by
// the device description.
type exceptionEntry struct {
	Name  string
	Value int
	// baseline marks slots that exist on every core variant; the others
	// are absent from baseline (M0, M0+, M23) cores.
	baseline bool
}

var cortexExceptions = []exceptionEntry{
	{"EXC_Reset", 1, true},
	{"EXC_NMI", 2, true},
	{"EXC_HardFault", 3, true},
	{"EXC_MemManage", 4, false},
	{"EXC_BusFault", 5, false},
	{"EXC_UsageFault", 6, false},
	{"EXC_SVCall", 11, true},
	{"EXC_DebugMonitor", 12, false},
	{"EXC_PendSV", 14, true},
	{"EXC_SysTick", 15, true},
}

// exceptionsFor returns the exception table filtered by core variant.
func exceptionsFor(cpu *model.CPU) []exceptionEntry {
	baselineOnly := false
	if cpu != nil {
		name := strings.ToUpper(cpu.Name)
		baselineOnly = strings.Contains(name, "M0") || strings.Contains(name, "M23")
	}

	if !baselineOnly {
		return cortexExceptions
	}

	var out []exceptionEntry
	for _, e := range cortexExceptions {
		if e.baseline {
			out = append(out, e)
		}
	}

	return out
}
