package gen

import (
	"sort"
	"strings"

	"devgen/internal/common"
	"devgen/internal/model"
)

// irqEntry is one line of the generated interrupt-number enumeration.
type irqEntry struct {
	Name  string
	Value int
}

// collectInterrupts merges the interrupt declarations of all peripherals
// into one enumeration, sorted ascending by interrupt value with equal
// values ordered by name. Entry names are upper-cased. Values at or below
// 1 are skipped: those slots belong to the core exception table. Duplicate
// names are emitted once (first wins); duplicate numeric values under
// distinct names are kept, resolving them is an upstream concern.
func collectInterrupts(dev *model.Device) []irqEntry {
	byName := make(map[string]irqEntry)

	for _, p := range dev.Peripherals {
		for _, irq := range p.Interrupts {
			if irq.Value <= 1 {
				continue
			}

			name := common.SanitizeIdent(strings.ToUpper(irq.Name))
			if _, dup := byName[name]; dup {
				continue
			}

			byName[name] = irqEntry{Name: name, Value: irq.Value}
		}
	}

	out := make([]irqEntry, 0, len(byName))
	for _, name := range common.SortedKeys(byName) {
		out = append(out, byName[name])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})

	return out
}
