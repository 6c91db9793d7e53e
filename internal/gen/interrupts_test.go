package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devgen/internal/model"
)

func TestCollectInterrupts(t *testing.T) {
	dev := &model.Device{
		Peripherals: []*model.Peripheral{
			{
				Name: "UART0",
				Interrupts: []model.Interrupt{
					{Name: "uart0_rx", Value: 12},
					{Name: "uart0_tx", Value: 13},
				},
			},
			{
				Name: "TIMER0",
				Interrupts: []model.Interrupt{
					{Name: "Timer0", Value: 5},
					// Slots 0 and 1 belong to the exception table.
					{Name: "reset_alias", Value: 1},
					{Name: "weird slot", Value: 0},
				},
			},
		},
	}

	irqs := collectInterrupts(dev)
	require.Len(t, irqs, 3)

	// Sorted by value, names upper-cased and sanitized.
	assert.Equal(t, irqEntry{Name: "TIMER0", Value: 5}, irqs[0])
	assert.Equal(t, irqEntry{Name: "UART0_RX", Value: 12}, irqs[1])
	assert.Equal(t, irqEntry{Name: "UART0_TX", Value: 13}, irqs[2])
}

func TestCollectInterruptsDuplicateNames(t *testing.T) {
	// Peripherals sharing an interrupt line re-declare it; the enumeration
	// keeps the first occurrence.
	dev := &model.Device{
		Peripherals: []*model.Peripheral{
			{Name: "ADC0", Interrupts: []model.Interrupt{{Name: "ADC", Value: 7}}},
			{Name: "ADC1", Interrupts: []model.Interrupt{{Name: "ADC", Value: 7}}},
		},
	}

	irqs := collectInterrupts(dev)
	require.Len(t, irqs, 1)
	assert.Equal(t, irqEntry{Name: "ADC", Value: 7}, irqs[0])
}

func TestCollectInterruptsEqualValueOrder(t *testing.T) {
	// Distinct lines sharing one value are kept; their relative order is
	// by name, never by map iteration order.
	dev := &model.Device{
		Peripherals: []*model.Peripheral{
			{Name: "P1", Interrupts: []model.Interrupt{{Name: "ZETA", Value: 9}}},
			{Name: "P2", Interrupts: []model.Interrupt{{Name: "ALPHA", Value: 9}}},
			{Name: "P3", Interrupts: []model.Interrupt{{Name: "MID", Value: 9}}},
		},
	}

	irqs := collectInterrupts(dev)
	require.Len(t, irqs, 3)
	assert.Equal(t, []irqEntry{
		{Name: "ALPHA", Value: 9},
		{Name: "MID", Value: 9},
		{Name: "ZETA", Value: 9},
	}, irqs)
}

func TestCollectInterruptsEmpty(t *testing.T) {
	assert.Empty(t, collectInterrupts(&model.Device{}))
}
