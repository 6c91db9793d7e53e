package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity:  SeverityWarning,
		Code:      "field-dim",
		Construct: "TIMER0/CC/MODE",
		Message:   "not supported",
	}
	assert.Equal(t, "TIMER0/CC/MODE: [field-dim] not supported", d.String())

	assert.Equal(t, "bare message", Diagnostic{Message: "bare message"}.String())
}

func TestDiagnosticsAccumulate(t *testing.T) {
	var d Diagnostics

	d.AddWarning("w", "A", "warn %d", 1)
	d.AddInfo("i", "B", "note")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddError("e", "C", "boom")
	require.True(t, d.HasErrors())
	require.Error(t, d.Err())
	assert.Contains(t, d.Err().Error(), "C: [e] boom")

	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, "warn 1", d.Warnings[0].Message)
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("w1", "", "first")
	b.AddWarning("w2", "", "second")
	b.AddError("e1", "", "bad")

	a.Merge(b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
}
