// Package diagnostic collects warnings and errors raised while inspecting
// and compiling a device description. Warnings are gathered in a pre-pass
// over the whole tree and reported once per occurrence; generation proceeds
// past them. Errors abort the run before any output is written.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity is the severity level of a diagnostic.
type Severity int

//go:generate go tool stringer -type=Severity -output=severity_string.go

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Diagnostic is a single message tied to a construct in the device tree.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for this class of diagnostic,
	// e.g. "field-derived-from".
	Code string
	// Construct is the slash-separated path of the affected entity,
	// e.g. "TIMER0/CC/MODE".
	Construct string
	Message   string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Construct != "" {
		return d.Construct + ": " + msg
	}

	return msg
}

// Diagnostics accumulates messages by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, construct, format string, args ...any) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, construct, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	})
}

// AddInfo records an info diagnostic.
func (d *Diagnostics) AddInfo(code, construct, format string, args ...any) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Code:      code,
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error diagnostics were recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends all diagnostics from other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
