package gen

import "text/template"

// Templates render one artifact each; the generator pre-computes the view
// structs so the templates stay free of address and bit arithmetic.

var headerTemplate = template.Must(template.New("header").Parse(
	`// Code generated by devgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

{{if .Comment}}// {{.Comment}}
{{end}}package {{.Package}}

import (
	"runtime/volatile"
	"unsafe"
)

// Device metadata.
const (
	Device     = "{{.Device}}"
	DeviceText = "{{.Description}}"
	Vendor     = "{{.Vendor}}"
)
`))

var exceptionTemplate = template.Must(template.New("exceptions").Parse(
	`
// Exception numbers of the {{.CPU}} core.
const (
{{- range .Entries}}
	{{.Name}} = {{.Value}}
{{- end}}
)
`))

var interruptTemplate = template.Must(template.New("interrupts").Parse(
	`
// Interrupt numbers.
const (
{{- range .}}
	IRQ_{{.Name}} = {{.Value}}
{{- end}}
)
`))

var compositeTemplate = template.Must(template.New("composite").Parse(
	`
{{if .Doc}}// {{.Name}}: {{.Doc}}
{{end}}type {{.Name}} struct {
{{- range .Members}}
	{{.Name}} {{if .Count}}[{{.Count}}]{{end}}{{.Type}}
{{- end}}
}
`))

var wrapperTemplate = template.Must(template.New("wrapper").Parse(
	`
{{if .Doc}}// {{.Name}}: {{.Doc}} (reset {{.Reset}})
{{else}}// {{.Name}} is the memory location of one register instance, reset {{.Reset}}.
{{end}}type {{.Name}} struct {
	Reg uintptr
}
`))

var instanceTemplate = template.Must(template.New("instance").Parse(
	`
// {{.Name}} at base address {{.Base}}.
var {{.Name}} = {{.Type}}{{.Value}}
`))

var fieldStructTemplate = template.Must(template.New("fieldStruct").Parse(
	`
// {{.Name}} is the decomposed view of a {{.Register}} register value.
type {{.Name}} struct {
{{- range .Slots}}
	{{.Name}} {{.Type}}{{if .Doc}} // {{.Doc}}{{end}}
{{- end}}
}

// Bits packs the fields bit-for-bit into the raw register value.
func (v {{.Name}}) Bits() {{.Carrier}} {
	var raw {{.Carrier}}
{{- range .Slots}}
{{- if .Bool}}
	if v.{{.Name}} {
		raw |= 1 << {{.LSB}}
	}
{{- else}}
	raw |= ({{$.Carrier}}(v.{{.Name}}) & {{.Mask}}) << {{.LSB}}
{{- end}}
{{- end}}
	return raw
}

// {{.Name}}From unpacks a raw register value bit-for-bit.
func {{.Name}}From(raw {{.Carrier}}) {{.Name}} {
	return {{.Name}}{
{{- range .Slots}}
{{- if .Bool}}
		{{.Name}}: raw&(1<<{{.LSB}}) != 0,
{{- else}}
		{{.Name}}: {{.Type}}(raw >> {{.LSB}} & {{.Mask}}),
{{- end}}
{{- end}}
	}
}
`))

var enumTemplate = template.Must(template.New("enum").Parse(
	`
{{if .Doc}}// {{.Name}}: {{.Doc}}
{{else}}// {{.Name}} enumerates the legal values of the field it backs.
{{end}}type {{.Name}} {{.Carrier}}

const (
{{- range .Values}}
	{{.Name}} {{$.Name}} = {{.Value}}{{if .Doc}} // {{.Doc}}{{end}}
{{- end}}
)
`))

var opsTemplate = template.Must(template.New("ops").Parse(
	`{{if .Read}}
// Read returns the current value of the register.
func (r {{.Register}}) Read() {{.ValueType}} {
	return {{.ReadExpr}}
}
{{end}}{{if .Write}}
// Write sets the register to v.
func (r {{.Register}}) Write(v {{.ValueType}}) {
	{{.WriteStmt}}
}
{{end}}{{if .Modify}}
// Modify reads the register, lets f mutate the value in place, and writes
// the result back. The sequence is a single logical read-modify-write; it
// is not atomic against concurrent access from other contexts, callers
// must provide their own synchronization.
func (r {{.Register}}) Modify(f func(*{{.ValueType}})) {
	v := r.Read()
	f(&v)
	r.Write(v)
}
{{end}}`))
