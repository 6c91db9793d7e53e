package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"devgen/internal/common"
	"devgen/internal/diagnostic"
	"devgen/internal/model"
	"devgen/internal/plan"
)

// Config holds configuration for device code generation.
type Config struct {
	// Package is the name of the generated Go package.
	Package string
	// Source names the input description file in the header comment.
	Source string
	// DeviceName overrides the device name from the description.
	DeviceName string
	// Options are the synthesis options; the instance renderer must use
	// the same member naming and ordering as the type hierarchy builder.
	Options plan.Options
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Package: "device", Options: plan.DefaultOptions()}
}

// GeneratedFile is one generated Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Generator merges the per-peripheral artifact streams into one generated
// source module. Artifacts are deduplicated by canonical name: distinct
// peripherals legitimately produce identical artifacts (shared layouts,
// repeated structures) and each symbol must be declared exactly once.
// The first definition wins; later ones are skipped without a structural
// equality check, each skip recorded as an info diagnostic.
type Generator struct {
	config Config
	names  *plan.NameTable
	diags  diagnostic.Diagnostics

	seenTypes   map[string]bool
	seenStructs map[string]bool
	seenEnums   map[string]bool
	seenOps     map[string]bool
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config:      config,
		seenTypes:   make(map[string]bool),
		seenStructs: make(map[string]bool),
		seenEnums:   make(map[string]bool),
		seenOps:     make(map[string]bool),
	}
}

// Generate renders the full output module for one device: preamble, core
// exception table, interrupt enumeration, dependency-ordered type
// definitions, one instance declaration per peripheral with fully resolved
// absolute addresses, then field structs, enums, and access operations.
//
// The emitted source is formatted (and its import block settled) by
// golang.org/x/tools/imports; on a formatting failure the raw output is
// returned alongside the error so it can be inspected.
func (g *Generator) Generate(dev *model.Device, plans []*plan.PeripheralPlan,
	names *plan.NameTable) (*GeneratedFile, diagnostic.Diagnostics, error) {
	g.names = names

	var buf bytes.Buffer

	if err := g.writeHeader(&buf, dev); err != nil {
		return nil, g.diags, err
	}

	if err := g.writeVectors(&buf, dev); err != nil {
		return nil, g.diags, err
	}

	if err := g.writeTypes(&buf, plans); err != nil {
		return nil, g.diags, err
	}

	if err := g.writeInstances(&buf, plans); err != nil {
		return nil, g.diags, err
	}

	if err := g.writeRegisterArtifacts(&buf, plans); err != nil {
		return nil, g.diags, err
	}

	filename := g.config.Package + ".go"

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		_ = writeDebugUnformatted(filename, buf.Bytes())

		return &GeneratedFile{Filename: filename, Content: buf.Bytes()},
			g.diags, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, g.diags, nil
}

func (g *Generator) writeHeader(buf *bytes.Buffer, dev *model.Device) error {
	name := dev.Name
	if g.config.DeviceName != "" {
		name = g.config.DeviceName
	}

	return execute(headerTemplate, buf, headerView{
		Package:     g.config.Package,
		Source:      g.config.Source,
		Comment:     oneline(dev.Description),
		Device:      name,
		Description: oneline(dev.Description),
		Vendor:      dev.Vendor,
	})
}

func (g *Generator) writeVectors(buf *bytes.Buffer, dev *model.Device) error {
	cpuName := "unknown"
	if dev.CPU != nil {
		cpuName = dev.CPU.Name
	}

	err := execute(exceptionTemplate, buf, exceptionView{
		CPU:     cpuName,
		Entries: exceptionsFor(dev.CPU),
	})
	if err != nil {
		return err
	}

	if irqs := collectInterrupts(dev); !common.IsEmpty(irqs) {
		return execute(interruptTemplate, buf, irqs)
	}

	return nil
}

// writeTypes emits every composite type definition once, preserving the
// per-peripheral dependency order across the device.
func (g *Generator) writeTypes(buf *bytes.Buffer, plans []*plan.PeripheralPlan) error {
	for _, pp := range plans {
		for _, td := range pp.Types {
			if !g.claim(g.seenTypes, td.Name, "type") {
				continue
			}

			view := typeView{Name: td.Name, Doc: oneline(td.Description), Members: td.Members}

			tmpl := compositeTemplate
			if td.RegisterWrapper {
				tmpl = wrapperTemplate
				view.Reset = hexValue(td.Reset, td.Width)
			}

			if err := execute(tmpl, buf, view); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Generator) writeInstances(buf *bytes.Buffer, plans []*plan.PeripheralPlan) error {
	for _, pp := range plans {
		view, err := g.buildInstance(pp.Peripheral, g.names)
		if err != nil {
			return err
		}

		if err := execute(instanceTemplate, buf, view); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) writeRegisterArtifacts(buf *bytes.Buffer, plans []*plan.PeripheralPlan) error {
	for _, pp := range plans {
		for _, fs := range pp.FieldStructs {
			if !g.claim(g.seenStructs, fs.Name, "field struct") {
				continue
			}

			if err := execute(fieldStructTemplate, buf, buildFieldStructView(fs)); err != nil {
				return err
			}
		}

		for _, e := range pp.Enums {
			if !g.claim(g.seenEnums, e.Name, "enum") {
				continue
			}

			if err := execute(enumTemplate, buf, buildEnumView(e)); err != nil {
				return err
			}
		}

		for _, ops := range pp.Ops {
			if !g.claim(g.seenOps, ops.Register, "operation set") {
				continue
			}

			if err := execute(opsTemplate, buf, buildOpsView(ops)); err != nil {
				return err
			}
		}
	}

	return nil
}

// claim reserves a canonical name in a dedup set. Returns false when the
// name was already emitted; the skip is recorded but never verified
// against the first definition.
func (g *Generator) claim(set map[string]bool, name, kind string) bool {
	if set[name] {
		g.diags.AddInfo("dedup-skip", name,
			"duplicate %s artifact skipped, first definition wins", kind)
		return false
	}

	set[name] = true

	return true
}

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) error {
	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return nil
}
