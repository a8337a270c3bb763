package modelica

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nerrad567/buildsim/internal/building"
)

// defaultUses are the library version annotations written to the
// project-level package.mo.
var defaultUses = []string{
	`Modelica(version="3.2.3")`,
	`AixLib(version="0.7.4")`,
}

// Config selects the model export variant.
type Config struct {
	// NumberOfElements is the envelope aggregation granularity (1-4).
	// Only 2 has a template wired.
	NumberOfElements int

	// MergeWindows merges the window resistance into the outer wall
	// path instead of keeping a separate window resistance.
	MergeWindows bool

	// Uses overrides the library version annotations at the project
	// root. Nil selects the defaults.
	Uses []string
}

// Exporter renders zone models and package scaffolding for a project.
type Exporter struct {
	cfg Config
}

// NewExporter validates the configuration and creates an exporter.
//
// Returns:
//   - *Exporter: Ready exporter
//   - error: ErrInvalidElementCount outside 1-4, or
//     ErrUnsupportedElementCount for granularities without a template
func NewExporter(cfg Config) (*Exporter, error) {
	if cfg.NumberOfElements < 1 || cfg.NumberOfElements > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidElementCount, cfg.NumberOfElements)
	}
	if _, ok := zoneTemplates[cfg.NumberOfElements]; !ok {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedElementCount, cfg.NumberOfElements)
	}
	if cfg.Uses == nil {
		cfg.Uses = defaultUses
	}
	return &Exporter{cfg: cfg}, nil
}

// templateContext is the data handed to a zone model template.
type templateContext struct {
	Building *building.Building
	Zone     *building.ThermalZone
	Envelope building.TwoElement

	ModelName    string
	Within       string
	MergeWindows bool

	// Boundary-condition artifact names the generated model references.
	// Naming must stay aligned with the boundary exporter.
	FileSetTempHeat   string
	FileAHU           string
	FileInternalGains string
}

// ExportProject renders the model files and package scaffolding for a
// project under dir. The directory becomes the project package root:
// one package per building, each holding a <Building>_Models package
// with one model file per thermal zone.
//
// Parameters:
//   - prj: The project to export
//   - onlyBuilding: When non-empty, export only this building
//   - dir: Destination directory for the project package
//
// Returns:
//   - []string: Paths of the rendered model files
//   - error: building.ErrBuildingNotFound for an unknown filter,
//     ErrEnvelopeMismatch when a zone's envelope variant does not match
//     the configured granularity, or a render/filesystem error
func (e *Exporter) ExportProject(prj *building.Project, onlyBuilding, dir string) ([]string, error) {
	buildings := prj.Buildings
	if onlyBuilding != "" {
		b, err := prj.FindBuilding(onlyBuilding)
		if err != nil {
			return nil, fmt.Errorf("filtering export to %s: %w", onlyBuilding, err)
		}
		buildings = []*building.Building{b}
	}

	tmpl, err := loadZoneTemplate(e.cfg.NumberOfElements)
	if err != nil {
		return nil, err
	}

	if err := writePackage(dir, prj.Name, "", e.cfg.Uses); err != nil {
		return nil, err
	}
	order := make([]string, 0, len(buildings))
	for _, b := range buildings {
		order = append(order, b.Name)
	}
	if err := writePackageOrder(dir, order); err != nil {
		return nil, err
	}

	var written []string
	for _, b := range buildings {
		files, err := e.exportBuilding(tmpl, prj, b, dir)
		if err != nil {
			return nil, fmt.Errorf("exporting building %s: %w", b.Name, err)
		}
		written = append(written, files...)
	}
	return written, nil
}

// exportBuilding writes one building package: scaffolding at the
// building and model-group level plus one rendered model per zone.
func (e *Exporter) exportBuilding(tmpl *template.Template, prj *building.Project, b *building.Building, dir string) ([]string, error) {
	modelsPkg := b.Name + "_Models"

	bldgDir := filepath.Join(dir, b.Name)
	if err := writePackage(bldgDir, b.Name, prj.Name, nil); err != nil {
		return nil, err
	}
	if err := writePackageOrder(bldgDir, []string{modelsPkg}); err != nil {
		return nil, err
	}

	zoneDir := filepath.Join(bldgDir, modelsPkg)
	if err := writePackage(zoneDir, modelsPkg, prj.Name+"."+b.Name, nil); err != nil {
		return nil, err
	}

	order := make([]string, 0, len(b.Zones))
	written := make([]string, 0, len(b.Zones))
	for _, zone := range b.Zones {
		env, ok := zone.Envelope.(building.TwoElement)
		if !ok {
			return nil, fmt.Errorf("%w: zone %s has a %d-element envelope",
				ErrEnvelopeMismatch, zone.Name, zone.Envelope.Elements())
		}

		modelName := b.Name + "_" + strings.ReplaceAll(zone.Name, " ", "")
		ctx := templateContext{
			Building:          b,
			Zone:              zone,
			Envelope:          env,
			ModelName:         modelName,
			Within:            prj.Name + "." + b.Name + "." + modelsPkg,
			MergeWindows:      e.cfg.MergeWindows,
			FileSetTempHeat:   "TsetHeat_" + b.Name + ".txt",
			FileAHU:           "AHU_" + b.Name + ".mat",
			FileInternalGains: "InternalGains_" + b.Name + ".txt",
		}

		path := filepath.Join(zoneDir, modelName+".mo")
		if err := renderToFile(tmpl, path, ctx); err != nil {
			return nil, err
		}
		order = append(order, modelName)
		written = append(written, path)
	}

	if err := writePackageOrder(zoneDir, order); err != nil {
		return nil, err
	}
	return written, nil
}

// renderToFile renders a template to a file with guaranteed release of
// the handle.
func renderToFile(tmpl *template.Template, path string, ctx templateContext) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating model file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, ctx); err != nil {
		return fmt.Errorf("rendering model file %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing model file: %w", err)
	}
	return nil
}
