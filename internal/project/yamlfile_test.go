package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nerrad567/buildsim/internal/building"
)

// writeProjectFile writes YAML content to a temporary file and returns
// its path.
func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing project file: %v", err)
	}
	return path
}

const validProjectYAML = `
name: Campus
buildings:
  - name: Office
    year_of_construction: 1988
    net_leased_area: 2400
    ahu:
      temperature: [293.15, 294.15]
      min_humidity: [0.3, 0.3]
      max_humidity: [0.7, 0.7]
      v_flow: [0, 1]
    zones:
      - name: Open Office
        area: 200
        volume: 600
        infiltration_rate: 0.4
        use_conditions:
          heating:
            daily: [290, 290, 290, 290, 290, 290, 293, 293, 293, 293, 293, 293,
                    293, 293, 293, 293, 293, 293, 290, 290, 290, 290, 290, 290]
          cooling:
            constant: 298.15
          persons:
            constant: 0.5
          machines:
            constant: 0.1
          lighting:
            constant: 0.2
        envelope:
          elements: 2
          area_ow: 120
          area_iw: 80
          area_win: 24
          r1_iw: 0.0004
          c1_iw: 1.2e7
          r1_ow: 0.0002
          r_rest_ow: 0.0015
          c1_ow: 5.5e6
`

func TestLoadFile_Valid(t *testing.T) {
	prj, err := LoadFile(writeProjectFile(t, validProjectYAML))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if prj.Name != "Campus" {
		t.Errorf("Name = %q, want %q", prj.Name, "Campus")
	}
	if len(prj.Buildings) != 1 {
		t.Fatalf("buildings = %d, want 1", len(prj.Buildings))
	}

	b := prj.Buildings[0]
	if b.YearOfConstruction != 1988 || b.NetLeasedArea != 2400 {
		t.Errorf("building attributes = %+v", b)
	}
	if b.AHU == nil || b.AHU.ProfileVFlow[1] != 1 {
		t.Errorf("AHU not loaded: %+v", b.AHU)
	}

	zone := b.Zones[0]

	// Daily pattern tiled to a full year.
	heat := zone.UseConditions.HeatingProfile
	if len(heat) != building.HoursPerYear {
		t.Fatalf("heating profile length = %d, want %d", len(heat), building.HoursPerYear)
	}
	if heat[0] != 290 || heat[6] != 293 || heat[24] != 290 || heat[30] != 293 {
		t.Errorf("daily pattern not tiled correctly: %v %v %v %v", heat[0], heat[6], heat[24], heat[30])
	}

	// Constants held for the full year.
	cool := zone.UseConditions.CoolingProfile
	if len(cool) != building.HoursPerYear || cool[0] != 298.15 || cool[building.HoursPerYear-1] != 298.15 {
		t.Errorf("constant profile not expanded correctly")
	}

	env, ok := zone.Envelope.(building.TwoElement)
	if !ok {
		t.Fatalf("envelope variant = %T, want TwoElement", zone.Envelope)
	}
	if env.AreaOuterWall != 120 || env.C1OuterWall != 5.5e6 {
		t.Errorf("envelope parameters = %+v", env)
	}
}

func TestLoadFile_EnvelopeVariants(t *testing.T) {
	const content = `
name: Variants
buildings:
  - name: Mixed
    zones:
      - name: Simple
        use_conditions:
          heating: {constant: 290}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope:
          elements: 1
          area_ow: 30
          area_win: 6
      - name: Grounded
        use_conditions:
          heating: {constant: 290}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope:
          elements: 3
          area_ow: 30
          area_iw: 20
          area_gf: 15
          area_win: 6
`
	prj, err := LoadFile(writeProjectFile(t, content))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	zones := prj.Buildings[0].Zones
	if _, ok := zones[0].Envelope.(building.OneElement); !ok {
		t.Errorf("zone Simple envelope = %T, want OneElement", zones[0].Envelope)
	}
	env, ok := zones[1].Envelope.(building.ThreeElement)
	if !ok {
		t.Fatalf("zone Grounded envelope = %T, want ThreeElement", zones[1].Envelope)
	}
	if env.AreaGroundFloor != 15 {
		t.Errorf("AreaGroundFloor = %v, want 15", env.AreaGroundFloor)
	}
}

func TestLoadFile_MissingProfile(t *testing.T) {
	const content = `
name: Broken
buildings:
  - name: Office
    zones:
      - name: Bare
        use_conditions:
          heating: {constant: 290}
        envelope:
          elements: 1
          area_ow: 30
          area_win: 6
`
	_, err := LoadFile(writeProjectFile(t, content))
	if !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("LoadFile() error = %v, want ErrEmptyProfile", err)
	}
}

func TestLoadFile_BadProfileLength(t *testing.T) {
	const content = `
name: Broken
buildings:
  - name: Office
    zones:
      - name: Odd
        use_conditions:
          heating: {daily: [1, 2, 3, 4, 5, 6, 7]}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope:
          elements: 1
          area_ow: 30
          area_win: 6
`
	_, err := LoadFile(writeProjectFile(t, content))
	if !errors.Is(err, building.ErrProfileLength) {
		t.Fatalf("LoadFile() error = %v, want ErrProfileLength", err)
	}
}

func TestLoadFile_UnknownEnvelope(t *testing.T) {
	const content = `
name: Broken
buildings:
  - name: Office
    zones:
      - name: Strange
        use_conditions:
          heating: {constant: 290}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope:
          elements: 7
          area_ow: 30
`
	_, err := LoadFile(writeProjectFile(t, content))
	if !errors.Is(err, ErrUnknownEnvelope) {
		t.Fatalf("LoadFile() error = %v, want ErrUnknownEnvelope", err)
	}
}

func TestLoadFile_DuplicateZones(t *testing.T) {
	const content = `
name: Broken
buildings:
  - name: Office
    zones:
      - name: Twin
        use_conditions:
          heating: {constant: 290}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope: {elements: 1, area_ow: 30, area_win: 6}
      - name: Twin
        use_conditions:
          heating: {constant: 290}
          cooling: {constant: 298}
          persons: {constant: 0}
          machines: {constant: 0}
          lighting: {constant: 0}
        envelope: {elements: 1, area_ow: 30, area_win: 6}
`
	_, err := LoadFile(writeProjectFile(t, content))
	if !errors.Is(err, building.ErrDuplicateZone) {
		t.Fatalf("LoadFile() error = %v, want ErrDuplicateZone", err)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	if _, err := LoadFile(writeProjectFile(t, "name: [unclosed")); err == nil {
		t.Error("LoadFile() expected error for malformed YAML, got nil")
	}
}
