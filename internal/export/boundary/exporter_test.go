package boundary

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nerrad567/buildsim/internal/building"
	"github.com/nerrad567/buildsim/internal/export/matfile"
)

// yearProfile builds an 8760-value profile with a recognisable ramp so
// round-trip tests can detect column mix-ups.
func yearProfile(offset float64) []float64 {
	p := make([]float64, building.HoursPerYear)
	for i := range p {
		p[i] = offset + float64(i%24)*0.5
	}
	return p
}

// testBuilding returns a two-zone building without an AHU.
func testBuilding() *building.Building {
	return &building.Building{
		Name: "Office",
		Zones: []*building.ThermalZone{
			{
				Name: "Zone One",
				UseConditions: building.UseConditions{
					HeatingProfile:  yearProfile(290),
					CoolingProfile:  yearProfile(298),
					PersonsProfile:  yearProfile(0),
					MachinesProfile: yearProfile(0.1),
					LightingProfile: yearProfile(0.2),
				},
				Envelope: building.TwoElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaWindow: 2},
			},
			{
				Name: "Zone Two",
				UseConditions: building.UseConditions{
					HeatingProfile:  yearProfile(291),
					CoolingProfile:  yearProfile(299),
					PersonsProfile:  yearProfile(0.3),
					MachinesProfile: yearProfile(0.4),
					LightingProfile: yearProfile(0.5),
				},
				Envelope: building.TwoElement{AreaOuterWall: 20, AreaInnerWall: 8, AreaWindow: 4},
			},
		},
	}
}

// readTextMatrix parses an exported matrix file back into header lines
// and numeric rows.
func readTextMatrix(t *testing.T, path string) (marker, header string, rows [][]float64) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported matrix: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		t.Fatal("missing marker line")
	}
	marker = scanner.Text()
	if !scanner.Scan() {
		t.Fatal("missing header line")
	}
	header = scanner.Text()

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				t.Fatalf("parsing %q: %v", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning exported matrix: %v", err)
	}
	return marker, header, rows
}

func TestCalcAuxiliaryAttributes(t *testing.T) {
	b := &building.Building{
		Name: "Mixed",
		Zones: []*building.ThermalZone{
			{Name: "a", Envelope: building.OneElement{AreaOuterWall: 10, AreaWindow: 2}},
			{Name: "b", Envelope: building.TwoElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaWindow: 2}},
			{Name: "c", Envelope: building.ThreeElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaGroundFloor: 4, AreaWindow: 2}},
			{Name: "d", Envelope: building.FourElement{AreaOuterWall: 10, AreaInnerWall: 5, AreaGroundFloor: 4, AreaRooftop: 3, AreaWindow: 2}},
		},
	}

	exp := New(b)
	if _, err := exp.TotalSurfaceArea(); err == nil {
		t.Error("TotalSurfaceArea() before calculation expected error, got nil")
	}

	exp.CalcAuxiliaryAttributes()
	got, err := exp.TotalSurfaceArea()
	if err != nil {
		t.Fatalf("TotalSurfaceArea() error = %v", err)
	}
	if want := 12.0 + 17.0 + 21.0 + 24.0; got != want {
		t.Errorf("TotalSurfaceArea() = %v, want %v", got, want)
	}
}

func TestExportSetTemperatureHeating(t *testing.T) {
	b := testBuilding()
	dir := t.TempDir()

	path, err := New(b).ExportSetTemperatureHeating(dir)
	if err != nil {
		t.Fatalf("ExportSetTemperatureHeating() error = %v", err)
	}
	if filepath.Base(path) != "TsetHeat_Office.txt" {
		t.Errorf("file name = %s, want TsetHeat_Office.txt", filepath.Base(path))
	}

	marker, header, rows := readTextMatrix(t, path)
	if marker != "#1" {
		t.Errorf("marker = %q, want %q", marker, "#1")
	}
	if header != "double Tset(8760, 3)" {
		t.Errorf("header = %q, want %q", header, "double Tset(8760, 3)")
	}
	if len(rows) != building.HoursPerYear {
		t.Fatalf("rows = %d, want %d", len(rows), building.HoursPerYear)
	}

	for i, row := range rows {
		if len(row) != 3 {
			t.Fatalf("row %d has %d columns, want 3", i, len(row))
		}
		if want := float64((i + 1) * 3600); row[0] != want {
			t.Fatalf("row %d time = %v, want %v", i, row[0], want)
		}
		if row[1] != b.Zones[0].UseConditions.HeatingProfile[i] {
			t.Fatalf("row %d zone one = %v, want %v", i, row[1], b.Zones[0].UseConditions.HeatingProfile[i])
		}
		if row[2] != b.Zones[1].UseConditions.HeatingProfile[i] {
			t.Fatalf("row %d zone two = %v, want %v", i, row[2], b.Zones[1].UseConditions.HeatingProfile[i])
		}
	}
}

func TestExportSetTemperatureCooling(t *testing.T) {
	b := testBuilding()
	dir := t.TempDir()

	path, err := New(b).ExportSetTemperatureCooling(dir)
	if err != nil {
		t.Fatalf("ExportSetTemperatureCooling() error = %v", err)
	}
	if filepath.Base(path) != "TsetCool_Office.txt" {
		t.Errorf("file name = %s, want TsetCool_Office.txt", filepath.Base(path))
	}

	_, header, rows := readTextMatrix(t, path)
	if header != "double Tset(8760, 3)" {
		t.Errorf("header = %q, want %q", header, "double Tset(8760, 3)")
	}
	if rows[0][1] != b.Zones[0].UseConditions.CoolingProfile[0] {
		t.Errorf("cooling export reads the wrong profile column")
	}
}

func TestExportSetTemperature_ShortProfile(t *testing.T) {
	b := testBuilding()
	b.Zones[1].UseConditions.HeatingProfile = b.Zones[1].UseConditions.HeatingProfile[:building.HoursPerYear-1]

	_, err := New(b).ExportSetTemperatureHeating(t.TempDir())
	if !errors.Is(err, ErrProfileLength) {
		t.Fatalf("error = %v, want ErrProfileLength", err)
	}
	if !strings.Contains(err.Error(), "Zone Two") {
		t.Errorf("error %q does not name the offending zone", err)
	}
}

func TestExportInternalGains(t *testing.T) {
	b := testBuilding()
	dir := t.TempDir()

	path, err := New(b).ExportInternalGains(dir)
	if err != nil {
		t.Fatalf("ExportInternalGains() error = %v", err)
	}

	marker, header, rows := readTextMatrix(t, path)
	if marker != "#1" {
		t.Errorf("marker = %q, want %q", marker, "#1")
	}
	if header != "double Internals(8760, 7)" {
		t.Errorf("header = %q, want %q", header, "double Internals(8760, 7)")
	}
	if len(rows) != building.HoursPerYear {
		t.Fatalf("rows = %d, want %d", len(rows), building.HoursPerYear)
	}

	// Column order: time, then persons/machines/lighting per zone.
	uc1 := b.Zones[0].UseConditions
	uc2 := b.Zones[1].UseConditions
	wantCols := [][]float64{
		uc1.PersonsProfile, uc1.MachinesProfile, uc1.LightingProfile,
		uc2.PersonsProfile, uc2.MachinesProfile, uc2.LightingProfile,
	}
	for i, row := range rows {
		for c, col := range wantCols {
			if row[c+1] != col[i] {
				t.Fatalf("row %d column %d = %v, want %v", i, c+1, row[c+1], col[i])
			}
		}
	}
}

func TestExportInternalGains_ShortProfile(t *testing.T) {
	b := testBuilding()
	b.Zones[0].UseConditions.MachinesProfile = b.Zones[0].UseConditions.MachinesProfile[:100]

	_, err := New(b).ExportInternalGains(t.TempDir())
	if !errors.Is(err, ErrProfileLength) {
		t.Fatalf("error = %v, want ErrProfileLength", err)
	}
	if !strings.Contains(err.Error(), "machines_profile") {
		t.Errorf("error %q does not name the offending profile", err)
	}
}

func TestExportAHUBoundary_Dummy(t *testing.T) {
	b := testBuilding() // no AHU
	dir := t.TempDir()

	grid, err := TimeGrid(86400, 3600, false)
	if err != nil {
		t.Fatalf("TimeGrid() error = %v", err)
	}

	path, err := New(b).ExportAHUBoundary(grid, dir)
	if err != nil {
		t.Fatalf("ExportAHUBoundary() error = %v", err)
	}
	if filepath.Base(path) != "AHU_Office.mat" {
		t.Errorf("file name = %s, want AHU_Office.mat", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	m, err := matfile.Read(f)
	if err != nil {
		t.Fatalf("reading MAT container: %v", err)
	}
	if m.Name != "AHU" {
		t.Errorf("variable name = %q, want %q", m.Name, "AHU")
	}

	want := [][]float64{
		{0, 293.15, 0, 1, 0},
		{3600, 293.15, 0, 1, 1},
	}
	if len(m.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(m.Rows), len(want))
	}
	for i, row := range want {
		for j, v := range row {
			if m.Rows[i][j] != v {
				t.Errorf("Rows[%d][%d] = %v, want %v", i, j, m.Rows[i][j], v)
			}
		}
	}
}

func TestExportAHUBoundary_RealProfiles(t *testing.T) {
	grid, err := TimeGrid(86400, 3600, false)
	if err != nil {
		t.Fatalf("TimeGrid() error = %v", err)
	}

	n := len(grid)
	ramp := func(scale float64) []float64 {
		p := make([]float64, n)
		for i := range p {
			p[i] = scale * float64(i)
		}
		return p
	}

	b := testBuilding()
	b.AHU = &building.AirHandlingUnit{
		ProfileTemperature:         ramp(0.1),
		ProfileMinRelativeHumidity: ramp(0.01),
		ProfileMaxRelativeHumidity: ramp(0.02),
		ProfileVFlow:               ramp(0.03),
	}

	path, err := New(b).ExportAHUBoundary(grid, t.TempDir())
	if err != nil {
		t.Fatalf("ExportAHUBoundary() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	m, err := matfile.Read(f)
	if err != nil {
		t.Fatalf("reading MAT container: %v", err)
	}
	if len(m.Rows) != n {
		t.Fatalf("rows = %d, want %d", len(m.Rows), n)
	}
	for i, row := range m.Rows {
		wantRow := []float64{float64(grid[i]), 0.1 * float64(i), 0.01 * float64(i), 0.02 * float64(i), 0.03 * float64(i)}
		for j, v := range wantRow {
			if row[j] != v {
				t.Fatalf("Rows[%d][%d] = %v, want %v", i, j, row[j], v)
			}
		}
	}
}

func TestExportAHUBoundary_Mismatch(t *testing.T) {
	grid, err := TimeGrid(86400, 3600, false)
	if err != nil {
		t.Fatalf("TimeGrid() error = %v", err)
	}

	b := testBuilding()
	b.AHU = &building.AirHandlingUnit{
		ProfileTemperature:         make([]float64, len(grid)),
		ProfileMinRelativeHumidity: make([]float64, len(grid)-1), // short
		ProfileMaxRelativeHumidity: make([]float64, len(grid)),
		ProfileVFlow:               make([]float64, len(grid)),
	}

	_, err = New(b).ExportAHUBoundary(grid, t.TempDir())
	if !errors.Is(err, ErrProfileLength) {
		t.Fatalf("error = %v, want ErrProfileLength", err)
	}
	if !strings.Contains(err.Error(), "profile_min_relative_humidity") {
		t.Errorf("error %q does not name the offending sequence", err)
	}
}

func TestExport_NoZones(t *testing.T) {
	b := &building.Building{Name: "Empty"}

	if _, err := New(b).ExportSetTemperatureHeating(t.TempDir()); !errors.Is(err, ErrNoZones) {
		t.Errorf("heating export error = %v, want ErrNoZones", err)
	}
	if _, err := New(b).ExportInternalGains(t.TempDir()); !errors.Is(err, ErrNoZones) {
		t.Errorf("gains export error = %v, want ErrNoZones", err)
	}
}

func TestFileNames(t *testing.T) {
	exp := New(&building.Building{Name: "Residential"})

	tests := []struct{ got, want string }{
		{exp.FileSetTempHeat, "TsetHeat_Residential.txt"},
		{exp.FileSetTempCool, "TsetCool_Residential.txt"},
		{exp.FileAHU, "AHU_Residential.mat"},
		{exp.FileInternalGains, "InternalGains_Residential.txt"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("file name = %q, want %q", tt.got, tt.want)
		}
	}
}
