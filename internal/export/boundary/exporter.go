package boundary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nerrad567/buildsim/internal/building"
	"github.com/nerrad567/buildsim/internal/export/matfile"
)

// Dummy AHU signal written when a building has no air-handling unit.
// Two points keep the input table well-formed: constant 20°C, full
// humidity band, flow ramping 0 to 1 over the first hour.
const (
	dummyAHUTemperature = 293.15
	dummyAHUStep        = 3600
)

// Exporter writes the boundary-condition artifacts for one building.
//
// File names are derived from the building name at construction time.
// The only derived value, the total surface area, is cached on the
// exporter; the building graph itself is never mutated.
type Exporter struct {
	bldg *building.Building

	// Artifact file names, relative to the export directory.
	FileSetTempHeat   string
	FileSetTempCool   string
	FileAHU           string
	FileInternalGains string

	totalSurfaceArea float64
	calculated       bool
}

// New creates an exporter for the given building.
func New(b *building.Building) *Exporter {
	return &Exporter{
		bldg:              b,
		FileSetTempHeat:   "TsetHeat_" + b.Name + ".txt",
		FileSetTempCool:   "TsetCool_" + b.Name + ".txt",
		FileAHU:           "AHU_" + b.Name + ".mat",
		FileInternalGains: "InternalGains_" + b.Name + ".txt",
	}
}

// CalcAuxiliaryAttributes computes the derived attributes the model
// export references: currently the total surface area, summed over the
// surfaces each zone's envelope variant defines.
func (e *Exporter) CalcAuxiliaryAttributes() {
	var total float64
	for _, zone := range e.bldg.Zones {
		total += zone.Envelope.SurfaceArea()
	}
	e.totalSurfaceArea = total
	e.calculated = true
}

// TotalSurfaceArea returns the cached total surface area in m².
// CalcAuxiliaryAttributes must have been called first.
func (e *Exporter) TotalSurfaceArea() (float64, error) {
	if !e.calculated {
		return 0, fmt.Errorf("boundary: auxiliary attributes not calculated")
	}
	return e.totalSurfaceArea, nil
}

// ExportSetTemperatureHeating writes the heating set-point matrix:
// 8760 hourly rows, one column per zone from its heating profile, time
// index (row+1)*3600 in the first column.
//
// Parameters:
//   - dir: Destination directory (created if missing)
//
// Returns:
//   - string: Path of the written file
//   - error: ErrProfileLength naming the zone on a short or long
//     profile, or a filesystem error
func (e *Exporter) ExportSetTemperatureHeating(dir string) (string, error) {
	columns, err := e.zoneColumns(func(z *building.ThermalZone) []float64 {
		return z.UseConditions.HeatingProfile
	}, "heating_profile")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, e.FileSetTempHeat)
	if err := writeYearlyMatrix(path, "Tset", columns); err != nil {
		return "", err
	}
	return path, nil
}

// ExportSetTemperatureCooling writes the cooling set-point matrix in
// the same layout as ExportSetTemperatureHeating, sourced from each
// zone's cooling profile.
func (e *Exporter) ExportSetTemperatureCooling(dir string) (string, error) {
	columns, err := e.zoneColumns(func(z *building.ThermalZone) []float64 {
		return z.UseConditions.CoolingProfile
	}, "cooling_profile")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, e.FileSetTempCool)
	if err := writeYearlyMatrix(path, "Tset", columns); err != nil {
		return "", err
	}
	return path, nil
}

// ExportInternalGains writes the internal-gains matrix: 8760 hourly
// rows with three columns per zone (persons, machines, lighting) in
// zone order, time index as in the set-point matrices.
func (e *Exporter) ExportInternalGains(dir string) (string, error) {
	if len(e.bldg.Zones) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoZones, e.bldg.Name)
	}

	columns := make([][]float64, 0, 3*len(e.bldg.Zones))
	for _, zone := range e.bldg.Zones {
		uc := zone.UseConditions
		for _, p := range []struct {
			name   string
			values []float64
		}{
			{"persons_profile", uc.PersonsProfile},
			{"machines_profile", uc.MachinesProfile},
			{"lighting_profile", uc.LightingProfile},
		} {
			if len(p.values) != building.HoursPerYear {
				return "", fmt.Errorf("%w: %s of zone %s has %d values, want %d",
					ErrProfileLength, p.name, zone.Name, len(p.values), building.HoursPerYear)
			}
			columns = append(columns, p.values)
		}
	}

	path := filepath.Join(dir, e.FileInternalGains)
	if err := writeYearlyMatrix(path, "Internals", columns); err != nil {
		return "", err
	}
	return path, nil
}

// ExportAHUBoundary writes the AHU boundary matrix as a level-4 MAT
// container under the variable name "AHU". Rows carry
// [time, temperature, min humidity, max humidity, flow fraction].
//
// A building without an AHU gets the fixed two-point dummy signal
// instead of the supplied grid, so the simulator input table stays
// well-formed.
//
// Parameters:
//   - timeGrid: Time points from TimeGrid; every AHU profile must have
//     the same length
//   - dir: Destination directory (created if missing)
//
// Returns:
//   - string: Path of the written file
//   - error: ErrProfileLength naming the mismatched sequence, or a
//     filesystem error
func (e *Exporter) ExportAHUBoundary(timeGrid []int, dir string) (string, error) {
	var rows [][]float64

	if e.bldg.AHU != nil {
		ahu := e.bldg.AHU
		for _, p := range []struct {
			name   string
			values []float64
		}{
			{"profile_temperature_AHU", ahu.ProfileTemperature},
			{"profile_min_relative_humidity", ahu.ProfileMinRelativeHumidity},
			{"profile_max_relative_humidity", ahu.ProfileMaxRelativeHumidity},
			{"profile_status_AHU", ahu.ProfileVFlow},
		} {
			if len(p.values) != len(timeGrid) {
				return "", fmt.Errorf("%w: %s has %d values, time grid has %d",
					ErrProfileLength, p.name, len(p.values), len(timeGrid))
			}
		}

		rows = make([][]float64, len(timeGrid))
		for i, t := range timeGrid {
			rows[i] = []float64{
				float64(t),
				ahu.ProfileTemperature[i],
				ahu.ProfileMinRelativeHumidity[i],
				ahu.ProfileMaxRelativeHumidity[i],
				ahu.ProfileVFlow[i],
			}
		}
	} else {
		rows = [][]float64{
			{0, dummyAHUTemperature, 0, 1, 0},
			{dummyAHUStep, dummyAHUTemperature, 0, 1, 1},
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, e.FileAHU)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating AHU boundary file: %w", err)
	}
	defer f.Close()

	if err := matfile.Write(f, "AHU", rows); err != nil {
		return "", fmt.Errorf("writing AHU boundary matrix: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing AHU boundary file: %w", err)
	}
	return path, nil
}

// zoneColumns collects one yearly profile column per zone, enforcing
// the exact yearly length on each.
func (e *Exporter) zoneColumns(profile func(*building.ThermalZone) []float64, name string) ([][]float64, error) {
	if len(e.bldg.Zones) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoZones, e.bldg.Name)
	}

	columns := make([][]float64, 0, len(e.bldg.Zones))
	for _, zone := range e.bldg.Zones {
		values := profile(zone)
		if len(values) != building.HoursPerYear {
			return nil, fmt.Errorf("%w: %s of zone %s has %d values, want %d",
				ErrProfileLength, name, zone.Name, len(values), building.HoursPerYear)
		}
		columns = append(columns, values)
	}
	return columns, nil
}
