package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/buildsim/internal/building"
)

// projectFile is the YAML layout of a declarative project description.
type projectFile struct {
	Name      string         `yaml:"name"`
	Buildings []buildingFile `yaml:"buildings"`
}

type buildingFile struct {
	Name               string     `yaml:"name"`
	YearOfConstruction int        `yaml:"year_of_construction"`
	NetLeasedArea      float64    `yaml:"net_leased_area"`
	AHU                *ahuFile   `yaml:"ahu"`
	Zones              []zoneFile `yaml:"zones"`
}

type ahuFile struct {
	Temperature []float64 `yaml:"temperature"`
	MinHumidity []float64 `yaml:"min_humidity"`
	MaxHumidity []float64 `yaml:"max_humidity"`
	VFlow       []float64 `yaml:"v_flow"`
}

type zoneFile struct {
	Name             string            `yaml:"name"`
	Area             float64           `yaml:"area"`
	Volume           float64           `yaml:"volume"`
	InfiltrationRate float64           `yaml:"infiltration_rate"`
	UseConditions    useConditionsFile `yaml:"use_conditions"`
	Envelope         envelopeRecord    `yaml:"envelope"`
}

type useConditionsFile struct {
	Heating  profileSpec `yaml:"heating"`
	Cooling  profileSpec `yaml:"cooling"`
	Persons  profileSpec `yaml:"persons"`
	Machines profileSpec `yaml:"machines"`
	Lighting profileSpec `yaml:"lighting"`
}

// profileSpec declares a yearly profile in one of three forms, by
// increasing verbosity: a constant held all year, a repeating pattern
// (typically 24 daily values) tiled to the full year, or the explicit
// 8760 values.
type profileSpec struct {
	Constant *float64  `yaml:"constant"`
	Daily    []float64 `yaml:"daily"`
	Values   []float64 `yaml:"values"`
}

// resolve expands the declared form to a full yearly profile.
func (p profileSpec) resolve() ([]float64, error) {
	switch {
	case len(p.Values) > 0:
		return building.TileProfile(p.Values, building.HoursPerYear)
	case len(p.Daily) > 0:
		return building.TileProfile(p.Daily, building.HoursPerYear)
	case p.Constant != nil:
		return building.TileProfile([]float64{*p.Constant}, building.HoursPerYear)
	default:
		return nil, ErrEmptyProfile
	}
}

// LoadFile reads a declarative YAML project file and converts it into
// the validated domain graph. Short repeating profiles are expanded to
// full years; envelope declarations become the proper variant.
//
// Parameters:
//   - path: The YAML project file
//
// Returns:
//   - *building.Project: Validated project ready for storage or export
//   - error: Parse, profile or validation errors, each naming the
//     building/zone they occurred in
func LoadFile(path string) (*building.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var pf projectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}

	prj := &building.Project{Name: pf.Name}
	for _, bf := range pf.Buildings {
		b, err := bf.convert()
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", bf.Name, err)
		}
		prj.Buildings = append(prj.Buildings, b)
	}

	if err := prj.Validate(); err != nil {
		return nil, err
	}
	return prj, nil
}

// convert turns one YAML building into the domain form.
func (bf buildingFile) convert() (*building.Building, error) {
	b := &building.Building{
		Name:               bf.Name,
		YearOfConstruction: bf.YearOfConstruction,
		NetLeasedArea:      bf.NetLeasedArea,
	}

	if bf.AHU != nil {
		b.AHU = &building.AirHandlingUnit{
			ProfileTemperature:         bf.AHU.Temperature,
			ProfileMinRelativeHumidity: bf.AHU.MinHumidity,
			ProfileMaxRelativeHumidity: bf.AHU.MaxHumidity,
			ProfileVFlow:               bf.AHU.VFlow,
		}
	}

	for _, zf := range bf.Zones {
		z, err := zf.convert()
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", zf.Name, err)
		}
		b.Zones = append(b.Zones, z)
	}
	return b, nil
}

// convert turns one YAML zone into the domain form, expanding profiles
// and selecting the envelope variant.
func (zf zoneFile) convert() (*building.ThermalZone, error) {
	uc := building.UseConditions{}
	for _, p := range []struct {
		name string
		spec profileSpec
		dst  *[]float64
	}{
		{"heating", zf.UseConditions.Heating, &uc.HeatingProfile},
		{"cooling", zf.UseConditions.Cooling, &uc.CoolingProfile},
		{"persons", zf.UseConditions.Persons, &uc.PersonsProfile},
		{"machines", zf.UseConditions.Machines, &uc.MachinesProfile},
		{"lighting", zf.UseConditions.Lighting, &uc.LightingProfile},
	} {
		values, err := p.spec.resolve()
		if err != nil {
			return nil, fmt.Errorf("%s profile: %w", p.name, err)
		}
		*p.dst = values
	}

	env, err := zf.Envelope.decode()
	if err != nil {
		return nil, err
	}

	return &building.ThermalZone{
		Name:             zf.Name,
		Area:             zf.Area,
		Volume:           zf.Volume,
		InfiltrationRate: zf.InfiltrationRate,
		UseConditions:    uc,
		Envelope:         env,
	}, nil
}
