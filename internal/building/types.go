package building

// HoursPerYear is the number of hourly steps in one non-leap year.
// Every yearly profile handed to the exporters must have exactly this
// many values.
const HoursPerYear = 8760

// Project is the root of the domain graph: an ordered collection of
// buildings, unique by name.
type Project struct {
	Name      string
	Buildings []*Building
}

// Building represents one building with its thermal zones and optional
// central air-handling unit.
type Building struct {
	// ID identifies the building across import/export runs.
	ID string

	// Name is used for artifact file names and Modelica model names.
	// It must be a valid Modelica identifier (letters, digits, underscore).
	Name string

	YearOfConstruction int

	// NetLeasedArea is the total net leased floor area in m².
	NetLeasedArea float64

	// Zones are the thermal zones in export order. Column order in every
	// matrix export follows this slice.
	Zones []*ThermalZone

	// AHU is the central air-handling unit, or nil when the building has
	// none. Exports substitute a fixed dummy signal in the nil case.
	AHU *AirHandlingUnit
}

// ThermalZone is a building subdivision with its own usage profile and
// envelope description.
type ThermalZone struct {
	Name string

	// Area is the zone floor area in m².
	Area float64

	// Volume is the zone air volume in m³.
	Volume float64

	// InfiltrationRate is the air exchange rate in 1/h.
	InfiltrationRate float64

	UseConditions UseConditions

	// Envelope describes the aggregated construction of the zone. Exactly
	// one of the four variants; see envelope.go.
	Envelope Envelope
}

// UseConditions holds the per-zone yearly profiles. Set-point profiles
// are absolute temperatures in Kelvin; gain profiles are normalised to
// the 0..1 range.
type UseConditions struct {
	HeatingProfile  []float64
	CoolingProfile  []float64
	PersonsProfile  []float64
	MachinesProfile []float64
	LightingProfile []float64
}

// AirHandlingUnit carries the four aligned boundary profiles of a
// central AHU, one value per time-grid step.
type AirHandlingUnit struct {
	ProfileTemperature         []float64
	ProfileMinRelativeHumidity []float64
	ProfileMaxRelativeHumidity []float64
	ProfileVFlow               []float64
}

// FindBuilding returns the building with the given name.
//
// Returns:
//   - *Building: The matching building
//   - error: ErrBuildingNotFound when no building has that name
func (p *Project) FindBuilding(name string) (*Building, error) {
	for _, b := range p.Buildings {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, ErrBuildingNotFound
}
