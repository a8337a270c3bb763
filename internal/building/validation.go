package building

import "fmt"

// Validate checks the structural invariants of a project: non-empty
// names, building names unique within the project, zone names unique
// within each building, and an envelope variant present on every zone.
//
// Profile lengths are not checked here; each exporter enforces the
// exact length its output format demands.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: project name is empty", ErrInvalidName)
	}

	seen := make(map[string]struct{}, len(p.Buildings))
	for _, b := range p.Buildings {
		if b.Name == "" {
			return fmt.Errorf("%w: building name is empty", ErrInvalidName)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateBuilding, b.Name)
		}
		seen[b.Name] = struct{}{}

		if err := b.validate(); err != nil {
			return fmt.Errorf("building %s: %w", b.Name, err)
		}
	}
	return nil
}

// validate checks the zone invariants of one building.
func (b *Building) validate() error {
	seen := make(map[string]struct{}, len(b.Zones))
	for _, z := range b.Zones {
		if z.Name == "" {
			return fmt.Errorf("%w: zone name is empty", ErrInvalidName)
		}
		if _, dup := seen[z.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateZone, z.Name)
		}
		seen[z.Name] = struct{}{}

		if z.Envelope == nil {
			return fmt.Errorf("zone %s: envelope is required", z.Name)
		}
	}
	return nil
}
