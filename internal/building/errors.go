package building

import "errors"

// Domain errors for the building package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, building.ErrBuildingNotFound) {
//	    // handle not found case
//	}
var (
	// ErrBuildingNotFound is returned when a building name does not exist
	// in a project.
	ErrBuildingNotFound = errors.New("building: not found")

	// ErrDuplicateBuilding is returned when a project contains two
	// buildings with the same name.
	ErrDuplicateBuilding = errors.New("building: duplicate name")

	// ErrDuplicateZone is returned when a building contains two thermal
	// zones with the same name.
	ErrDuplicateZone = errors.New("building: duplicate zone name")

	// ErrInvalidName is returned when a building or zone name is empty.
	ErrInvalidName = errors.New("building: invalid name")

	// ErrProfileLength is returned when a profile cannot be tiled to the
	// requested length.
	ErrProfileLength = errors.New("building: profile length mismatch")
)
