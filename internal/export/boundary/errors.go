package boundary

import "errors"

// Sentinel errors for boundary-condition exports.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, boundary.ErrProfileLength) {
//	    // a profile does not match the grid
//	}
var (
	// ErrGridStep is returned when the profile duration is not an exact
	// multiple of the time step.
	ErrGridStep = errors.New("boundary: duration must be a multiple of time step")

	// ErrProfileLength is returned when a profile length does not match
	// the time grid it is exported against.
	ErrProfileLength = errors.New("boundary: time grid and profile must have the same length")

	// ErrNoZones is returned when a building has no thermal zones to
	// export.
	ErrNoZones = errors.New("boundary: building has no thermal zones")
)
