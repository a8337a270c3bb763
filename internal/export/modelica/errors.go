package modelica

import "errors"

// Sentinel errors for the model export.
var (
	// ErrInvalidElementCount is returned when the requested envelope
	// granularity is outside the 1-4 range.
	ErrInvalidElementCount = errors.New("modelica: number of elements must be between 1 and 4")

	// ErrUnsupportedElementCount is returned for granularities inside
	// the valid range that have no template wired yet (1, 3 and 4).
	ErrUnsupportedElementCount = errors.New("modelica: no template for requested number of elements")

	// ErrEnvelopeMismatch is returned when a zone's envelope variant does
	// not match the requested number of elements.
	ErrEnvelopeMismatch = errors.New("modelica: zone envelope does not match requested number of elements")
)
