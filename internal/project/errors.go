package project

import "errors"

// Sentinel errors for the project store.
var (
	// ErrProjectNotFound is returned when a project name does not exist
	// in the store.
	ErrProjectNotFound = errors.New("project: not found")

	// ErrUnknownEnvelope is returned when a stored or declared envelope
	// has an element count outside 1-4.
	ErrUnknownEnvelope = errors.New("project: unknown envelope variant")

	// ErrEmptyProfile is returned when a declared profile has no values,
	// no daily pattern and no constant.
	ErrEmptyProfile = errors.New("project: profile has no values")
)
