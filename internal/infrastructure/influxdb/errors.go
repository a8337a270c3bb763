package influxdb

import "errors"

// Sentinel errors for the measured-profile source.
var (
	// ErrDisabled indicates InfluxDB integration is disabled in config.
	ErrDisabled = errors.New("influxdb: disabled in configuration")

	// ErrConnectionFailed indicates the initial connection attempt failed.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrIncompleteProfile indicates a measured profile has missing
	// hours; exports need complete years.
	ErrIncompleteProfile = errors.New("influxdb: incomplete measured profile")
)
