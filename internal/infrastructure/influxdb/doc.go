// Package influxdb provides the optional measured-profile source.
//
// It wraps the official influxdb-client-go v2 library for connection
// management and health checks, and turns a year of recorded
// measurements into the hourly profiles the exporters consume: one
// mean per hour, 8760 values, no gaps.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	profile, err := client.HourlyProfile(ctx, influxdb.ProfileQuery{
//	    Measurement: "internal_gains",
//	    Field:       "persons",
//	    Zone:        "open-office",
//	    Year:        2025,
//	})
package influxdb
