package influxdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nerrad567/buildsim/internal/building"
)

// ProfileQuery identifies one measured yearly profile.
type ProfileQuery struct {
	// Measurement is the InfluxDB measurement name, e.g. "internal_gains".
	Measurement string

	// Field is the field within the measurement, e.g. "persons".
	Field string

	// Zone is the value of the "zone" tag identifying the thermal zone.
	Zone string

	// Year selects the calendar year (UTC) to aggregate.
	Year int
}

// HourlyProfile aggregates one calendar year of measurements into an
// hourly profile: 8760 mean values in chronological order.
//
// The profile must be complete; any hour without measurements fails
// with ErrIncompleteProfile rather than silently padding, matching the
// exporters' strict length preconditions.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - q: Profile selector
//
// Returns:
//   - []float64: Exactly 8760 hourly means
//   - error: ErrIncompleteProfile on gaps, or a query error
func (c *Client) HourlyProfile(ctx context.Context, q ProfileQuery) ([]float64, error) {
	if strings.TrimSpace(q.Measurement) == "" {
		return nil, fmt.Errorf("influxdb: measurement is required")
	}
	if strings.TrimSpace(q.Field) == "" {
		return nil, fmt.Errorf("influxdb: field is required")
	}
	if strings.TrimSpace(q.Zone) == "" {
		return nil, fmt.Errorf("influxdb: zone is required")
	}

	start := time.Date(q.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	stop := start.AddDate(1, 0, 0)

	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: %s, stop: %s)
  |> filter(fn: (r) => r._measurement == %q and r._field == %q and r.zone == %q)
  |> aggregateWindow(every: 1h, fn: mean, createEmpty: true)
  |> sort(columns: ["_time"])`,
		c.cfg.Bucket,
		start.Format(time.RFC3339),
		stop.Format(time.RFC3339),
		q.Measurement, q.Field, q.Zone,
	)

	result, err := c.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("querying measured profile: %w", err)
	}
	defer result.Close()

	profile := make([]float64, 0, building.HoursPerYear)
	for result.Next() {
		value := result.Record().Value()
		if value == nil {
			return nil, fmt.Errorf("%w: no measurements at %s for %s/%s zone %s",
				ErrIncompleteProfile, result.Record().Time().Format(time.RFC3339),
				q.Measurement, q.Field, q.Zone)
		}
		v, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("influxdb: non-numeric value %v for %s/%s", value, q.Measurement, q.Field)
		}
		profile = append(profile, v)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("reading measured profile: %w", err)
	}

	if len(profile) != building.HoursPerYear {
		return nil, fmt.Errorf("%w: got %d hourly values for %s/%s zone %s, want %d",
			ErrIncompleteProfile, len(profile), q.Measurement, q.Field, q.Zone, building.HoursPerYear)
	}
	return profile, nil
}
