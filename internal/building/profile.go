package building

import "fmt"

// TileProfile expands a repeating profile to the given length by tiling
// it end to end. A 24-value daily pattern becomes a full 8760-value year
// with TileProfile(daily, HoursPerYear).
//
// A profile that already has the target length is returned unchanged
// (same backing array, callers must not mutate it).
//
// Parameters:
//   - profile: The repeating pattern, at least one value
//   - length: The target length, a whole multiple of len(profile)
//
// Returns:
//   - []float64: Profile of exactly the target length
//   - error: ErrProfileLength when the target is not a whole number of
//     repeats, or the profile is empty
func TileProfile(profile []float64, length int) ([]float64, error) {
	if len(profile) == 0 {
		return nil, fmt.Errorf("%w: empty profile cannot be tiled to %d values", ErrProfileLength, length)
	}
	if len(profile) == length {
		return profile, nil
	}
	if length%len(profile) != 0 {
		return nil, fmt.Errorf("%w: %d values do not tile evenly to %d", ErrProfileLength, len(profile), length)
	}

	tiled := make([]float64, 0, length)
	for len(tiled) < length {
		tiled = append(tiled, profile...)
	}
	return tiled, nil
}
