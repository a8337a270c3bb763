package boundary

import "fmt"

// TimeGrid builds an equidistant sequence of time points in seconds:
// 0, step, 2*step, ..., duration, inclusive of both ends. The consuming
// simulator needs the zero point plus duration/step further entries.
//
// With double set, every point appears twice consecutively, producing a
// stepwise (zero-order hold) signal that the simulator reads without
// interpolation.
//
// Parameters:
//   - duration: Total profile duration in seconds
//   - step: Grid step in seconds
//   - double: Emit each time point twice
//
// Returns:
//   - []int: The time points
//   - error: ErrGridStep when duration is not an exact multiple of step
func TimeGrid(duration, step int, double bool) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d", ErrGridStep, step)
	}
	if duration%step != 0 {
		return nil, fmt.Errorf("%w: duration %d, step %d", ErrGridStep, duration, step)
	}

	points := duration/step + 1
	if double {
		grid := make([]int, 0, 2*points)
		for i := 0; i < points; i++ {
			grid = append(grid, i*step, i*step)
		}
		return grid, nil
	}

	grid := make([]int, 0, points)
	for i := 0; i < points; i++ {
		grid = append(grid, i*step)
	}
	return grid, nil
}
