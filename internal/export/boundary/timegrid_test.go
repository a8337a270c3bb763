package boundary

import (
	"errors"
	"testing"
)

func TestTimeGrid(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		step     int
		double   bool
		wantLen  int
	}{
		{"one day hourly", 86400, 3600, false, 25},
		{"one day hourly doubled", 86400, 3600, true, 50},
		{"one year hourly", 31536000, 3600, false, 8761},
		{"single step", 3600, 3600, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := TimeGrid(tt.duration, tt.step, tt.double)
			if err != nil {
				t.Fatalf("TimeGrid() error = %v", err)
			}
			if len(grid) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(grid), tt.wantLen)
			}
			if grid[0] != 0 {
				t.Errorf("grid[0] = %d, want 0", grid[0])
			}
			if grid[len(grid)-1] != tt.duration {
				t.Errorf("last point = %d, want %d", grid[len(grid)-1], tt.duration)
			}
		})
	}
}

func TestTimeGrid_DoubledPairs(t *testing.T) {
	grid, err := TimeGrid(7200, 3600, true)
	if err != nil {
		t.Fatalf("TimeGrid() error = %v", err)
	}

	want := []int{0, 0, 3600, 3600, 7200, 7200}
	if len(grid) != len(want) {
		t.Fatalf("len = %d, want %d", len(grid), len(want))
	}
	for i, w := range want {
		if grid[i] != w {
			t.Errorf("grid[%d] = %d, want %d", i, grid[i], w)
		}
	}
}

func TestTimeGrid_NotMultiple(t *testing.T) {
	if _, err := TimeGrid(86400, 7000, false); !errors.Is(err, ErrGridStep) {
		t.Errorf("TimeGrid() error = %v, want ErrGridStep", err)
	}
}

func TestTimeGrid_InvalidStep(t *testing.T) {
	if _, err := TimeGrid(86400, 0, false); !errors.Is(err, ErrGridStep) {
		t.Errorf("TimeGrid() error = %v, want ErrGridStep", err)
	}
}
