package boundary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nerrad567/buildsim/internal/building"
)

// secondsPerHour relabels the hourly row index to simulation time.
const secondsPerHour = 3600

// writeYearlyMatrix writes an hourly yearly table in the simulator's
// text matrix layout:
//
//	#1
//	double <name>(8760, len(columns)+1)
//	3600<TAB>v1<TAB>v2...
//	7200<TAB>...
//
// The first column is the time index (row+1)*3600; no column headers,
// no index label. Callers have already validated column lengths.
func writeYearlyMatrix(path, name string, columns [][]float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating matrix file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "#1\n")
	fmt.Fprintf(w, "double %s(%d, %d)\n", name, building.HoursPerYear, len(columns)+1)

	for row := 0; row < building.HoursPerYear; row++ {
		w.WriteString(strconv.Itoa((row + 1) * secondsPerHour))
		for _, col := range columns {
			w.WriteByte('\t')
			w.WriteString(strconv.FormatFloat(col[row], 'g', -1, 64))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing matrix file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing matrix file: %w", err)
	}
	return nil
}
