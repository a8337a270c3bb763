package matfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for MAT level-4 encoding and decoding.
var (
	// ErrEmptyName indicates a variable name with no characters.
	ErrEmptyName = errors.New("matfile: empty variable name")

	// ErrRaggedMatrix indicates rows of unequal length.
	ErrRaggedMatrix = errors.New("matfile: ragged matrix")

	// ErrBadHeader indicates a header that does not describe a full,
	// real, little-endian float64 matrix.
	ErrBadHeader = errors.New("matfile: unsupported header")
)

// matrixType is the level-4 type word for a full numeric matrix of
// little-endian float64 values (M=0, O=0, P=0, T=0).
const matrixType = 0

// Matrix is a named 2-D float64 matrix in row-major order.
type Matrix struct {
	Name string
	Rows [][]float64
}

// Write encodes a single named matrix in level-4 layout.
//
// Rows may be empty (a 0x0 matrix is legal) but must be rectangular.
//
// Parameters:
//   - w: Destination writer
//   - name: Variable name stored in the container
//   - rows: Matrix values, row-major
//
// Returns:
//   - error: ErrEmptyName, ErrRaggedMatrix, or a write error
func Write(w io.Writer, name string, rows [][]float64) error {
	if name == "" {
		return ErrEmptyName
	}

	nrows := len(rows)
	ncols := 0
	if nrows > 0 {
		ncols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != ncols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedMatrix, i, len(row), ncols)
		}
	}

	header := [5]int32{
		matrixType,
		int32(nrows),
		int32(ncols),
		0, // no imaginary part
		int32(len(name) + 1),
	}
	if err := binary.Write(w, binary.LittleEndian, header[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.Write(append([]byte(name), 0)); err != nil {
		return fmt.Errorf("writing name: %w", err)
	}

	// Level-4 stores data column-major.
	data := make([]float64, 0, nrows*ncols)
	for col := 0; col < ncols; col++ {
		for row := 0; row < nrows; row++ {
			data = append(data, rows[row][col])
		}
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("writing data: %w", err)
	}
	return nil
}

// Read decodes a single matrix from level-4 layout.
//
// Returns:
//   - *Matrix: The decoded matrix, row-major
//   - error: ErrBadHeader for layouts outside the supported subset, or
//     a read error
func Read(r io.Reader) (*Matrix, error) {
	var header [5]int32
	if err := binary.Read(r, binary.LittleEndian, header[:]); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if header[0] != matrixType {
		return nil, fmt.Errorf("%w: type word %d", ErrBadHeader, header[0])
	}
	if header[3] != 0 {
		return nil, fmt.Errorf("%w: imaginary data", ErrBadHeader)
	}
	nrows := int(header[1])
	ncols := int(header[2])
	namelen := int(header[4])
	if nrows < 0 || ncols < 0 || namelen < 1 {
		return nil, fmt.Errorf("%w: negative dimensions", ErrBadHeader)
	}

	nameBuf := make([]byte, namelen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}
	name := string(nameBuf[:namelen-1])

	data := make([]float64, nrows*ncols)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	rows := make([][]float64, nrows)
	for row := range rows {
		rows[row] = make([]float64, ncols)
		for col := 0; col < ncols; col++ {
			rows[row][col] = data[col*nrows+row]
		}
	}
	return &Matrix{Name: name, Rows: rows}, nil
}
