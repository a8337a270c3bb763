// Package matfile reads and writes the legacy level-4 MAT container
// format used to hand named numeric matrices to the simulation tool.
//
// Only the subset the exporters need is implemented: a single full,
// real, little-endian float64 matrix per variable. The layout is five
// little-endian int32 header words (type, rows, columns, imaginary
// flag, name length), the NUL-terminated variable name, then the matrix
// data column by column as IEEE 754 doubles.
package matfile
