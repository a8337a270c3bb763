// Package boundary exports building boundary conditions for simulation:
// zone set-point temperatures, internal gains and air-handling-unit
// profiles, framed on an hourly yearly grid.
//
// Set-point and internal-gains matrices are written as tab-separated
// text tables with a "#1" marker and a dimension header; AHU boundary
// values are written as a level-4 MAT container (see package matfile).
// Both layouts are fixed byte-level contracts with the consuming
// simulator.
//
// One Exporter serves one building. Profile lengths are preconditions:
// any mismatch against the yearly grid or the supplied time grid aborts
// the export with an error naming the offending sequence.
package boundary
