// Package project persists and loads building projects.
//
// Two sources feed the exporters:
//   - a declarative YAML project file (LoadFile), the usual entry point
//     for new projects, with short repeating profiles expanded to full
//     years at load time;
//   - the SQLite project store (SQLiteRepository), which keeps imported
//     projects so exports can be re-run without the original file.
//
// Profiles and envelope parameters are stored as JSON columns; the
// schema only models the project/building/zone hierarchy.
package project
