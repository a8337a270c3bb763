// Package modelica renders thermal-zone models from the embedded
// templates and lays out the generated files as a Modelica package
// hierarchy: project root, one package per building, one model package
// per building holding the zone models. Every directory level gets a
// package.mo declaration and a package.order manifest so downstream
// tooling can load the tree in a defined order.
//
// Only the two-element envelope template is wired; requesting another
// granularity is an explicit unsupported-configuration error, never a
// silent no-op.
package modelica
