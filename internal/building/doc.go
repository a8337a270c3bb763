// Package building defines the domain model consumed by the exporters:
// projects, buildings, thermal zones, usage profiles, air-handling units
// and the envelope variants describing each zone's construction.
//
// The exporters treat this graph as read-only. All derived values are
// cached on the exporter side, never written back onto the model.
package building
