package mqtt

// Topic structure for buildsim events.
const (
	// topicPrefix roots all buildsim topics.
	topicPrefix = "buildsim"

	// topicExport is the segment for export completion events.
	topicExport = "export"
)

// Topics builds the topic strings used by the notifier.
type Topics struct{}

// ExportEvent returns the topic for a building's export completion
// event, e.g. "buildsim/export/OfficeBuilding".
func (Topics) ExportEvent(buildingName string) string {
	return topicPrefix + "/" + topicExport + "/" + buildingName
}
