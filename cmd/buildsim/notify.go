package main

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/buildsim/internal/infrastructure/config"
	"github.com/nerrad567/buildsim/internal/infrastructure/logging"
	"github.com/nerrad567/buildsim/internal/infrastructure/mqtt"
)

// exportEvent is the JSON payload published after a building export.
type exportEvent struct {
	RunID     string    `json:"run_id"`
	Project   string    `json:"project"`
	Building  string    `json:"building"`
	Artifacts []string  `json:"artifacts"`
	Timestamp time.Time `json:"timestamp"`
}

// notifier publishes export events when MQTT is enabled. A nil client
// makes every method a no-op, so callers never branch on the config.
type notifier struct {
	client *mqtt.Client
	qos    byte
	runID  string
	log    *logging.Logger
}

// newNotifier connects to the broker when enabled. Notification is
// best-effort: connection failures are logged and disable the notifier
// rather than failing the export.
func newNotifier(cfg *config.Config, log *logging.Logger) (*notifier, func()) {
	n := &notifier{
		runID: uuid.NewString(),
		log:   log,
	}
	if !cfg.MQTT.Enabled {
		return n, func() {}
	}

	client, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		log.Warn("export events disabled", "error", err)
		return n, func() {}
	}

	n.client = client
	n.qos = byte(cfg.MQTT.QoS)
	return n, client.Disconnect
}

// buildingExported publishes one export completion event.
func (n *notifier) buildingExported(projectName, buildingName string, artifacts []string) {
	if n.client == nil {
		return
	}

	payload, err := json.Marshal(exportEvent{
		RunID:     n.runID,
		Project:   projectName,
		Building:  buildingName,
		Artifacts: artifacts,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		n.log.Warn("encoding export event", "building", buildingName, "error", err)
		return
	}

	topic := mqtt.Topics{}.ExportEvent(buildingName)
	if err := n.client.Publish(topic, payload, n.qos, false); err != nil {
		n.log.Warn("publishing export event", "topic", topic, "error", err)
	}
}
