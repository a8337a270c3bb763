// Package mqtt provides the optional export event notifier.
//
// After a successful building export, buildsim publishes a JSON event
// so resident building-management tooling learns that fresh model
// artifacts exist. The package wraps paho.mqtt.golang with connection
// management and publishing; there are no subscriptions — a one-shot
// batch tool has no long-lived session to maintain.
//
// # Topic Structure
//
//	buildsim/export/<building-name>    export completed events
//
// # Security Considerations
//
//   - TLS is recommended for brokers outside localhost (cfg.Broker.TLS)
//   - Credentials are read from config/environment, never hardcoded
package mqtt
