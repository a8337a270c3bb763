package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for buildsim.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Export   ExportConfig   `yaml:"export"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig contains the SQLite project store settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// ExportConfig contains the export settings. The output directory is
// explicit configuration on every run; there is no implicit default
// path resolution.
type ExportConfig struct {
	// OutputDir is the destination directory for all artifacts.
	OutputDir string `yaml:"output_dir"`

	// NumberOfElements is the envelope aggregation granularity (1-4).
	NumberOfElements int `yaml:"number_of_elements"`

	// MergeWindows merges window resistance into the outer wall path.
	MergeWindows bool `yaml:"merge_windows"`

	// DurationProfile is the AHU boundary profile duration in seconds.
	DurationProfile int `yaml:"duration_profile"`

	// TimeStep is the AHU boundary grid step in seconds.
	TimeStep int `yaml:"time_step"`

	// Double emits every grid point twice for stepwise signals.
	Double bool `yaml:"double"`
}

// InfluxDBConfig contains the measured-profile source settings.
type InfluxDBConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
}

// MQTTConfig contains the export event notifier settings.
type MQTTConfig struct {
	Enabled bool             `yaml:"enabled"`
	Broker  MQTTBrokerConfig `yaml:"broker"`
	Auth    MQTTAuthConfig   `yaml:"auth"`
	QoS     int              `yaml:"qos"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads, parses and validates the configuration file at path.
//
// Precedence, lowest to highest: built-in defaults, YAML file,
// environment variables.
//
// Returns:
//   - *Config: Validated configuration
//   - error: If the file is unreadable, invalid YAML, or fails validation
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults. One year of
// hourly AHU boundary values matches the yearly set-point and gains
// matrices.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "./data/buildsim.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Export: ExportConfig{
			OutputDir:        "./export",
			NumberOfElements: 2,
			MergeWindows:     false,
			DurationProfile:  31536000,
			TimeStep:         3600,
			Double:           false,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "buildsim",
			},
			QoS: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables follow the pattern BUILDSIM_SECTION_KEY.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUILDSIM_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("BUILDSIM_EXPORT_OUTPUT_DIR"); v != "" {
		cfg.Export.OutputDir = v
	}
	if v := os.Getenv("BUILDSIM_INFLUXDB_URL"); v != "" {
		cfg.InfluxDB.URL = v
	}
	if v := os.Getenv("BUILDSIM_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
	if v := os.Getenv("BUILDSIM_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("BUILDSIM_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("BUILDSIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	if c.Export.NumberOfElements < 1 || c.Export.NumberOfElements > 4 {
		return fmt.Errorf("export.number_of_elements must be between 1 and 4, got %d", c.Export.NumberOfElements)
	}
	if c.Export.TimeStep <= 0 {
		return fmt.Errorf("export.time_step must be positive, got %d", c.Export.TimeStep)
	}
	if c.Export.DurationProfile <= 0 {
		return fmt.Errorf("export.duration_profile must be positive, got %d", c.Export.DurationProfile)
	}
	if c.Export.DurationProfile%c.Export.TimeStep != 0 {
		return fmt.Errorf("export.duration_profile must be a multiple of export.time_step")
	}
	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			return fmt.Errorf("influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Bucket == "" {
			return fmt.Errorf("influxdb.bucket is required when influxdb is enabled")
		}
	}
	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" {
			return fmt.Errorf("mqtt.broker.host is required when mqtt is enabled")
		}
		if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
		}
	}
	return nil
}
