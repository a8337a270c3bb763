// Package config handles loading and validating buildsim configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables (BUILDSIM_*)
//   - Validation of required fields and export parameters
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (broker passwords, InfluxDB tokens) should be
//     set via environment variables
//   - The config file should have restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
package config
