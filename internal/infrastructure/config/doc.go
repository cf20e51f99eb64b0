// Package config handles loading and validating ioclog configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Configuration is loaded once at startup. Each logger receives its own
// LoggingConfig value; nothing here touches process-wide logging state.
//
// Usage:
//
//	cfg, err := config.Load("configs/ioclog.yaml")
//	if err != nil {
//	    return err
//	}
//	log, err := logging.New(cfg.Logging)
package config
