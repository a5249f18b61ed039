// Package config loads and validates Trackpoint Core configuration.
//
// Configuration is layered: hardcoded defaults, then a YAML file, then
// environment variable overrides (TRACKPOINT_* plus a few compatibility
// variables such as PORT and FRONTEND_URL). The loaded Config is validated
// before use; an invalid configuration fails startup rather than limping
// along with bad values.
//
// Usage:
//
//	cfg, err := config.LoadOrDefault("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
package config
