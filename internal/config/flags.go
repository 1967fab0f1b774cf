package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a backend base URL
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-rps outbound requests per second, 0 disables limiting
//	-burst outbound request burst
//	-wire-style request body naming, snake or pascal
//	-d SQLite database file
//	-seal-key at-rest encryption secret
//	-rollback-on-failure restore optimistic changes on failure
//	-profile-refresh-interval profile refresh period (e.g., "5m")
//	-log-dir rotating log directory
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("pet-tracker", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Backend base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.Float64Var(&cfg.Adapter.RequestsPerSecond, "rps", 0, "Outbound requests per second")
	fs.IntVar(&cfg.Adapter.Burst, "burst", 0, "Outbound request burst")
	fs.StringVar(&cfg.Adapter.WireStyle, "wire-style", "", "Request body naming: snake or pascal")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database file")
	fs.StringVar(&cfg.Storage.SealKey, "seal-key", "", "At-rest encryption secret")
	fs.BoolVar(&cfg.Sync.RollbackOnFailure, "rollback-on-failure", false, "Restore optimistic changes on failure")
	fs.DurationVar(&cfg.Workers.ProfileRefreshInterval, "profile-refresh-interval", time.Duration(0), "Profile refresh period (e.g., 5m)")
	fs.StringVar(&cfg.Log.Dir, "log-dir", "", "Rotating log directory")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
