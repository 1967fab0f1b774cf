package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RequestsPerSecond limits outbound requests; zero disables the limiter.
	RequestsPerSecond float64
	// Burst is the limiter bucket size.
	Burst int
	// WireStyle is the request body naming convention.
	WireStyle string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or "memory".
	DSN string
}

// InMemory reports whether the session should be kept in process memory.
func (db ClientDB) InMemory() bool {
	return db.DSN == "memory" || db.DSN == ":memory:"
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SealKey enables at-rest encryption when non-empty.
	SealKey string
}

// ClientSync holds entity store behaviour switches.
type ClientSync struct {
	// RollbackOnFailure restores optimistic changes on failed mutations.
	RollbackOnFailure bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProfileRefreshInterval defines how often the profile job runs.
	ProfileRefreshInterval time.Duration
}

// ClientLog contains log output settings.
type ClientLog struct {
	Dir   string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the backend address and request settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains entity store switches.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log output settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client configuration from
// defaults, the ".env" file, environment variables, the given command-line
// arguments and the optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:       cfg.Adapter.HTTPAddress,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			RequestsPerSecond: cfg.Adapter.RequestsPerSecond,
			Burst:             cfg.Adapter.Burst,
			WireStyle:         cfg.Adapter.WireStyle,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			SealKey: cfg.Storage.SealKey,
		},
		Sync:    ClientSync{RollbackOnFailure: cfg.Sync.RollbackOnFailure},
		Workers: ClientWorkers{ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval},
		Log:     ClientLog{Dir: cfg.Log.Dir, Level: cfg.Log.Level},
	}
}
