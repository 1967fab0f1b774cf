// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source and merged by the builder.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds entity store behaviour switches.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the authenticated gateway.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://api.example.com"
	// or "localhost:8080"; the http scheme is assumed when missing).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the fixed timeout of a single backend request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond limits outbound requests. Zero disables limiting.
	// Env: ADAPTER_RPS
	RequestsPerSecond float64 `env:"RPS"`

	// Burst is the limiter bucket size.
	// Env: ADAPTER_BURST
	Burst int `env:"BURST"`

	// WireStyle selects the request body naming, "snake" or "pascal".
	// Env: ADAPTER_WIRE_STYLE
	WireStyle string `env:"WIRE_STYLE"`
}

// Storage groups the client storage settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// SealKey, when set, encrypts stored values at rest.
	// Env: STORAGE_SEAL_KEY
	SealKey string `env:"SEAL_KEY"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path. The value "memory" keeps the
	// session in process memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds entity store behaviour switches.
type Sync struct {
	// RollbackOnFailure restores optimistic changes when the backend rejects
	// a mutation.
	// Env: SYNC_ROLLBACK_ON_FAILURE
	RollbackOnFailure bool `env:"ROLLBACK_ON_FAILURE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ProfileRefreshInterval is how often the cached profile is refreshed.
	// Zero disables the job.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// Dir is the directory of the rotating log files. Empty means stdout.
	// Env: LOG_DIR
	Dir string `env:"DIR"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied before any other source.
const (
	DefaultRequestTimeout         = 15 * time.Second
	DefaultProfileRefreshInterval = 5 * time.Minute
	DefaultDSN                    = "pet-tracker.db"
	DefaultWireStyle              = "snake"
	DefaultLogLevel               = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			WireStyle:      DefaultWireStyle,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{ProfileRefreshInterval: DefaultProfileRefreshInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
