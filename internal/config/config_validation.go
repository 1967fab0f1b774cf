// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pet-tracker/internal/schema"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.RequestsPerSecond < 0 || cfg.Adapter.Burst < 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := schema.ParseStyle(cfg.Adapter.WireStyle); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ProfileRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
