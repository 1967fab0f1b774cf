package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"rps"`
		Burst             int      `json:"burst"`
		WireStyle         string   `json:"wire_style"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SealKey string `json:"seal_key"`
	} `json:"storage,omitempty"`

	Sync struct {
		RollbackOnFailure bool `json:"rollback_on_failure"`
	} `json:"sync,omitempty"`

	Workers struct {
		ProfileRefreshInterval Duration `json:"profile_refresh_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Dir   string `json:"dir"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:       jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			Burst:             jsonCfg.Adapter.Burst,
			WireStyle:         jsonCfg.Adapter.WireStyle,
		},
		Storage: Storage{
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			SealKey: jsonCfg.Storage.SealKey,
		},
		Sync: Sync{
			RollbackOnFailure: jsonCfg.Sync.RollbackOnFailure,
		},
		Workers: Workers{
			ProfileRefreshInterval: time.Duration(jsonCfg.Workers.ProfileRefreshInterval),
		},
		Log: Log{
			Dir:   jsonCfg.Log.Dir,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
