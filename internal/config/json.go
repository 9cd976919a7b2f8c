package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/secret"
)

// Duration wraps time.Duration with JSON unmarshalling from strings like
// "30s" or "1h30m".
type Duration time.Duration

// UnmarshalJSON parses a JSON string via time.ParseDuration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-based durations for use in configuration files.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		SessionTimeout Duration `json:"session_timeout"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Crypt struct {
		Algorithm  string `json:"algorithm"`
		Length     int    `json:"length"`
		Method     string `json:"method"`
		Rounds     int    `json:"rounds"`
		SaltLength int    `json:"salt_length"`
	} `json:"crypt,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			SessionTimeout: time.Duration(jsonCfg.App.SessionTimeout),
			Version:        jsonCfg.App.Version,
		},
		Crypt: secret.Options{
			Algorithm:  jsonCfg.Crypt.Algorithm,
			Length:     jsonCfg.Crypt.Length,
			Method:     jsonCfg.Crypt.Method,
			Rounds:     jsonCfg.Crypt.Rounds,
			SaltLength: jsonCfg.Crypt.SaltLength,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
