// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Name                     string `json:"name"`
		Version                  string `json:"version"`
		Debug                    bool   `json:"debug"`
		SecretKey                string `json:"secret_key"`
		TokenAlgorithm           string `json:"token_algorithm"`
		AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
		TokenIssuer              string `json:"token_issuer"`
		PasswordHashCost         int    `json:"password_hash_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		Firebase struct {
			ProjectID       string `json:"project_id"`
			CredentialsPath string `json:"credentials_path"`
			PrivateKeyID    string `json:"private_key_id"`
			PrivateKey      string `json:"private_key"`
			ClientEmail     string `json:"client_email"`
			ClientID        string `json:"client_id"`
			AuthURI         string `json:"auth_uri"`
			TokenURI        string `json:"token_uri"`
		} `json:"firebase,omitempty"`

		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
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
			Name:                     jsonCfg.App.Name,
			Version:                  jsonCfg.App.Version,
			Debug:                    jsonCfg.App.Debug,
			SecretKey:                jsonCfg.App.SecretKey,
			TokenAlgorithm:           jsonCfg.App.TokenAlgorithm,
			AccessTokenExpireMinutes: jsonCfg.App.AccessTokenExpireMinutes,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			PasswordHashCost:         jsonCfg.App.PasswordHashCost,
		},
		Storage: Storage{
			Firebase: Firebase{
				ProjectID:       jsonCfg.Storage.Firebase.ProjectID,
				CredentialsPath: jsonCfg.Storage.Firebase.CredentialsPath,
				PrivateKeyID:    jsonCfg.Storage.Firebase.PrivateKeyID,
				PrivateKey:      jsonCfg.Storage.Firebase.PrivateKey,
				ClientEmail:     jsonCfg.Storage.Firebase.ClientEmail,
				ClientID:        jsonCfg.Storage.Firebase.ClientID,
				AuthURI:         jsonCfg.Storage.Firebase.AuthURI,
				TokenURI:        jsonCfg.Storage.Firebase.TokenURI,
			},
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		JSONFilePath: "",
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
