// Copyright (C) 2024, GreetLabs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	LogLevel string `yaml:"logLevel"`

	// Database overrides the default database directory.
	Database string `yaml:"database"`

	// Genesis is an optional path to a genesis allocation document, applied
	// once when the database is fresh.
	Genesis string `yaml:"genesis"`

	HTTPHost       string   `yaml:"httpHost"`
	HTTPPort       int      `yaml:"httpPort"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		HTTPHost:       "127.0.0.1",
		HTTPPort:       9766,
		AllowedOrigins: []string{"*"},
	}
}

// LoadConfig returns the default config overlaid with the yaml file at
// [path], if any.
func LoadConfig(path string) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}
