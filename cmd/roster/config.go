package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"/tmp/elective-hub/badger"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" default:"/tmp/elective-hub/bluge"`
	// ROSTER_COLOURS enables colorized output for better readability
	Colours  bool   `envconfig:"ROSTER_COLOURS" default:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
