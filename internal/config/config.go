// Package config loads the runner/server configuration from a YAML file,
// using a two-step viper-then-yaml.v3 decode: viper locates and reads the
// file loosely into a generic map, then the "def" section is re-marshaled
// and decoded strictly into a typed struct. This avoids viper's own
// (looser, mapstructure-based) decoding for the fields that matter, while
// still getting its file-locating conveniences.
package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type outerConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// RunConfig holds the parameters of one simulation run: how long to run,
// how it's seeded, how fast the runner ticks, and where the live view
// server listens. The yaml tags are lowercase because viper lowercases
// every key before the "def" section is re-marshaled.
type RunConfig struct {
	MaxRounds    uint32 `mapstructure:"maxRounds" yaml:"maxrounds"`
	Seed         uint32 `mapstructure:"seed" yaml:"seed"`
	TickInterval string `mapstructure:"tickInterval" yaml:"tickinterval"`
	ServeAddr    string `mapstructure:"serveAddr" yaml:"serveaddr"`
	Deadline     string `mapstructure:"deadline" yaml:"deadline"`
}

// FromYaml reads path, expecting a top-level "def" section holding the run
// configuration.
func FromYaml(path string) (*RunConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &outerConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	spec, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}

	cfg := &RunConfig{}
	if err := yaml.Unmarshal(spec, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Tick parses TickInterval, defaulting to 100ms if unset or invalid.
func (cfg *RunConfig) Tick() time.Duration {
	if cfg.TickInterval == "" {
		return 100 * time.Millisecond
	}
	d, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return 100 * time.Millisecond
	}
	return d
}

// WithDeadline returns a context extended by Deadline, if one is set.
func (cfg *RunConfig) WithDeadline(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if cfg.Deadline == "" {
		innerCtx, cancel := context.WithCancel(ctx)
		return innerCtx, cancel, nil
	}
	duration, err := time.ParseDuration(cfg.Deadline)
	if err != nil {
		return nil, nil, err
	}
	innerCtx, cancel := context.WithTimeout(ctx, duration)
	return innerCtx, cancel, nil
}
