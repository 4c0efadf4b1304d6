package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidGravityInterval = errors.New("gravity interval must be positive")
	ErrInvalidFrameInterval   = errors.New("frame interval must be positive")
	ErrEmptySpectatorAddr     = errors.New("spectator address is required when spectators are enabled")
)

const (
	defaultGravityInterval = time.Second
	defaultFrameInterval   = 16 * time.Millisecond
	defaultSpectatorAddr   = ":8080"
	defaultLogLevel        = "info"
	defaultLogFile         = "tetris.log"
)

type SpectatorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	GravityInterval time.Duration   `yaml:"gravity_interval"`
	FrameInterval   time.Duration   `yaml:"frame_interval"`
	Seed            int64           `yaml:"seed"`
	Spectator       SpectatorConfig `yaml:"spectator"`
	Log             LogConfig       `yaml:"log"`
}

func Default() Config {
	return Config{
		GravityInterval: defaultGravityInterval,
		FrameInterval:   defaultFrameInterval,
		Spectator: SpectatorConfig{
			Addr: defaultSpectatorAddr,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}

// New reads the YAML file at cfgPath over the defaults. A missing file
// yields the defaults.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	file, err := os.Open(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, errors.WithMessagef(err, "open config '%s'", cfgPath)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "decode yaml config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GravityInterval <= 0 {
		return ErrInvalidGravityInterval
	}
	if c.FrameInterval <= 0 {
		return ErrInvalidFrameInterval
	}
	if c.Spectator.Enabled && c.Spectator.Addr == "" {
		return ErrEmptySpectatorAddr
	}
	return nil
}
