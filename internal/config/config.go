package config

import (
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-evaluator/internal/util"
	"io"
	"os"
)

// Config provides configuration for the evaluator commands
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}

	// Workers is the number of goroutines used for batch evaluation. 0 uses every CPU.
	Workers int `yaml:"workers"`

	// Seed makes simulations repeatable. 0 uses crypto/rand.
	Seed int64 `yaml:"seed"`

	// Hands is the number of tables dealt by the simulator
	Hands int `yaml:"hands"`

	// Seats is the number of players at each simulated table
	Seats int `yaml:"seats"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides exist
func DefaultConfig() Config {
	cfg := Config{
		Workers: 0,
		Seed:    0,
		Hands:   10000,
		Seats:   6,
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
