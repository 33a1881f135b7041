package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"goldenflower-server/internal/util"
	"goldenflower-server/pkg/playable/goldenflower"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Golden Flower server
type Config struct {
	loaded bool
	Host   string `yaml:"host" envconfig:"host"`
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
		// Format is "text" or "json"
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		Ante              int    `yaml:"ante" envconfig:"ante"`
		StartingChips     int    `yaml:"startingChips" envconfig:"starting_chips"`
		AutomatedSeats    int    `yaml:"automatedSeats" envconfig:"automated_seats"`
		RoundCap          int    `yaml:"roundCap" envconfig:"round_cap"`
		PotCap            int    `yaml:"potCap" envconfig:"pot_cap"`
		DecisionTimeoutMS int    `yaml:"decisionTimeoutMs" envconfig:"decision_timeout_ms"`
		TickIntervalMS    int    `yaml:"tickIntervalMs" envconfig:"tick_interval_ms"`
		Difficulty        string `yaml:"difficulty" envconfig:"difficulty"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		Host: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	cfg.Game.Ante = 10
	cfg.Game.StartingChips = 1000
	cfg.Game.AutomatedSeats = 3
	cfg.Game.RoundCap = 5
	cfg.Game.PotCap = 1000
	cfg.Game.DecisionTimeoutMS = 10000
	cfg.Game.TickIntervalMS = 1200
	cfg.Game.Difficulty = "medium"

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
// Values come from the defaults, then the YAML file in GF_CONFIG_FILE (a
// missing file is fine), then the environment. A .env file is read into the
// environment first but never overrides variables that are already set.
func Load() error {
	if err := godotenv.Load(util.Getenv("GF_ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("GF_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("gf", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the engine options for the configured game
func (c Config) GameOptions() goldenflower.Options {
	opts := goldenflower.DefaultOptions()
	opts.Ante = c.Game.Ante
	opts.RoundCap = c.Game.RoundCap
	opts.PotCap = c.Game.PotCap
	opts.DecisionTimeout = time.Millisecond * time.Duration(c.Game.DecisionTimeoutMS)
	opts.TickInterval = time.Millisecond * time.Duration(c.Game.TickIntervalMS)

	return opts
}
