// Package config reads the game settings from the environment.
package config

import (
	"log/slog"

	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/navigator"
)

type Config struct {
	LogLevel slog.Level              `env:"DETECTIVE_LOG_LEVEL" envDefault:"warn"`
	DeadEnd  navigator.DeadEndPolicy `env:"DETECTIVE_DEAD_END_POLICY" envDefault:"return"`
	Reveal   game.RevealMode         `env:"DETECTIVE_REVEAL" envDefault:"ask"`
	Pause    bool                    `env:"DETECTIVE_PAUSE" envDefault:"true"`
}

// Load builds the configuration. lookupEnv has the same signature as [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return Config{}, errors.Wrap(err, "populate config")
	}
	return cfg, nil
}

// SessionOptions picks the settings the game session cares about.
func (c Config) SessionOptions() game.Options {
	return game.Options{
		DeadEnd: c.DeadEnd,
		Reveal:  c.Reveal,
		Pause:   c.Pause,
	}
}
