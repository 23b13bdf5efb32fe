package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Display  Display `yaml:"display"`
}

type Display struct {
	PlayerOneGlyph string `yaml:"player-one-glyph" env-default:"X"`
	PlayerTwoGlyph string `yaml:"player-two-glyph" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
