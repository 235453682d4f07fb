package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env-default:"info"`
	HTTPPort     string `yaml:"http-port" env-default:"8080"`
	SnapshotPath string `yaml:"snapshot-path" env-default:"game_state.txt"`
	Bot          Bot    `yaml:"bot"`
}

// Bot controls the optional AI capability. It defaults to off: cleanenv
// treats a false bool as unset, so a true default could not be turned off
// from the file.
type Bot struct {
	Enabled bool `yaml:"enabled" env-default:"false"`
}

// Load reads the config file. A missing file is fine, the defaults apply;
// the console must run without one.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
