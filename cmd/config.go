/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/polyglot/internal/locale"
)

type Config struct {
	Service       string        `mapstructure:"service"`
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	UserAgent     string        `mapstructure:"user_agent"`
	LogLevel      string        `mapstructure:"log_level"`
	DefaultSource string        `mapstructure:"default_source"`
	MyMemoryEmail string        `mapstructure:"mymemory_email"`
}

// loadConfig merges defaults, the optional YAML file and POLYGLOT_*
// environment variables, in increasing priority.
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("service", "google")
	v.SetDefault("endpoint", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("user_agent", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("default_source", "")
	v.SetDefault("mymemory_email", "")

	v.SetEnvPrefix("POLYGLOT")
	v.AutomaticEnv()

	if path := os.Getenv("POLYGLOT_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".polyglot")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultSource != "" {
		code, ok := locale.Parse(cfg.DefaultSource)
		if !ok {
			return nil, fmt.Errorf("invalid default_source %q", cfg.DefaultSource)
		}
		cfg.DefaultSource = code
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	return &cfg, nil
}
