package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a cursor configuration file (JSON, YAML or TOML, by extension)
// on top of the defaults. Keys missing from the file keep their default value.
func Load(path string) (CursorConfig, error) {
	return LoadOver(path, DefaultCursor())
}

// LoadOver is Load with an explicit base configuration.
func LoadOver(path string, base CursorConfig) (CursorConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return CursorConfig{}, fmt.Errorf("read cursor config %s: %w", path, err)
	}

	cfg := base
	if err := v.Unmarshal(&cfg); err != nil {
		return CursorConfig{}, fmt.Errorf("decode cursor config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return CursorConfig{}, fmt.Errorf("cursor config %s: %w", path, err)
	}
	return cfg, nil
}
