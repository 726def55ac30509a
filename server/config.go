package server

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the server settings. Precedence is flags > environment >
// config file > defaults; the flag layer is applied by the caller after
// LoadConfig.
type Config struct {
	Server struct {
		Host         string `koanf:"host"`
		Port         int    `koanf:"port"`
		BaseURL      string `koanf:"base_url"`
		DefaultTheme string `koanf:"default_theme"`
		Generator    bool   `koanf:"generator"`
	} `koanf:"server"`
	Cache struct {
		SVGMaxAge int `koanf:"svg_max_age"`
		DocMaxAge int `koanf:"doc_max_age"`
	} `koanf:"cache"`
}

func DefaultConfig() Config {
	var c Config
	c.Server.Host = "127.0.0.1"
	c.Server.Port = 3000
	c.Server.DefaultTheme = "opencode"
	c.Server.Generator = true
	c.Cache.SVGMaxAge = 300
	c.Cache.DocMaxAge = 120
	return c
}

// LoadConfig layers the yaml file at path (skipped when empty) and
// PROMPTFRAME_* environment variables over the defaults. Environment
// variables map underscores after the prefix to key separators, e.g.
// PROMPTFRAME_SERVER_PORT=8080.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, err
		}
	}
	err := k.Load(env.Provider("PROMPTFRAME_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "PROMPTFRAME_")
		s = strings.ToLower(s)
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return cfg, err
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
