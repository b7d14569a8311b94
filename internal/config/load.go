package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "DINO"

// envBinding maps a config key to its environment variables, in order of
// precedence.
type envBinding struct {
	key  string
	envs []string
}

var envBindings = []envBinding{
	{"server.port", []string{"DINO_SERVER_PORT", "PORT"}},
	{"server.log_level", []string{"DINO_SERVER_LOG_LEVEL", "LOG_LEVEL"}},
	{"server.base_url", []string{"DINO_SERVER_BASE_URL", "BASE_URL"}},
	{"database.driver", []string{"DINO_DATABASE_DRIVER"}},
	{"database.url", []string{"DINO_DATABASE_URL", "DATABASE_URL"}},
	{"collection.page_size", []string{"DINO_COLLECTION_PAGE_SIZE"}},
	{"static.image_dir", []string{"DINO_STATIC_IMAGE_DIR"}},
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. When configFile is empty,
// config.yaml in the working directory is used if it exists.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.url", "")
	v.SetDefault("collection.page_size", 20)
	v.SetDefault("static.image_dir", "public/dinosaur/image")

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, b := range envBindings {
		args := append([]string{b.key}, b.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment for %s: %w", b.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Server.BaseURL = strings.TrimRight(cfg.Server.BaseURL, "/")
	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
