package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level struct that holds all configuration.
type Config struct {
	App  AppConfig  `mapstructure:"app"`
	HTTP HTTPConfig `mapstructure:"http"`
	CORS CORSConfig `mapstructure:"cors"`
	Log  LogConfig  `mapstructure:"log"`
}

type AppConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"` // "local" or "prod"
}

type HTTPConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CORSConfig names the one front-end origin allowed to call the API.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func (c *Config) IsProd() bool {
	return c.App.Env == "prod"
}

// LoadConfig reads the optional YAML file at path, then .env and the
// process environment, which take precedence over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	v.SetDefault("app.port", ":8001")
	v.SetDefault("app.env", "local")
	v.SetDefault("http.request_timeout", 5*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("cors.allowed_origin", "http://localhost:3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "api-calls.log")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// "http.request_timeout" -> HTTP_REQUEST_TIMEOUT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v, "app.port", "app.env")
	bindEnv(v, "http.request_timeout", "http.shutdown_timeout")
	bindEnv(v, "cors.allowed_origin")
	bindEnv(v, "log.level", "log.file")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	if cfg.App.Port == "" {
		return nil, fmt.Errorf("app port cannot be empty")
	}
	if cfg.CORS.AllowedOrigin == "" {
		return nil, fmt.Errorf("cors allowed origin cannot be empty")
	}

	return &cfg, nil
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
