package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
		Mode string
	}
	Log struct {
		Level string
	}
	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret   string
		TTLHours int `mapstructure:"ttl_hours"`
	}
	Auth struct {
		Required        bool
		NonceTTLSeconds int `mapstructure:"nonce_ttl_seconds"`
	}
	Practice struct {
		Opponents int
		Position  string
	}
}

var C Config

const EnvPrefix = "POKER"

// DefaultJWTSecret is the placeholder shipped in config.yaml.
const DefaultJWTSecret = "change-me"

var ErrWeakSecret = errors.New("jwt.secret must be set when auth.required is true")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", DefaultJWTSecret)
	v.SetDefault("jwt.ttl_hours", 24)
	v.SetDefault("auth.required", false)
	v.SetDefault("auth.nonce_ttl_seconds", 300)
	v.SetDefault("practice.opponents", 1)
	v.SetDefault("practice.position", "middle")
}

// Load fills C from defaults, then the yaml file at path (skipped when it
// does not exist), then POKER_* environment variables. A .env file in the
// working directory is loaded into the environment first.
func Load(path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return err
	}
	C = c
	return nil
}

func (c Config) validate() error {
	if c.Auth.Required && (c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret) {
		return ErrWeakSecret
	}
	return nil
}

// DefaultSecret reports whether tokens are signed with the placeholder secret.
func (c Config) DefaultSecret() bool {
	return c.JWT.Secret == DefaultJWTSecret
}
