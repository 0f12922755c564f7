package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds process settings. Values come from defaults, then an optional
// .env file, then the environment.
type Config struct {
	Port           string
	DBPath         string
	ForeignKeys    bool
	StaticDir      string
	AllowedOrigins []string
	JWTSecret      string
	LogLevel       string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3001")
	v.SetDefault("db_path", "./taskboard.db")
	v.SetDefault("db_foreign_keys", true)
	v.SetDefault("static_dir", "./static")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("log_level", "info")
}

// LoadConfig reads envFile (KEY=value lines) when it exists and lets
// environment variables override anything in it.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		DBPath:      v.GetString("db_path"),
		ForeignKeys: v.GetBool("db_foreign_keys"),
		StaticDir:   v.GetString("static_dir"),
		JWTSecret:   v.GetString("jwt_secret"),
		LogLevel:    v.GetString("log_level"),
	}
	for _, o := range strings.Split(v.GetString("cors_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	return cfg, nil
}
