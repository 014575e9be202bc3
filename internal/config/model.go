package config

import "time"

type (
	Config struct {
		Server   ServerConfig   `mapstructure:"server"`
		Log      LogConfig      `mapstructure:"log"`
		Database DatabaseConfig `mapstructure:"database"`
		Redis    RedisConfig    `mapstructure:"redis"`
		Checker  CheckerConfig  `mapstructure:"checker"`
	}

	ServerConfig struct {
		Port int `mapstructure:"port"`
	}

	LogConfig struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	}

	DatabaseConfig struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	}

	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	CheckerConfig struct {
		// FetchTimeout bounds a single release endpoint request.
		FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
		// CacheTTL is the default freshness window for release snapshots.
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
		// SweepConcurrency caps parallel target checks during a sweep.
		SweepConcurrency int `mapstructure:"sweep_concurrency"`
	}
)
