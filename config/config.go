package config

import (
	"fmt"

	"github.com/okorolev/skillswap/internal/app/auth"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string      `mapstructure:"port" json:"port"`
	LogLevel    LogLevel    `mapstructure:"log_level" json:"log_level"`
	MaxBodySize int64       `mapstructure:"max_body_size" json:"max_body_size"`
	Store       StoreConfig `mapstructure:"store" json:"store"`
}

// StoreDriver selects the backing store for users and swaps.
type StoreDriver string

const (
	StoreMemory   StoreDriver = "memory"
	StorePostgres StoreDriver = "postgres"
)

type StoreConfig struct {
	Driver      StoreDriver `mapstructure:"driver" json:"driver"`
	DatabaseDSN string      `mapstructure:"database_dsn" json:"database_dsn"`
	SeedDemo    bool        `mapstructure:"seed_demo" json:"seed_demo"`
}

func LoadConfig() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var Cfg Config
	if err := viper.Unmarshal(&Cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return Cfg
}

func GetUserConfigs() (user.Config, user.ValidationConfig) {
	var userCfg user.Config
	if err := viper.Sub("user").Unmarshal(&userCfg); err != nil {
		panic(fmt.Errorf("fatal error user config: %w", err))
	}

	var userValCfg user.ValidationConfig
	if err := viper.Sub("user").Unmarshal(&userValCfg); err != nil {
		panic(fmt.Errorf("fatal error user validation config: %w", err))
	}

	return userCfg, userValCfg
}

func GetAuthConfig() auth.Config {
	var authCfg auth.Config
	if err := viper.Sub("auth").Unmarshal(&authCfg); err != nil {
		panic(fmt.Errorf("fatal error auth config: %w", err))
	}

	return authCfg
}

type LogLevel string

const (
	logLevelDebug LogLevel = "debug"
	logLevelInfo  LogLevel = "info"
	logLevelWarn  LogLevel = "warn"
	logLevelError LogLevel = "error"
)

func (l LogLevel) ZeroLog() zerolog.Level {
	switch l {
	case logLevelDebug:
		return zerolog.DebugLevel
	case logLevelInfo:
		return zerolog.InfoLevel
	case logLevelWarn:
		return zerolog.WarnLevel
	case logLevelError:
		return zerolog.ErrorLevel

	default:
		return zerolog.InfoLevel
	}
}
