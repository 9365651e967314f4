// Package config resolves settings from flags, the environment and an
// optional .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/srahul3/friends-graph/internal/store"
)

// Flag names double as viper keys.
const (
	FlagURI            = "uri"
	FlagUsername       = "username"
	FlagPassword       = "password"
	FlagDatabase       = "database"
	FlagConnectTimeout = "connect-timeout"
	FlagLogLevel       = "log-level"
	FlagEnvFile        = "env-file"
	FlagPerson         = "person"
	FlagFriend         = "friend"
	DefaultEnvFile     = ".env"
	defaultLogLevel    = "info"
)

var envKeys = map[string]string{
	FlagURI:            "NEO4J_URI",
	FlagUsername:       "NEO4J_DB_USERNAME",
	FlagPassword:       "NEO4J_DB_PASSWORD",
	FlagDatabase:       "NEO4J_DATABASE",
	FlagConnectTimeout: "NEO4J_CONNECT_TIMEOUT",
	FlagLogLevel:       "LOG_LEVEL",
}

type Config struct {
	Neo4j    store.Config
	LogLevel slog.Level
	Person   string
	Friend   string
}

// RegisterFlags adds the flags Load reads. Defaults for person and friend are
// supplied by the caller.
func RegisterFlags(flags *pflag.FlagSet, person, friend string) {
	defaults := store.DefaultConfig()
	flags.String(FlagURI, defaults.URI, "Neo4j connection URI (env NEO4J_URI)")
	flags.String(FlagUsername, defaults.Username, "Neo4j username (env NEO4J_DB_USERNAME)")
	flags.String(FlagPassword, "", "Neo4j password (env NEO4J_DB_PASSWORD)")
	flags.String(FlagDatabase, "", "database name, empty for the server default (env NEO4J_DATABASE)")
	flags.Duration(FlagConnectTimeout, 0, "socket connect timeout, 0 keeps the driver default (env NEO4J_CONNECT_TIMEOUT)")
	flags.String(FlagLogLevel, defaultLogLevel, "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.String(FlagEnvFile, DefaultEnvFile, "dotenv file to load before reading the environment")
	flags.String(FlagPerson, person, "name of the person to create")
	flags.String(FlagFriend, friend, "name of the friend to create")
}

// Load reads the env file named by --env-file, then resolves every setting.
// A missing default env file is ignored; a missing explicit one is an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	envFile, err := flags.GetString(FlagEnvFile)
	if err != nil {
		return nil, err
	}
	if err := loadEnvFile(envFile, flags.Changed(FlagEnvFile)); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v.GetString(FlagLogLevel)))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString(FlagLogLevel), err)
	}

	return &Config{
		Neo4j: store.Config{
			URI:                  v.GetString(FlagURI),
			Username:             v.GetString(FlagUsername),
			Password:             v.GetString(FlagPassword),
			Database:             v.GetString(FlagDatabase),
			SocketConnectTimeout: v.GetDuration(FlagConnectTimeout),
		},
		LogLevel: level,
		Person:   v.GetString(FlagPerson),
		Friend:   v.GetString(FlagFriend),
	}, nil
}

func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}
