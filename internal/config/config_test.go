package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears the variables Load reads and restores them after the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags, "Iikku", "Petsku")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Empty(t, cfg.Neo4j.Password)
	assert.Empty(t, cfg.Neo4j.Database)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "Iikku", cfg.Person)
	assert.Equal(t, "Petsku", cfg.Friend)
}

func TestLoad_Environment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("NEO4J_URI", "neo4j+s://graph.example.com:7687")
	t.Setenv("NEO4J_DB_USERNAME", "reader")
	t.Setenv("NEO4J_DB_PASSWORD", "s3cret")
	t.Setenv("NEO4J_DATABASE", "friends")
	t.Setenv("NEO4J_CONNECT_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "neo4j+s://graph.example.com:7687", cfg.Neo4j.URI)
	assert.Equal(t, "reader", cfg.Neo4j.Username)
	assert.Equal(t, "s3cret", cfg.Neo4j.Password)
	assert.Equal(t, "friends", cfg.Neo4j.Database)
	assert.Equal(t, 250*time.Millisecond, cfg.Neo4j.SocketConnectTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	unsetEnv(t)
	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_DB_PASSWORD", "from-env")

	cfg, err := Load(newFlags(t,
		"--uri", "bolt://flag:7687",
		"--person", "Alice",
		"--friend", "Bob",
		"--log-level", "WARN",
	))
	require.NoError(t, err)

	assert.Equal(t, "bolt://flag:7687", cfg.Neo4j.URI)
	assert.Equal(t, "from-env", cfg.Neo4j.Password)
	assert.Equal(t, "Alice", cfg.Person)
	assert.Equal(t, "Bob", cfg.Friend)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t)
	path := filepath.Join(t.TempDir(), "neo4j.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"NEO4J_URI=bolt://dotenv:7687\nNEO4J_DB_USERNAME=dotenv\nNEO4J_DB_PASSWORD=passwd\n",
	), 0o600))
	t.Setenv("NEO4J_DB_USERNAME", "real-env")

	cfg, err := Load(newFlags(t, "--env-file", path))
	require.NoError(t, err)

	assert.Equal(t, "bolt://dotenv:7687", cfg.Neo4j.URI)
	assert.Equal(t, "real-env", cfg.Neo4j.Username, "existing environment wins over the env file")
	assert.Equal(t, "passwd", cfg.Neo4j.Password)
}

func TestLoad_MissingDefaultEnvFileIgnored(t *testing.T) {
	unsetEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load(newFlags(t))
	assert.NoError(t, err)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	unsetEnv(t)

	_, err := Load(newFlags(t, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestLoad_EmptyEnvFileDisablesLoading(t *testing.T) {
	unsetEnv(t)

	_, err := Load(newFlags(t, "--env-file", ""))
	assert.NoError(t, err)
}

func TestLoad_NoRetryFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags, "Iikku", "Petsku")

	assert.Nil(t, flags.Lookup("max-tx-retry-time"))
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	unsetEnv(t)

	_, err := Load(newFlags(t, "--log-level", "loud"))
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}
