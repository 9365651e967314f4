package store

import (
	"errors"
	"time"
)

// Config holds the connection settings for the Neo4j store.
type Config struct {
	// URI is the Bolt endpoint, e.g. bolt://localhost:7687 or neo4j+s://host:7687.
	URI      string
	Username string
	Password string
	// Database selects the database; empty uses the server default.
	Database string

	// Zero values keep the driver defaults.
	MaxConnectionPoolSize        int
	ConnectionAcquisitionTimeout time.Duration
	SocketConnectTimeout         time.Duration
}

func DefaultConfig() Config {
	return Config{
		URI:      "bolt://localhost:7687",
		Username: "neo4j",
	}
}

func (c Config) Validate() error {
	if c.URI == "" {
		return errors.New("uri cannot be empty")
	}
	if c.Username == "" {
		return errors.New("username cannot be empty")
	}
	if c.Password == "" {
		return errors.New("password cannot be empty")
	}
	if c.MaxConnectionPoolSize < 0 {
		return errors.New("max connection pool size cannot be negative")
	}
	if c.ConnectionAcquisitionTimeout < 0 || c.SocketConnectTimeout < 0 {
		return errors.New("timeouts cannot be negative")
	}
	return nil
}
