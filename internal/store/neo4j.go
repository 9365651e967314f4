package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/srahul3/friends-graph/internal/model"
)

func NewNeo4jStore(config Config, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &neo4jStore{
		config: config,
		logger: logger.With("component", "store"),
	}
}

type neo4jStore struct {
	config  Config
	logger  *slog.Logger
	driver  neo4j.Driver
	session neo4j.Session
}

func (s *neo4jStore) Connect() error {
	if s.driver != nil {
		return nil
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("%w: invalid config: %w", ErrConnect, err)
	}

	auth := neo4j.BasicAuth(s.config.Username, s.config.Password, "")
	driver, err := neo4j.NewDriver(s.config.URI, auth, s.configure)
	if err != nil {
		return fmt.Errorf("%w: failed to create driver: %w", ErrConnect, err)
	}

	// NewDriver is lazy; an unreachable server or bad credentials only show up here.
	if err := driver.VerifyConnectivity(); err != nil {
		driver.Close()
		return fmt.Errorf("%w: %s: %w", ErrConnect, s.config.URI, err)
	}

	s.driver = driver
	s.session = driver.NewSession(neo4j.SessionConfig{DatabaseName: s.config.Database})
	s.logger.Info("connected", "uri", s.config.URI, "username", s.config.Username, "database", s.config.Database)
	return nil
}

func (s *neo4jStore) configure(c *neo4j.Config) {
	if s.config.MaxConnectionPoolSize > 0 {
		c.MaxConnectionPoolSize = s.config.MaxConnectionPoolSize
	}
	if s.config.ConnectionAcquisitionTimeout > 0 {
		c.ConnectionAcquisitionTimeout = s.config.ConnectionAcquisitionTimeout
	}
	if s.config.SocketConnectTimeout > 0 {
		c.SocketConnectTimeout = s.config.SocketConnectTimeout
	}
	// Managed transactions run once; a retried read would report rows twice.
	c.MaxTransactionRetryTime = 0
	c.Log = driverLogger{logger: s.logger}
}

func (s *neo4jStore) CreatePerson(p model.Person) error {
	return s.write("create person", func(tx runner) (summary, error) {
		return createPerson(tx, p)
	})
}

func (s *neo4jStore) CreateFriendship(person, friend string) error {
	return s.write("create friendship", func(tx runner) (summary, error) {
		return createFriendship(tx, person, friend)
	})
}

func (s *neo4jStore) Friendships(visit func(model.Friendship) error) error {
	if s.session == nil {
		return ErrNotConnected
	}

	res, err := s.session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		return readFriendships(txRunner{tx: tx}, visit)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	s.logger.Debug("read friendships", res.(summary).attrs()...)
	return nil
}

func (s *neo4jStore) write(op string, work func(runner) (summary, error)) error {
	if s.session == nil {
		return ErrNotConnected
	}

	res, err := s.session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		return work(txRunner{tx: tx})
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, op, err)
	}
	s.logger.Info("committed", append([]any{"op", op}, res.(summary).attrs()...)...)
	return nil
}

func (s *neo4jStore) Close() error {
	if s == nil || s.driver == nil {
		return nil
	}

	var errs []error
	if s.session != nil {
		errs = append(errs, s.session.Close())
	}
	errs = append(errs, s.driver.Close())
	s.session = nil
	s.driver = nil
	s.logger.Info("disconnected")
	return errors.Join(errs...)
}
