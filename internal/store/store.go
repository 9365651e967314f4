package store

import (
	"errors"

	"github.com/srahul3/friends-graph/internal/model"
)

var (
	// ErrNotConnected is returned by operations on a store before Connect or after Close.
	ErrNotConnected = errors.New("store is not connected")
	// ErrConnect wraps failures to create or verify the driver.
	ErrConnect = errors.New("failed to connect")
	// ErrWrite wraps failures of a write transaction.
	ErrWrite = errors.New("write transaction failed")
	// ErrRead wraps failures of a read transaction or of result iteration.
	ErrRead = errors.New("read transaction failed")
)

type Store interface {
	// Connect opens the driver and a session. Nothing is written before it succeeds.
	Connect() error
	// CreatePerson creates a new Person node, even if one with the same name exists.
	CreatePerson(p model.Person) error
	// CreateFriendship links every Person named person to every Person named friend.
	// No match on either side is not an error.
	CreateFriendship(person, friend string) error
	// Friendships streams every FRIENDS_WITH row to visit in cursor order.
	Friendships(visit func(model.Friendship) error) error
	// Close releases the session and driver. It is safe to call more than once.
	Close() error
}
