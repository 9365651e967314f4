// Package app runs the fixed demo sequence against a store:
// connect, create two people, link them, print every friendship, close.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/srahul3/friends-graph/internal/model"
	"github.com/srahul3/friends-graph/internal/report"
	"github.com/srahul3/friends-graph/internal/store"
)

const (
	DefaultPerson = "Iikku"
	DefaultFriend = "Petsku"
)

type App struct {
	store  store.Store
	out    io.Writer
	logger *slog.Logger
}

func New(s store.Store, out io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{store: s, out: out, logger: logger}
}

// Run stops at the first failing step. The store is closed on every path.
func (a *App) Run(person, friend string) (err error) {
	defer func() {
		if cerr := a.store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	if err := a.store.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	for _, p := range []model.Person{{Name: person}, {Name: friend}} {
		if err := a.store.CreatePerson(p); err != nil {
			return fmt.Errorf("create person %q: %w", p.Name, err)
		}
		a.logger.Info("created person", "name", p.Name)
	}

	if err := a.store.CreateFriendship(person, friend); err != nil {
		return fmt.Errorf("create friendship %q -> %q: %w", person, friend, err)
	}
	a.logger.Info("created friendship", "person", person, "friend", friend)

	printer := report.NewPrinter(a.out)
	if err := a.store.Friendships(printer.Print); err != nil {
		return fmt.Errorf("report friendships: %w", err)
	}
	a.logger.Info("reported friendships", "rows", printer.Lines())
	return nil
}
