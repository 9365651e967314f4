package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srahul3/friends-graph/internal/app"
	"github.com/srahul3/friends-graph/internal/config"
	"github.com/srahul3/friends-graph/internal/store"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends-graph",
		Short: "Create two people and a friendship in Neo4j, then print every friendship",
		Long: `friends-graph connects to a Neo4j database, creates two Person nodes,
links them with a FRIENDS_WITH relationship and prints one line per
friendship found in the database.

Connection settings come from flags, then the environment (NEO4J_URI,
NEO4J_DB_USERNAME, NEO4J_DB_PASSWORD, NEO4J_DATABASE), then a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFriendsGraph,
	}
	config.RegisterFlags(cmd.Flags(), app.DefaultPerson, app.DefaultFriend)
	return cmd
}

func runFriendsGraph(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	s := store.NewNeo4jStore(cfg.Neo4j, logger)
	return app.New(s, cmd.OutOrStdout(), logger).Run(cfg.Person, cfg.Friend)
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("friends-graph failed", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
