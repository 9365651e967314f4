package store

import (
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/srahul3/friends-graph/internal/model"
)

const (
	createPersonQuery = `CREATE (p:Person {name: $name}) RETURN p`

	createFriendshipQuery = `MATCH (p1:Person {name: $name1}), (p2:Person {name: $name2})
CREATE (p1)-[:FRIENDS_WITH]->(p2)`

	friendshipsQuery = `MATCH (p:Person)-[:FRIENDS_WITH]->(friend)
RETURN p.name AS Person, friend.name AS Friend`
)

// runner is the part of neo4j.Transaction the queries use.
type runner interface {
	Run(cypher string, params map[string]interface{}) (cursor, error)
}

type cursor interface {
	Next() bool
	Record() *neo4j.Record
	Err() error
	// Consume discards any remaining records and returns the result summary.
	Consume() (summary, error)
}

// summary holds the parts of neo4j.ResultSummary the store logs.
type summary struct {
	nodesCreated         int
	relationshipsCreated int
	availableAfter       time.Duration
}

func (s summary) attrs() []any {
	return []any{
		"nodes_created", s.nodesCreated,
		"relationships_created", s.relationshipsCreated,
		"available_after", s.availableAfter,
	}
}

type txRunner struct {
	tx neo4j.Transaction
}

func (r txRunner) Run(cypher string, params map[string]interface{}) (cursor, error) {
	result, err := r.tx.Run(cypher, params)
	if err != nil {
		return nil, err
	}
	return resultCursor{Result: result}, nil
}

// resultCursor narrows neo4j.Result.Consume to the summary fields we read.
type resultCursor struct {
	neo4j.Result
}

func (c resultCursor) Consume() (summary, error) {
	rs, err := c.Result.Consume()
	if err != nil {
		return summary{}, err
	}
	out := summary{availableAfter: rs.ResultAvailableAfter()}
	if counters := rs.Counters(); counters != nil {
		out.nodesCreated = counters.NodesCreated()
		out.relationshipsCreated = counters.RelationshipsCreated()
	}
	return out, nil
}

func createPerson(tx runner, p model.Person) (summary, error) {
	result, err := tx.Run(createPersonQuery, map[string]interface{}{"name": p.Name})
	if err != nil {
		return summary{}, err
	}
	return result.Consume()
}

// createFriendship reports how many relationships the MATCH fanned out to;
// zero when either name is unknown.
func createFriendship(tx runner, person, friend string) (summary, error) {
	result, err := tx.Run(createFriendshipQuery, map[string]interface{}{
		"name1": person,
		"name2": friend,
	})
	if err != nil {
		return summary{}, err
	}
	return result.Consume()
}

func readFriendships(tx runner, visit func(model.Friendship) error) (summary, error) {
	result, err := tx.Run(friendshipsQuery, nil)
	if err != nil {
		return summary{}, err
	}

	for result.Next() {
		record := result.Record()
		f := model.Friendship{
			Person: stringValue(record, "Person"),
			Friend: stringValue(record, "Friend"),
		}
		if err := visit(f); err != nil {
			return summary{}, err
		}
	}
	if err := result.Err(); err != nil {
		return summary{}, err
	}
	return result.Consume()
}

// stringValue renders a missing name property the way Cypher prints it.
func stringValue(record *neo4j.Record, key string) string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return "null"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
