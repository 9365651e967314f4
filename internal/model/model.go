package model

import "fmt"

// Person is a node labelled Person. Name is not unique.
type Person struct {
	Name string
}

// Friendship is one (person)-[:FRIENDS_WITH]->(friend) row of the read query.
type Friendship struct {
	Person string
	Friend string
}

func (f Friendship) String() string {
	return fmt.Sprintf("%s is friends with %s", f.Person, f.Friend)
}
