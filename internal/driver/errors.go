package driver

import (
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// ConnectionError means the engine was unreachable or the session could
// not be established. Fatal to the current request, never retried here.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("graph engine unreachable: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// QueryError means the engine rejected the expression. Treated as a
// programming error, not a transient condition.
type QueryError struct {
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected by graph engine: %v", e.Cause)
}

func (e *QueryError) Unwrap() error { return e.Cause }

// classify maps a driver failure onto the two error kinds callers are
// expected to distinguish. Anything that is not a connectivity problem
// reported by the engine counts as a query error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if neo4j.IsConnectivityError(err) {
		return &ConnectionError{Cause: err}
	}
	var ne *db.Neo4jError
	if errors.As(err, &ne) {
		return &QueryError{Cause: ne}
	}
	return &ConnectionError{Cause: err}
}
