package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver is the read-side boundary to the graph engine. Every query
// in this service is a read, so implementations route to readers and hold
// no session beyond the single call.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
