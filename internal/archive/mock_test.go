package archive

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// MockDriver records every query it sees and answers through Respond,
// so one mock can serve multi-query operations like the family
// traversal. Locked because the timeline runs its sub-queries
// concurrently.
type MockDriver struct {
	mu      sync.Mutex
	Queries []string
	Params  []map[string]interface{}
	Respond func(query string, params map[string]interface{}) (neo4j.EagerResult, error)
	Err     error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)
	m.mu.Unlock()
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if m.Respond != nil {
		return m.Respond(query, params)
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockDriver) EnsureIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func record(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func result(records ...*neo4j.Record) neo4j.EagerResult {
	return neo4j.EagerResult{Records: records}
}

func slugsParam(params map[string]interface{}) []string {
	slugs, _ := params["slugs"].([]string)
	return slugs
}
