package driver

import (
	"context"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jDriver(uri, username, password string) (*Neo4jDriver, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, &ConnectionError{Cause: err}
	}

	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, &ConnectionError{Cause: err}
	}

	log.Println("Connected to Neo4j")
	return &Neo4jDriver{Driver: d}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return neo4j.EagerResult{}, classify(err)
	}
	return *result, nil
}

// EnsureIndices creates the lookup indexes the archive queries lean on.
// Existing indexes are fine; failures are logged and skipped so a
// restart against an already-indexed store stays quiet.
func (d *Neo4jDriver) EnsureIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX character_slug IF NOT EXISTS FOR (c:Character) ON (c.slug)",
		"CREATE INDEX episode_date IF NOT EXISTS FOR (e:Episode) ON (e.date)",
		"CREATE INDEX episode_pid IF NOT EXISTS FOR (e:Episode) ON (e.pid)",
		"CREATE INDEX scene_id IF NOT EXISTS FOR (s:Scene) ON (s.id)",
	}

	for _, q := range queries {
		if _, err := neo4j.ExecuteQuery(ctx, d.Driver, q, nil, neo4j.EagerResultTransformer); err != nil {
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}

	return nil
}
