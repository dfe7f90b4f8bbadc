package driver

import (
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestClassify_ServerErrorBecomesQueryError(t *testing.T) {
	cause := &db.Neo4jError{Code: "Neo.ClientError.Statement.SyntaxError", Msg: "bad cypher"}

	err := classify(cause)

	var qe *QueryError
	assert.True(t, errors.As(err, &qe))
	assert.Contains(t, err.Error(), "bad cypher")
	assert.ErrorIs(t, err, cause)
}

func TestClassify_UnknownErrorBecomesConnectionError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := classify(cause)

	var ce *ConnectionError
	assert.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, cause)
}
