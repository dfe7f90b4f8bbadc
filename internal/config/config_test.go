package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[neo4j]
uri = "bolt://db:7687"
user = "neo4j"
password = "secret"

[server]
port = "9090"
ensure_indices = true

[archive]
page_size = 25
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "bolt://db:7687", cfg.Neo4j.URI)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Server.EnsureIndices)
	assert.Equal(t, 25, cfg.Archive.PageSize)
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
[neo4j]
user = "neo4j"
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Archive.PageSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, "not toml [[[")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://override:7687")
	t.Setenv("PORT", "3000")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://override:7687", cfg.Neo4j.URI)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "", cfg.Neo4j.User)
}
